// Package access decides which rows a user may see. Every function is pure:
// callers load a Dataset snapshot and filter it here, so the visibility rules
// live in exactly one place.
package access

import "github.com/freelancedesk/billable/internal/core/domain"

// Dataset is a snapshot of every persisted row, each slice ordered by id.
type Dataset struct {
	Clients     []domain.Client
	Projects    []domain.Project
	TimeEntries []domain.TimeEntry
	Invoices    []domain.Invoice
}

// Visible is the subset of a Dataset one user is permitted to see.
type Visible struct {
	Projects    []domain.Project
	TimeEntries []domain.TimeEntry
	Invoices    []domain.Invoice
}

// Restricted reports whether the user's view is narrowed to a single client.
// Only staff roles see every row; any other role value is restricted.
func Restricted(user domain.User) bool {
	return user.Role != domain.RoleAdmin && user.Role != domain.RoleFreelancer
}

// CanLogTime reports whether the user may create time entries.
func CanLogTime(user domain.User) bool {
	return user.Role.CanLogTime()
}

// Projects returns the projects the user may see, in input order.
// A client user without a linked client sees nothing.
func Projects(user domain.User, projects []domain.Project) []domain.Project {
	if !Restricted(user) {
		return projects
	}
	out := make([]domain.Project, 0)
	if user.ClientID == nil {
		return out
	}
	for _, p := range projects {
		if p.ClientID == *user.ClientID {
			out = append(out, p)
		}
	}
	return out
}

// ProjectIDs indexes the given projects by id.
func ProjectIDs(projects []domain.Project) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// TimeEntries keeps the entries that belong to one of the visible projects.
func TimeEntries(visible []domain.Project, entries []domain.TimeEntry) []domain.TimeEntry {
	ids := ProjectIDs(visible)
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := ids[e.ProjectID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Invoices keeps the invoices that belong to one of the visible projects.
func Invoices(visible []domain.Project, invoices []domain.Invoice) []domain.Invoice {
	ids := ProjectIDs(visible)
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if _, ok := ids[inv.ProjectID]; ok {
			out = append(out, inv)
		}
	}
	return out
}

// Filter applies the visibility rules to a whole snapshot.
func Filter(user domain.User, ds Dataset) Visible {
	if !Restricted(user) {
		return Visible{Projects: ds.Projects, TimeEntries: ds.TimeEntries, Invoices: ds.Invoices}
	}
	projects := Projects(user, ds.Projects)
	return Visible{
		Projects:    projects,
		TimeEntries: TimeEntries(projects, ds.TimeEntries),
		Invoices:    Invoices(projects, ds.Invoices),
	}
}
