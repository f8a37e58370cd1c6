package ports

import (
	"context"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/report"
)

// CreateTimeEntryInput carries the raw submission of the time-log form.
type CreateTimeEntryInput struct {
	ProjectID   int64
	Hours       float64
	Description string
	Date        string
}

type ProjectRow struct {
	domain.Project
	ClientName string
}

type TimeEntryRow struct {
	domain.TimeEntry
	ProjectName string
}

type ProjectTotal struct {
	Project domain.Project
	Hours   float64
}

type InvoiceRow struct {
	domain.Invoice
	ProjectName string
	ClientName  string
}

// ProjectsView lists visible projects.
type ProjectsView struct {
	Projects []ProjectRow
}

// TimeLogsView lists visible entries newest first, with hours per project.
type TimeLogsView struct {
	Entries  []TimeEntryRow
	Totals   []ProjectTotal
	CanLog   bool
	Projects []domain.Project
}

// InvoicesView lists visible invoices.
type InvoicesView struct {
	Invoices []InvoiceRow
}

// TrackerService exposes every role-scoped read and the one write.
type TrackerService interface {
	Dashboard(ctx context.Context, user *domain.User) (report.Dashboard, error)
	Projects(ctx context.Context, user *domain.User) (ProjectsView, error)
	TimeLogs(ctx context.Context, user *domain.User) (TimeLogsView, error)
	Invoices(ctx context.Context, user *domain.User) (InvoicesView, error)
	Reports(ctx context.Context, user *domain.User) (report.Reports, error)
	CreateTimeEntry(ctx context.Context, user *domain.User, input CreateTimeEntryInput) (*domain.TimeEntry, error)
}
