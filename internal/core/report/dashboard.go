package report

import (
	"time"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/domain"
)

// Dashboard holds the four summary cards.
type Dashboard struct {
	ActiveProjects  int     `json:"active_projects"`
	TotalHours      float64 `json:"total_hours"`
	PendingInvoices int     `json:"pending_invoices"`
	TotalEarned     float64 `json:"total_earned"`
}

// BuildDashboard computes the summary cards for user as of today.
//
// Client users are scoped to their own projects: hours count when the entry's
// month and year equal today's, pending means "sent", earned means what they
// paid. Staff see every row: hours count from the first of the month onward
// with no upper bound, pending means anything not yet paid.
func BuildDashboard(user domain.User, today time.Time, ds access.Dataset) Dashboard {
	if access.Restricted(user) {
		return clientDashboard(user, today, ds)
	}
	return staffDashboard(today, ds)
}

func clientDashboard(user domain.User, today time.Time, ds access.Dataset) Dashboard {
	v := access.Filter(user, ds)

	var d Dashboard
	d.ActiveProjects = countActive(v.Projects)

	year, month, _ := today.Date()
	for _, e := range v.TimeEntries {
		if e.Date.Year() == year && e.Date.Month() == month {
			d.TotalHours += e.Hours
		}
	}

	for _, inv := range v.Invoices {
		switch inv.Status {
		case domain.InvoiceSent:
			d.PendingInvoices++
		case domain.InvoicePaid:
			d.TotalEarned += inv.Amount
		}
	}
	return d
}

func staffDashboard(today time.Time, ds access.Dataset) Dashboard {
	var d Dashboard
	d.ActiveProjects = countActive(ds.Projects)

	start := firstOfMonth(today)
	for _, e := range ds.TimeEntries {
		if !e.Date.Before(start) {
			d.TotalHours += e.Hours
		}
	}

	for _, inv := range ds.Invoices {
		if inv.Status == domain.InvoicePaid {
			d.TotalEarned += inv.Amount
			continue
		}
		d.PendingInvoices++
	}
	return d
}

func countActive(projects []domain.Project) int {
	n := 0
	for _, p := range projects {
		if p.Status == domain.ProjectActive {
			n++
		}
	}
	return n
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
