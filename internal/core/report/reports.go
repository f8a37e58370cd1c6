package report

import (
	"cmp"
	"slices"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/domain"
)

const monthLayout = "2006-01"

type ProjectHours struct {
	ProjectID int64   `json:"project_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
}

type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type ClientRevenue struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Reports is the rollup behind the reports page. The Max fields are chart
// denominators and are never below 1.
type Reports struct {
	ProjectData []ProjectHours   `json:"project_data"`
	MonthlyData []MonthlyRevenue `json:"monthly_data"`
	ClientData  []ClientRevenue  `json:"client_data"`
	MaxHours    float64          `json:"max_hours"`
	MaxMonthly  float64          `json:"max_monthly"`
	MaxClient   float64          `json:"max_client"`
	// Skipped counts paid invoices whose project or client could not be resolved.
	Skipped int `json:"skipped"`
}

// BuildReports computes hours per visible project and, for staff only,
// revenue per month and per client from paid invoices.
func BuildReports(user domain.User, ds access.Dataset) Reports {
	projects := access.Projects(user, ds.Projects)
	totals := ProjectTotals(projects, ds.TimeEntries)

	r := Reports{
		ProjectData: make([]ProjectHours, 0, len(projects)),
		MonthlyData: []MonthlyRevenue{},
		ClientData:  []ClientRevenue{},
	}
	for _, p := range projects {
		r.ProjectData = append(r.ProjectData, ProjectHours{ProjectID: p.ID, Name: p.Name, Hours: totals[p.ID]})
	}

	if !access.Restricted(user) {
		r.MonthlyData, r.ClientData, r.Skipped = revenue(ds)
	}

	r.MaxHours = maxOrOne(r.ProjectData, func(p ProjectHours) float64 { return p.Hours })
	r.MaxMonthly = maxOrOne(r.MonthlyData, func(m MonthlyRevenue) float64 { return m.Amount })
	r.MaxClient = maxOrOne(r.ClientData, func(c ClientRevenue) float64 { return c.Amount })
	return r
}

// revenue groups every paid invoice by issue month and by client name.
// Months sort ascending. Clients sort by amount descending; equal amounts keep
// the order in which the client first appeared while walking invoices by id.
func revenue(ds access.Dataset) ([]MonthlyRevenue, []ClientRevenue, int) {
	projectClient := make(map[int64]int64, len(ds.Projects))
	for _, p := range ds.Projects {
		projectClient[p.ID] = p.ClientID
	}
	clientName := make(map[int64]string, len(ds.Clients))
	for _, c := range ds.Clients {
		clientName[c.ID] = c.Name
	}

	invoices := slices.SortedStableFunc(slices.Values(ds.Invoices), func(a, b domain.Invoice) int {
		return cmp.Compare(a.ID, b.ID)
	})

	byMonth := newOrderedSums[string]()
	byClient := newOrderedSums[string]()
	skipped := 0
	for _, inv := range invoices {
		if inv.Status != domain.InvoicePaid {
			continue
		}
		clientID, ok := projectClient[inv.ProjectID]
		if !ok {
			skipped++
			continue
		}
		name, ok := clientName[clientID]
		if !ok {
			skipped++
			continue
		}
		byMonth.add(inv.DateIssued.Format(monthLayout), inv.Amount)
		byClient.add(name, inv.Amount)
	}

	monthly := make([]MonthlyRevenue, 0, byMonth.len())
	byMonth.each(func(month string, sum float64) {
		monthly = append(monthly, MonthlyRevenue{Month: month, Amount: sum})
	})
	slices.SortFunc(monthly, func(a, b MonthlyRevenue) int { return cmp.Compare(a.Month, b.Month) })

	clients := make([]ClientRevenue, 0, byClient.len())
	byClient.each(func(name string, sum float64) {
		clients = append(clients, ClientRevenue{Name: name, Amount: sum})
	})
	slices.SortStableFunc(clients, func(a, b ClientRevenue) int { return cmp.Compare(b.Amount, a.Amount) })

	return monthly, clients, skipped
}

// ProjectTotals sums the hours logged against each of the given projects.
// Every project is present in the result, with zero when nothing was logged.
func ProjectTotals(projects []domain.Project, entries []domain.TimeEntry) map[int64]float64 {
	totals := make(map[int64]float64, len(projects))
	for _, p := range projects {
		totals[p.ID] = 0
	}
	for _, e := range entries {
		if _, ok := totals[e.ProjectID]; ok {
			totals[e.ProjectID] += e.Hours
		}
	}
	return totals
}

func maxOrOne[T any](rows []T, value func(T) float64) float64 {
	best := 0.0
	for _, row := range rows {
		best = max(best, value(row))
	}
	if best <= 0 {
		return 1
	}
	return best
}

// Percent scales value against limit for bar widths, clamped to 0..100.
func Percent(value, limit float64) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	p := int(value / limit * 100)
	return min(p, 100)
}
