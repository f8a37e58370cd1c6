package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// stubTrackerRepo keeps rows in memory, ordered by insertion (and thus id).
type stubTrackerRepo struct {
	ds          access.Dataset
	snapshotErr error
	createErr   error
}

func (r *stubTrackerRepo) CreateClient(_ context.Context, c *domain.Client) error {
	c.ID = int64(len(r.ds.Clients) + 1)
	r.ds.Clients = append(r.ds.Clients, *c)
	return nil
}

func (r *stubTrackerRepo) ListClients(context.Context) ([]domain.Client, error) {
	return r.ds.Clients, nil
}

func (r *stubTrackerRepo) CreateProject(_ context.Context, p *domain.Project) error {
	p.ID = int64(len(r.ds.Projects) + 1)
	r.ds.Projects = append(r.ds.Projects, *p)
	return nil
}

func (r *stubTrackerRepo) FindProject(_ context.Context, id int64) (*domain.Project, error) {
	for _, p := range r.ds.Projects {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubTrackerRepo) ListProjects(context.Context) ([]domain.Project, error) {
	return r.ds.Projects, nil
}

func (r *stubTrackerRepo) CreateTimeEntry(_ context.Context, e *domain.TimeEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	e.ID = int64(len(r.ds.TimeEntries) + 1)
	r.ds.TimeEntries = append(r.ds.TimeEntries, *e)
	return nil
}

func (r *stubTrackerRepo) ListTimeEntries(context.Context) ([]domain.TimeEntry, error) {
	return r.ds.TimeEntries, nil
}

func (r *stubTrackerRepo) CreateInvoice(_ context.Context, inv *domain.Invoice) error {
	inv.ID = int64(len(r.ds.Invoices) + 1)
	r.ds.Invoices = append(r.ds.Invoices, *inv)
	return nil
}

func (r *stubTrackerRepo) ListInvoices(context.Context) ([]domain.Invoice, error) {
	return r.ds.Invoices, nil
}

func (r *stubTrackerRepo) Snapshot(context.Context) (access.Dataset, error) {
	if r.snapshotErr != nil {
		return access.Dataset{}, r.snapshotErr
	}
	return r.ds, nil
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func int64Ptr(v int64) *int64 { return &v }

var (
	adminUser      = &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}
	freelancerUser = &domain.User{ID: 2, Username: "freelancer", Role: domain.RoleFreelancer}
	clientUser     = &domain.User{ID: 3, Username: "client", Role: domain.RoleClient, ClientID: int64Ptr(1)}
)

func newTrackerFixture() *stubTrackerRepo {
	return &stubTrackerRepo{ds: access.Dataset{
		Clients: []domain.Client{{ID: 1, Name: "TechCorp Inc."}, {ID: 2, Name: "DesignStudio Pro"}},
		Projects: []domain.Project{
			{ID: 1, ClientID: 1, Name: "Project TechCorp 1", Status: domain.ProjectActive},
			{ID: 2, ClientID: 2, Name: "Project DesignStudio 2", Status: domain.ProjectCompleted},
		},
		TimeEntries: []domain.TimeEntry{
			{ID: 1, ProjectID: 1, Date: day("2024-03-01"), Hours: 2, Description: "a"},
			{ID: 2, ProjectID: 2, Date: day("2024-03-10"), Hours: 5, Description: "b"},
			{ID: 3, ProjectID: 1, Date: day("2024-03-10"), Hours: 1.5, Description: "c"},
		},
		Invoices: []domain.Invoice{
			{ID: 1, ProjectID: 1, Amount: 1200, DateIssued: day("2024-03-15"), Status: domain.InvoicePaid},
			{ID: 2, ProjectID: 2, Amount: 900, DateIssued: day("2024-03-16"), Status: domain.InvoiceSent},
		},
	}}
}

func newTracker(repo *stubTrackerRepo, audit ports.AuditLog) *TrackerService {
	return NewTrackerService(repo, audit, discardLogger).WithClock(func() time.Time { return day("2024-03-18") })
}

func TestTrackerService_RequiresUser(t *testing.T) {
	svc := newTracker(newTrackerFixture(), nil)

	_, err := svc.Dashboard(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = svc.CreateTimeEntry(context.Background(), nil, ports.CreateTimeEntryInput{})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestTrackerService_ClientVisibility(t *testing.T) {
	svc := newTracker(newTrackerFixture(), nil)
	ctx := context.Background()

	projects, err := svc.Projects(ctx, clientUser)
	require.NoError(t, err)
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, int64(1), projects.Projects[0].ClientID)
	assert.Equal(t, "TechCorp Inc.", projects.Projects[0].ClientName)

	logs, err := svc.TimeLogs(ctx, clientUser)
	require.NoError(t, err)
	require.Len(t, logs.Entries, 2)
	for _, e := range logs.Entries {
		assert.Equal(t, int64(1), e.ProjectID)
	}
	assert.False(t, logs.CanLog)

	invoices, err := svc.Invoices(ctx, clientUser)
	require.NoError(t, err)
	require.Len(t, invoices.Invoices, 1)
	assert.Equal(t, "Project TechCorp 1", invoices.Invoices[0].ProjectName)
	assert.Equal(t, "TechCorp Inc.", invoices.Invoices[0].ClientName)

	reports, err := svc.Reports(ctx, clientUser)
	require.NoError(t, err)
	assert.Len(t, reports.ProjectData, 1)
	assert.Empty(t, reports.MonthlyData)
	assert.Empty(t, reports.ClientData)
}

func TestTrackerService_TimeLogsOrderAndTotals(t *testing.T) {
	svc := newTracker(newTrackerFixture(), nil)

	logs, err := svc.TimeLogs(context.Background(), freelancerUser)
	require.NoError(t, err)

	require.Len(t, logs.Entries, 3)
	// Newest date first; equal dates put the newer id first.
	assert.Equal(t, []int64{3, 2, 1}, []int64{logs.Entries[0].ID, logs.Entries[1].ID, logs.Entries[2].ID})
	assert.Equal(t, "Project TechCorp 1", logs.Entries[0].ProjectName)

	require.Len(t, logs.Totals, 2)
	assert.InDelta(t, 3.5, logs.Totals[0].Hours, 1e-9)
	assert.InDelta(t, 5, logs.Totals[1].Hours, 1e-9)
	assert.True(t, logs.CanLog)
	assert.Len(t, logs.Projects, 2)
}

func TestTrackerService_Dashboard(t *testing.T) {
	svc := newTracker(newTrackerFixture(), nil)

	d, err := svc.Dashboard(context.Background(), adminUser)
	require.NoError(t, err)
	assert.Equal(t, 1, d.ActiveProjects)
	assert.InDelta(t, 8.5, d.TotalHours, 1e-9)
	assert.Equal(t, 1, d.PendingInvoices)
	assert.InDelta(t, 1200, d.TotalEarned, 1e-9)

	d, err = svc.Dashboard(context.Background(), clientUser)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, d.TotalHours, 1e-9)
	assert.Equal(t, 0, d.PendingInvoices)
	assert.InDelta(t, 1200, d.TotalEarned, 1e-9)
}

func TestTrackerService_SnapshotError(t *testing.T) {
	repo := newTrackerFixture()
	repo.snapshotErr = errors.New("locked")
	svc := newTracker(repo, nil)

	_, err := svc.Reports(context.Background(), adminUser)
	require.ErrorIs(t, err, repo.snapshotErr)
}

func TestTrackerService_CreateTimeEntry(t *testing.T) {
	repo := newTrackerFixture()
	audit := &recordingAudit{}
	svc := newTracker(repo, audit)

	entry, err := svc.CreateTimeEntry(context.Background(), freelancerUser, ports.CreateTimeEntryInput{
		ProjectID: 2, Hours: 3.25, Description: "  Design review  ", Date: "2024-03-17",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), entry.ID)
	assert.Equal(t, "Design review", entry.Description)
	assert.Equal(t, day("2024-03-17"), entry.Date)
	assert.Len(t, repo.ds.TimeEntries, 4)
	assert.Equal(t, []domain.AuditAction{domain.AuditTimeEntryCreated}, audit.actions())
}

func TestTrackerService_CreateTimeEntry_ClientForbidden(t *testing.T) {
	repo := newTrackerFixture()
	audit := &recordingAudit{}
	svc := newTracker(repo, audit)

	_, err := svc.CreateTimeEntry(context.Background(), clientUser, ports.CreateTimeEntryInput{
		ProjectID: 1, Hours: 1, Description: "x", Date: "2024-03-17",
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, repo.ds.TimeEntries, 3)
	assert.Equal(t, []domain.AuditAction{domain.AuditTimeEntryRejected}, audit.actions())
}

func TestTrackerService_CreateTimeEntry_Validation(t *testing.T) {
	cases := map[string]ports.CreateTimeEntryInput{
		"impossible date": {ProjectID: 1, Hours: 1, Description: "x", Date: "2024-02-30"},
		"malformed date":  {ProjectID: 1, Hours: 1, Description: "x", Date: "17/03/2024"},
		"zero hours":      {ProjectID: 1, Hours: 0, Description: "x", Date: "2024-03-17"},
		"negative hours":  {ProjectID: 1, Hours: -2, Description: "x", Date: "2024-03-17"},
		"infinite hours":  {ProjectID: 1, Hours: math.Inf(1), Description: "x", Date: "2024-03-17"},
		"negative inf":    {ProjectID: 1, Hours: math.Inf(-1), Description: "x", Date: "2024-03-17"},
		"NaN hours":       {ProjectID: 1, Hours: math.NaN(), Description: "x", Date: "2024-03-17"},
		"no description":  {ProjectID: 1, Hours: 1, Description: "   ", Date: "2024-03-17"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTrackerFixture()
			svc := newTracker(repo, nil)

			_, err := svc.CreateTimeEntry(context.Background(), adminUser, input)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Len(t, repo.ds.TimeEntries, 3)
		})
	}
}

func TestTrackerService_CreateTimeEntry_UnknownProject(t *testing.T) {
	repo := newTrackerFixture()
	svc := newTracker(repo, nil)

	_, err := svc.CreateTimeEntry(context.Background(), adminUser, ports.CreateTimeEntryInput{
		ProjectID: 99, Hours: 1, Description: "x", Date: "2024-03-17",
	})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Len(t, repo.ds.TimeEntries, 3)
}

func TestTrackerService_CreateTimeEntry_StoreError(t *testing.T) {
	repo := newTrackerFixture()
	repo.createErr = errors.New("disk full")
	svc := newTracker(repo, nil)

	_, err := svc.CreateTimeEntry(context.Background(), adminUser, ports.CreateTimeEntryInput{
		ProjectID: 1, Hours: 1, Description: "x", Date: "2024-03-17",
	})
	require.ErrorIs(t, err, repo.createErr)
}

func TestTrackerService_NonFiniteHoursNeverReachTheStore(t *testing.T) {
	ctx := context.Background()
	_, store, today := newTestSeeder(t)
	svc := NewTrackerService(store, nil, discardLogger).WithClock(func() time.Time { return today })

	client := &domain.Client{Name: "TechCorp Inc.", ContactEmail: "contact@techcorp.com"}
	require.NoError(t, store.CreateClient(ctx, client))
	project := &domain.Project{Name: "Website Redesign", ClientID: client.ID, Status: domain.ProjectActive, Deadline: today, Budget: 5000}
	require.NoError(t, store.CreateProject(ctx, project))

	for _, hours := range []float64{math.Inf(1), math.NaN()} {
		_, err := svc.CreateTimeEntry(ctx, adminUser, ports.CreateTimeEntryInput{
			ProjectID: project.ID, Hours: hours, Description: "Backend work", Date: "2024-03-15",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	}

	entries, err := store.ListTimeEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	reports, err := svc.Reports(ctx, adminUser)
	require.NoError(t, err)
	assert.Equal(t, 1.0, reports.MaxHours)
}
