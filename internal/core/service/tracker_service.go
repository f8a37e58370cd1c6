package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/internal/core/report"
)

var _ ports.TrackerService = (*TrackerService)(nil)

// TrackerService serves the role-scoped views and time-log submission. Reads
// load one consistent snapshot and hand it to the access and report packages.
type TrackerService struct {
	repo   ports.TrackerRepository
	audit  ports.AuditLog
	now    func() time.Time
	logger zerolog.Logger
}

func NewTrackerService(repo ports.TrackerRepository, audit ports.AuditLog, logger zerolog.Logger) *TrackerService {
	if audit == nil {
		audit = NopAuditLog{}
	}
	return &TrackerService{repo: repo, audit: audit, now: time.Now, logger: logger}
}

// WithClock overrides the clock used for "today". Intended for tests.
func (s *TrackerService) WithClock(now func() time.Time) *TrackerService {
	s.now = now
	return s
}

func (s *TrackerService) snapshot(ctx context.Context, user *domain.User) (access.Dataset, error) {
	if user == nil {
		return access.Dataset{}, domain.ErrUnauthenticated
	}
	ds, err := s.repo.Snapshot(ctx)
	if err != nil {
		return access.Dataset{}, fmt.Errorf("load snapshot: %w", err)
	}
	return ds, nil
}

func (s *TrackerService) Dashboard(ctx context.Context, user *domain.User) (report.Dashboard, error) {
	ds, err := s.snapshot(ctx, user)
	if err != nil {
		return report.Dashboard{}, err
	}
	return report.BuildDashboard(*user, domain.Truncate(s.now()), ds), nil
}

func (s *TrackerService) Projects(ctx context.Context, user *domain.User) (ports.ProjectsView, error) {
	ds, err := s.snapshot(ctx, user)
	if err != nil {
		return ports.ProjectsView{}, err
	}

	names := clientNames(ds.Clients)
	visible := access.Projects(*user, ds.Projects)
	rows := make([]ports.ProjectRow, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, ports.ProjectRow{Project: p, ClientName: names[p.ClientID]})
	}
	return ports.ProjectsView{Projects: rows}, nil
}

// TimeLogs lists visible entries newest first (ties broken by newest id) and
// the running total of hours for every visible project.
func (s *TrackerService) TimeLogs(ctx context.Context, user *domain.User) (ports.TimeLogsView, error) {
	ds, err := s.snapshot(ctx, user)
	if err != nil {
		return ports.TimeLogsView{}, err
	}

	v := access.Filter(*user, ds)
	names := projectNames(v.Projects)

	entries := make([]ports.TimeEntryRow, 0, len(v.TimeEntries))
	for _, e := range v.TimeEntries {
		entries = append(entries, ports.TimeEntryRow{TimeEntry: e, ProjectName: names[e.ProjectID]})
	}
	slices.SortFunc(entries, func(a, b ports.TimeEntryRow) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	totals := report.ProjectTotals(v.Projects, v.TimeEntries)
	rows := make([]ports.ProjectTotal, 0, len(v.Projects))
	for _, p := range v.Projects {
		rows = append(rows, ports.ProjectTotal{Project: p, Hours: totals[p.ID]})
	}

	return ports.TimeLogsView{
		Entries:  entries,
		Totals:   rows,
		CanLog:   access.CanLogTime(*user),
		Projects: v.Projects,
	}, nil
}

func (s *TrackerService) Invoices(ctx context.Context, user *domain.User) (ports.InvoicesView, error) {
	ds, err := s.snapshot(ctx, user)
	if err != nil {
		return ports.InvoicesView{}, err
	}

	v := access.Filter(*user, ds)
	clients := clientNames(ds.Clients)
	byID := make(map[int64]domain.Project, len(v.Projects))
	for _, p := range v.Projects {
		byID[p.ID] = p
	}

	rows := make([]ports.InvoiceRow, 0, len(v.Invoices))
	for _, inv := range v.Invoices {
		p := byID[inv.ProjectID]
		rows = append(rows, ports.InvoiceRow{Invoice: inv, ProjectName: p.Name, ClientName: clients[p.ClientID]})
	}
	return ports.InvoicesView{Invoices: rows}, nil
}

func (s *TrackerService) Reports(ctx context.Context, user *domain.User) (report.Reports, error) {
	ds, err := s.snapshot(ctx, user)
	if err != nil {
		return report.Reports{}, err
	}

	r := report.BuildReports(*user, ds)
	if r.Skipped > 0 {
		s.logger.Warn().Int("skipped", r.Skipped).Msg("paid invoices without a resolvable client were left out of revenue")
	}
	return r, nil
}

// CreateTimeEntry validates and stores a new entry. Clients are refused with
// domain.ErrForbidden before anything else is inspected.
func (s *TrackerService) CreateTimeEntry(ctx context.Context, user *domain.User, input ports.CreateTimeEntryInput) (*domain.TimeEntry, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !access.CanLogTime(*user) {
		s.rejected(ctx, user, input, "forbidden")
		return nil, domain.ErrForbidden
	}

	entry, err := s.validate(input)
	if err != nil {
		s.rejected(ctx, user, input, "validation")
		return nil, err
	}

	if _, err := s.repo.FindProject(ctx, entry.ProjectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			s.rejected(ctx, user, input, "project_not_found")
			return nil, err
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if err := s.repo.CreateTimeEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}

	s.logger.Info().
		Int64("time_entry_id", entry.ID).
		Int64("project_id", entry.ProjectID).
		Float64("hours", entry.Hours).
		Str("username", user.Username).
		Msg("time entry created")

	s.record(ctx, domain.AuditEvent{
		Action:   domain.AuditTimeEntryCreated,
		Username: user.Username,
		Role:     user.Role,
		Details: map[string]any{
			"time_entry_id": entry.ID,
			"project_id":    entry.ProjectID,
			"hours":         entry.Hours,
			"date":          entry.Date.Format(domain.DateLayout),
		},
	})
	return entry, nil
}

func (s *TrackerService) validate(input ports.CreateTimeEntryInput) (*domain.TimeEntry, error) {
	date, err := domain.ParseDate(strings.TrimSpace(input.Date))
	if err != nil {
		return nil, err
	}
	if math.IsNaN(input.Hours) || math.IsInf(input.Hours, 0) || input.Hours <= 0 {
		return nil, &domain.ValidationError{Field: "hours", Reason: "must be a finite number greater than 0"}
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, &domain.ValidationError{Field: "description", Reason: "is required"}
	}
	return &domain.TimeEntry{
		ProjectID:   input.ProjectID,
		Date:        date,
		Hours:       input.Hours,
		Description: description,
	}, nil
}

func (s *TrackerService) rejected(ctx context.Context, user *domain.User, input ports.CreateTimeEntryInput, reason string) {
	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Str("reason", reason).
		Msg("time entry rejected")

	s.record(ctx, domain.AuditEvent{
		Action:   domain.AuditTimeEntryRejected,
		Username: user.Username,
		Role:     user.Role,
		Details: map[string]any{
			"reason":     reason,
			"project_id": input.ProjectID,
			"date":       input.Date,
		},
	})
}

func (s *TrackerService) record(ctx context.Context, event domain.AuditEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("action", string(event.Action)).Msg("audit record failed")
	}
}

func clientNames(clients []domain.Client) map[int64]string {
	names := make(map[int64]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}

func projectNames(projects []domain.Project) map[int64]string {
	names := make(map[int64]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}
