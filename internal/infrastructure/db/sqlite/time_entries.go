package sqlite

import (
	"context"
	"fmt"

	"github.com/freelancedesk/billable/internal/core/domain"
)

func (s *Store) CreateTimeEntry(ctx context.Context, e *domain.TimeEntry) error {
	res, err := s.q.ExecContext(ctx,
		`INSERT INTO time_entries (project_id, date, hours, description) VALUES (?, ?, ?, ?)`,
		e.ProjectID, formatDate(e.Date), e.Hours, e.Description,
	)
	if err != nil {
		return fmt.Errorf("insert time entry: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("time entry id: %w", err)
	}
	return nil
}

func (s *Store) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, project_id, date, hours, description FROM time_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		var (
			e    domain.TimeEntry
			date string
		)
		if err := rows.Scan(&e.ID, &e.ProjectID, &date, &e.Hours, &e.Description); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		if e.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("time entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
