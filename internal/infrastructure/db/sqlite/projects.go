package sqlite

import (
	"context"
	"fmt"

	"github.com/freelancedesk/billable/internal/core/domain"
)

const projectColumns = `id, name, client_id, status, deadline, budget`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	res, err := s.q.ExecContext(ctx,
		`INSERT INTO projects (name, client_id, status, deadline, budget) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.ClientID, string(p.Status), formatDate(p.Deadline), p.Budget,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	return nil
}

// FindProject returns domain.ErrProjectNotFound when no row matches.
func (s *Store) FindProject(ctx context.Context, id int64) (*domain.Project, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	return &p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(r rowScanner) (domain.Project, error) {
	var (
		p        domain.Project
		status   string
		deadline string
	)
	if err := r.Scan(&p.ID, &p.Name, &p.ClientID, &status, &deadline, &p.Budget); err != nil {
		return domain.Project{}, err
	}

	var err error
	if p.Status, err = domain.ParseProjectStatus(status); err != nil {
		return domain.Project{}, fmt.Errorf("project %d: %w", p.ID, err)
	}
	if p.Deadline, err = parseDate(deadline); err != nil {
		return domain.Project{}, fmt.Errorf("project %d: %w", p.ID, err)
	}
	return p, nil
}
