package sqlite

import (
	"context"
	"fmt"

	"github.com/freelancedesk/billable/internal/core/domain"
)

func (s *Store) CreateClient(ctx context.Context, client *domain.Client) error {
	res, err := s.q.ExecContext(ctx,
		`INSERT INTO clients (name, contact_email) VALUES (?, ?)`,
		client.Name, client.ContactEmail,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	if client.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("client id: %w", err)
	}
	return nil
}

func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name, contact_email FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
