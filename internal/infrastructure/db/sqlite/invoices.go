package sqlite

import (
	"context"
	"fmt"

	"github.com/freelancedesk/billable/internal/core/domain"
)

func (s *Store) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	res, err := s.q.ExecContext(ctx,
		`INSERT INTO invoices (project_id, amount, date_issued, status) VALUES (?, ?, ?, ?)`,
		inv.ProjectID, inv.Amount, formatDate(inv.DateIssued), string(inv.Status),
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	if inv.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("invoice id: %w", err)
	}
	return nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, project_id, amount, date_issued, status FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var (
			inv    domain.Invoice
			issued string
			status string
		)
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Amount, &issued, &status); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if inv.DateIssued, err = parseDate(issued); err != nil {
			return nil, fmt.Errorf("invoice %d: %w", inv.ID, err)
		}
		if inv.Status, err = domain.ParseInvoiceStatus(status); err != nil {
			return nil, fmt.Errorf("invoice %d: %w", inv.ID, err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
