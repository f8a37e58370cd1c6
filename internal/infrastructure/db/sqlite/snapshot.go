package sqlite

import (
	"context"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/ports"
)

// Snapshot reads every table inside one transaction so the four slices are
// consistent with each other.
func (s *Store) Snapshot(ctx context.Context) (access.Dataset, error) {
	var ds access.Dataset
	err := s.WithinTx(ctx, func(tx ports.Store) error {
		var err error
		if ds.Clients, err = tx.ListClients(ctx); err != nil {
			return err
		}
		if ds.Projects, err = tx.ListProjects(ctx); err != nil {
			return err
		}
		if ds.TimeEntries, err = tx.ListTimeEntries(ctx); err != nil {
			return err
		}
		ds.Invoices, err = tx.ListInvoices(ctx)
		return err
	})
	if err != nil {
		return access.Dataset{}, err
	}
	return ds, nil
}
