package ports

import (
	"context"

	"github.com/freelancedesk/billable/internal/core/access"
	"github.com/freelancedesk/billable/internal/core/domain"
)

// UserRepository persists login identities.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	// FindUserByUsername returns domain.ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// TrackerRepository persists clients, projects, time entries and invoices.
// List methods return rows ordered by id unless stated otherwise.
type TrackerRepository interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	ListClients(ctx context.Context) ([]domain.Client, error)

	CreateProject(ctx context.Context, project *domain.Project) error
	// FindProject returns domain.ErrProjectNotFound when no row matches.
	FindProject(ctx context.Context, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)

	CreateTimeEntry(ctx context.Context, entry *domain.TimeEntry) error
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)

	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// Snapshot loads every row in one read transaction.
	Snapshot(ctx context.Context) (access.Dataset, error)
}

// Store is the full persistence handle.
type Store interface {
	UserRepository
	TrackerRepository

	// WithinTx runs fn against a transactional Store. The transaction commits
	// when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}
