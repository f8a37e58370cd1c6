package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

const (
	seedProjects    = 5
	seedTimeEntries = 20
	seedInvoices    = 4
	seedDescription = "Development and testing"
)

var seedClients = []domain.Client{
	{Name: "TechCorp Inc.", ContactEmail: "contact@techcorp.com"},
	{Name: "DesignStudio Pro", ContactEmail: "hello@designstudio.com"},
	{Name: "Startup Ventures", ContactEmail: "founders@startup.io"},
}

// SeederConfig tunes the sample data generator. Zero values fall back to a
// time-seeded source, the wall clock and bcrypt.DefaultCost.
type SeederConfig struct {
	Rand     *rand.Rand
	Now      func() time.Time
	HashCost int
}

// SeedResult reports how many rows a Seed call inserted.
type SeedResult struct {
	Skipped     bool
	Clients     int
	Users       int
	Projects    int
	TimeEntries int
	Invoices    int
}

// Seeder fills an empty database with randomized sample data of a fixed shape.
type Seeder struct {
	store    ports.Store
	rng      *rand.Rand
	now      func() time.Time
	hashCost int
	logger   zerolog.Logger
}

func NewSeeder(store ports.Store, cfg SeederConfig, logger zerolog.Logger) *Seeder {
	s := &Seeder{store: store, rng: cfg.Rand, now: cfg.Now, hashCost: cfg.HashCost, logger: logger}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.hashCost == 0 {
		s.hashCost = bcrypt.DefaultCost
	}
	return s
}

// Seed inserts the sample data in one transaction. It does nothing when any
// user already exists.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		n, err := tx.CountUsers(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			res.Skipped = true
			return nil
		}
		res, err = s.seed(ctx, tx)
		return err
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}

	if res.Skipped {
		s.logger.Info().Msg("seed skipped: users already exist")
	} else {
		s.logger.Info().
			Int("clients", res.Clients).
			Int("users", res.Users).
			Int("projects", res.Projects).
			Int("time_entries", res.TimeEntries).
			Int("invoices", res.Invoices).
			Msg("database seeded")
	}
	return res, nil
}

func (s *Seeder) seed(ctx context.Context, tx ports.Store) (SeedResult, error) {
	var res SeedResult
	today := domain.Truncate(s.now())

	clients := make([]domain.Client, len(seedClients))
	for i, c := range seedClients {
		if err := tx.CreateClient(ctx, &c); err != nil {
			return res, err
		}
		clients[i] = c
		res.Clients++
	}

	techCorp := clients[0].ID
	users := []struct {
		name     string
		role     domain.Role
		clientID *int64
	}{
		{"admin", domain.RoleAdmin, nil},
		{"freelancer", domain.RoleFreelancer, nil},
		{"client", domain.RoleClient, &techCorp},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.name), s.hashCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", u.name, err)
		}
		user := &domain.User{
			Username:     u.name,
			PasswordHash: string(hash),
			Role:         u.role,
			ClientID:     u.clientID,
			CreatedAt:    s.now().UTC(),
		}
		if err := tx.CreateUser(ctx, user); err != nil {
			return res, err
		}
		res.Users++
	}

	projects := make([]domain.Project, 0, seedProjects)
	for i := range seedProjects {
		client := pick(s.rng, clients)
		p := domain.Project{
			Name:     fmt.Sprintf("Project %s %d", strings.Fields(client.Name)[0], i+1),
			ClientID: client.ID,
			Status:   pick(s.rng, domain.ProjectStatuses),
			Deadline: today.AddDate(0, 0, s.between(10, 60)),
			Budget:   float64(s.between(1000, 10000)),
		}
		if err := tx.CreateProject(ctx, &p); err != nil {
			return res, err
		}
		projects = append(projects, p)
		res.Projects++
	}

	for range seedTimeEntries {
		e := domain.TimeEntry{
			ProjectID:   pick(s.rng, projects).ID,
			Date:        today.AddDate(0, 0, -s.between(0, 30)),
			Hours:       math.Round((1+7*s.rng.Float64())*10) / 10,
			Description: seedDescription,
		}
		if err := tx.CreateTimeEntry(ctx, &e); err != nil {
			return res, err
		}
		res.TimeEntries++
	}

	for range seedInvoices {
		inv := domain.Invoice{
			ProjectID:  pick(s.rng, projects).ID,
			Amount:     float64(s.between(500, 3000)),
			DateIssued: today.AddDate(0, 0, -s.between(0, 20)),
			Status:     pick(s.rng, domain.InvoiceStatuses),
		}
		if err := tx.CreateInvoice(ctx, &inv); err != nil {
			return res, err
		}
		res.Invoices++
	}

	return res, nil
}

// between returns a uniform integer in [lo, hi].
func (s *Seeder) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}
