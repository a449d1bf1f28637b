// Package seed populates an empty database with the baseline fixture
// dataset: three user accounts with distinct roles and three projects
// owned by them. The run is a no-op once any user exists, so it is safe
// to invoke on every environment bootstrap.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/planforge/planforge-be/internal/models"
)

// Hasher is the slice of the credential hasher the seeding flow needs.
// Verification belongs to the login flow and is not consumed here.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// Outcome reports what a seeding run did. Seeded discriminates the two
// cases: false means the run was skipped because ExistingUsers accounts
// were already present.
type Outcome struct {
	Seeded          bool
	ExistingUsers   int
	UsersCreated    int
	ProjectsCreated int
}

// Procedure is the one-shot seeding procedure. Construct with New and
// invoke Run exactly once per process; it is not safe for concurrent use.
type Procedure struct {
	store  Store
	hasher Hasher
	out    io.Writer
	runID  string
}

// Option customizes a Procedure.
type Option func(*Procedure)

// WithOutput redirects the human-readable report. The report includes
// the plaintext bootstrap credentials, so stricter deployments can point
// this at io.Discard without touching the seeding logic.
func WithOutput(w io.Writer) Option {
	return func(p *Procedure) { p.out = w }
}

// New creates a seeding procedure over the given store and hasher.
func New(store Store, hasher Hasher, opts ...Option) *Procedure {
	p := &Procedure{
		store:  store,
		hasher: hasher,
		out:    os.Stdout,
		runID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the seeding flow: gate on store emptiness, create the
// fixture users in one committed batch, reread their generated
// identifiers, then create the projects that reference them in a second
// batch. Any storage or hashing failure aborts the run and propagates
// unchanged; there is no rollback across the two commits, so a failure
// between them leaves users without projects and a rerun will skip.
func (p *Procedure) Run(ctx context.Context) (Outcome, error) {
	logger := log.With().Str("run_id", p.runID).Logger()

	count, err := p.store.CountUsers(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logger.Info().Int("existing_users", count).Msg("database already seeded, skipping")
		p.reportSkipped(count)
		return Outcome{ExistingUsers: count}, nil
	}

	logger.Info().Msg("database is empty, seeding")

	users := make([]models.User, 0, len(defaultAccounts))
	for _, a := range defaultAccounts {
		hash, err := p.hasher.Hash(a.secret)
		if err != nil {
			return Outcome{}, fmt.Errorf("hash password for %s: %w", a.email, err)
		}
		users = append(users, models.User{
			Email:        a.email,
			FullName:     a.fullName,
			PasswordHash: hash,
			Role:         a.role,
			IsActive:     true,
		})
	}
	if err := p.store.CreateUsers(ctx, users); err != nil {
		return Outcome{}, fmt.Errorf("create users: %w", err)
	}
	logger.Info().Int("count", len(users)).Msg("created users")

	// Identifiers exist only after the commit above; reread each owner.
	owners := make(map[string]int64, len(defaultProjects))
	for _, d := range defaultProjects {
		if _, ok := owners[d.ownerEmail]; ok {
			continue
		}
		id, err := p.store.UserIDByEmail(ctx, d.ownerEmail)
		if err != nil {
			return Outcome{}, fmt.Errorf("look up owner %s: %w", d.ownerEmail, err)
		}
		owners[d.ownerEmail] = id
	}

	projects := make([]models.Project, 0, len(defaultProjects))
	for _, d := range defaultProjects {
		projects = append(projects, models.Project{
			Name:        d.name,
			Description: d.description,
			Status:      d.status,
			Priority:    d.priority,
			BudgetCents: d.budgetCents,
			OwnerID:     owners[d.ownerEmail],
		})
	}
	if err := p.store.CreateProjects(ctx, projects); err != nil {
		return Outcome{}, fmt.Errorf("create projects: %w", err)
	}
	logger.Info().Int("count", len(projects)).Msg("created projects")

	outcome := Outcome{
		Seeded:          true,
		UsersCreated:    len(users),
		ProjectsCreated: len(projects),
	}
	p.reportSeeded(outcome)
	return outcome, nil
}
