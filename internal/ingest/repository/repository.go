package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type AccountRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// Create inserts a new account. A concurrent insert of the same
	// external id surfaces as models.ErrConflict; callers resolve it by
	// re-reading, which makes resolution idempotent.
	Create(ctx context.Context, a *models.Account) error
}

type MediaRepository interface {
	// CommitIngest persists the medium, increments the owning account's
	// upload counter and records the event, as one atomic unit.
	CommitIngest(ctx context.Context, m *models.Medium, event models.DomainEvent) error
	// ListByAccount returns the account's media, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Medium, error)
	// GetByID is ownership-scoped: a medium owned by another account is
	// reported as models.ErrNotFound, same as a nonexistent id.
	GetByID(ctx context.Context, id, accountID uuid.UUID) (*models.Medium, error)
}
