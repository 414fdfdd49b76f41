package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type AccountRepo struct {
	db *sqlx.DB
}

func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	const q = `
		SELECT id, external_id, email, plan, uploads_this_period, upload_limit, created_at
		FROM accounts
		WHERE external_id = $1
	`

	var a models.Account
	if err := r.db.GetContext(ctx, &a, q, externalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("account get by external id: %w", err)
	}

	return &a, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	const q = `
		SELECT id, external_id, email, plan, uploads_this_period, upload_limit, created_at
		FROM accounts
		WHERE id = $1
	`

	var a models.Account
	if err := r.db.GetContext(ctx, &a, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("account get by id: %w", err)
	}

	return &a, nil
}

// Create relies on the unique constraint on external_id. A duplicate insert
// comes back as models.ErrConflict so the caller can re-read instead.
func (r *AccountRepo) Create(ctx context.Context, a *models.Account) error {
	const q = `
		INSERT INTO accounts (id, external_id, email, plan, uploads_this_period, upload_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.ExternalID, a.Email, a.Plan, a.UploadsThisPeriod, a.UploadLimit, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrConflict
		}
		return fmt.Errorf("account create: %w", err)
	}

	return nil
}
