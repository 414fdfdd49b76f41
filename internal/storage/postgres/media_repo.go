package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type MediaRepo struct {
	db     *sqlx.DB
	outbox *OutboxRepo
}

func NewMediaRepo(db *sqlx.DB, outbox *OutboxRepo) *MediaRepo {
	return &MediaRepo{db: db, outbox: outbox}
}

// CommitIngest is the atomic tail of an ingestion: medium row, account
// counter and outbox event land in one transaction, or none of them do.
func (r *MediaRepo) CommitIngest(ctx context.Context, m *models.Medium, event models.DomainEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const insertMedium = `
		INSERT INTO media (id, account_id, external_id, title, description,
			original_bytes, compressed_bytes, duration_seconds, captions_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, insertMedium,
		m.ID, m.AccountID, m.ExternalID, m.Title, m.Description,
		m.OriginalBytes, m.CompressedBytes, m.DurationSeconds, m.CaptionsURL, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("media create: %w", err)
	}

	const bumpCounter = `
		UPDATE accounts
		SET uploads_this_period = uploads_this_period + 1
		WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, bumpCounter, m.AccountID)
	if err != nil {
		return fmt.Errorf("account counter: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	if event != nil {
		if err := r.outbox.Add(ctx, tx, event); err != nil {
			return fmt.Errorf("add outbox: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *MediaRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Medium, error) {
	const q = `
		SELECT id, account_id, external_id, title, description,
			original_bytes, compressed_bytes, duration_seconds, captions_url, created_at
		FROM media
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	var media []models.Medium
	if err := r.db.SelectContext(ctx, &media, q, accountID); err != nil {
		return nil, fmt.Errorf("media list: %w", err)
	}

	return media, nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id, accountID uuid.UUID) (*models.Medium, error) {
	const q = `
		SELECT id, account_id, external_id, title, description,
			original_bytes, compressed_bytes, duration_seconds, captions_url, created_at
		FROM media
		WHERE id = $1 AND account_id = $2
	`

	var m models.Medium
	if err := r.db.GetContext(ctx, &m, q, id, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Someone else's medium looks exactly like a missing one.
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("media get by id: %w", err)
	}

	return &m, nil
}
