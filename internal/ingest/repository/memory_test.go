package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

func newAccount(externalID string) *models.Account {
	return &models.Account{
		ID:          uuid.New(),
		ExternalID:  externalID,
		Email:       externalID + "@example.com",
		Plan:        models.DefaultPlan,
		UploadLimit: models.DefaultUploadLimit,
		CreatedAt:   time.Now(),
	}
}

func newMedium(accountID uuid.UUID, createdAt time.Time) *models.Medium {
	return &models.Medium{
		ID:            uuid.New(),
		AccountID:     accountID,
		ExternalID:    "vid-" + uuid.NewString()[:8],
		Title:         "clip",
		Description:   "d",
		OriginalBytes: 1,
		CreatedAt:     createdAt,
	}
}

func TestAccountStore_CreateIsUniqueByExternalID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryAccountStore()

	a := newAccount("ext-1")
	require.NoError(t, s.Create(ctx, a))

	// Same external identity again is a conflict, whatever the row id.
	dup := newAccount("ext-1")
	require.ErrorIs(t, s.Create(ctx, dup), models.ErrConflict)

	got, err := s.GetByExternalID(ctx, "ext-1")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestAccountStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryAccountStore()
	require.NoError(t, s.Create(ctx, newAccount("ext-1")))

	got, err := s.GetByExternalID(ctx, "ext-1")
	require.NoError(t, err)
	got.UploadsThisPeriod = 99

	again, err := s.GetByExternalID(ctx, "ext-1")
	require.NoError(t, err)
	require.Equal(t, 0, again.UploadsThisPeriod)
}

func TestCommitIngest_BumpsCounterAndRecordsEvent(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryAccountStore()
	media := NewMemoryMediaStore(accounts)

	a := newAccount("ext-1")
	require.NoError(t, accounts.Create(ctx, a))

	m := newMedium(a.ID, time.Now())
	require.NoError(t, media.CommitIngest(ctx, m, models.NewMediumIngested(m)))

	stored, err := accounts.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.UploadsThisPeriod)
	require.Len(t, media.Events(), 1)
	require.Equal(t, m.ID, media.Events()[0].AggregateID())
}

func TestCommitIngest_UnknownAccountCommitsNothing(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryAccountStore()
	media := NewMemoryMediaStore(accounts)

	m := newMedium(uuid.New(), time.Now())
	require.ErrorIs(t, media.CommitIngest(ctx, m, models.NewMediumIngested(m)), models.ErrNotFound)

	_, err := media.GetByID(ctx, m.ID, m.AccountID)
	require.ErrorIs(t, err, models.ErrNotFound)
	require.Empty(t, media.Events())
}

func TestListByAccount_NewestFirst(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryAccountStore()
	media := NewMemoryMediaStore(accounts)

	a := newAccount("ext-1")
	require.NoError(t, accounts.Create(ctx, a))

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	oldest := newMedium(a.ID, base)
	newest := newMedium(a.ID, base.Add(2*time.Hour))
	middle := newMedium(a.ID, base.Add(time.Hour))
	for _, m := range []*models.Medium{oldest, newest, middle} {
		require.NoError(t, media.CommitIngest(ctx, m, nil))
	}

	got, err := media.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, newest.ID, got[0].ID)
	require.Equal(t, middle.ID, got[1].ID)
	require.Equal(t, oldest.ID, got[2].ID)
}

func TestGetByID_OwnershipMismatchLooksLikeMissing(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryAccountStore()
	media := NewMemoryMediaStore(accounts)

	owner := newAccount("owner")
	other := newAccount("other")
	require.NoError(t, accounts.Create(ctx, owner))
	require.NoError(t, accounts.Create(ctx, other))

	m := newMedium(owner.ID, time.Now())
	require.NoError(t, media.CommitIngest(ctx, m, nil))

	_, errMismatch := media.GetByID(ctx, m.ID, other.ID)
	_, errMissing := media.GetByID(ctx, uuid.New(), other.ID)
	require.ErrorIs(t, errMismatch, models.ErrNotFound)
	require.ErrorIs(t, errMissing, models.ErrNotFound)
}
