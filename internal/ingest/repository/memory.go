package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

// MemoryAccountStore keeps accounts in process memory. It backs tests and
// the no-database dev profile.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[uuid.UUID]*models.Account)}
}

func (s *MemoryAccountStore) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	if externalID == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.ExternalID == externalID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemoryAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *MemoryAccountStore) Create(ctx context.Context, a *models.Account) error {
	if a == nil || a.ID == uuid.Nil || a.ExternalID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.ExternalID == a.ExternalID {
			return models.ErrConflict
		}
	}
	if _, exists := s.accounts[a.ID]; exists {
		return models.ErrConflict
	}

	// Defensive copy so the caller cannot mutate the stored object.
	cp := *a
	s.accounts[a.ID] = &cp

	return nil
}

func (s *MemoryAccountStore) incrementUploads(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return models.ErrNotFound
	}
	a.UploadsThisPeriod++
	return nil
}

// MemoryMediaStore keeps media in process memory and mutates the account
// counter through the shared account store on commit.
type MemoryMediaStore struct {
	mu       sync.RWMutex
	media    map[uuid.UUID]*models.Medium
	accounts *MemoryAccountStore
	events   []models.DomainEvent
}

func NewMemoryMediaStore(accounts *MemoryAccountStore) *MemoryMediaStore {
	return &MemoryMediaStore{
		media:    make(map[uuid.UUID]*models.Medium),
		accounts: accounts,
	}
}

func (s *MemoryMediaStore) CommitIngest(ctx context.Context, m *models.Medium, event models.DomainEvent) error {
	if m == nil || m.ID == uuid.Nil || m.AccountID == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.media[m.ID]; exists {
		return models.ErrConflict
	}
	if err := s.accounts.incrementUploads(m.AccountID); err != nil {
		return err
	}

	cp := *m
	s.media[m.ID] = &cp
	if event != nil {
		s.events = append(s.events, event)
	}

	return nil
}

func (s *MemoryMediaStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Medium, error) {
	if accountID == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Medium
	for _, m := range s.media {
		if m.AccountID == accountID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryMediaStore) GetByID(ctx context.Context, id, accountID uuid.UUID) (*models.Medium, error) {
	if id == uuid.Nil || accountID == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok || m.AccountID != accountID {
		// Ownership mismatch reads the same as a missing row.
		return nil, models.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// Events returns the committed domain events in commit order.
func (s *MemoryMediaStore) Events() []models.DomainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DomainEvent(nil), s.events...)
}
