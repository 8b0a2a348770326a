package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/models"
)

// DraftStore keeps saved drafts in the shared cache.
type DraftStore struct {
	cache cache.Cache[models.MarketDraft]
	ttl   time.Duration
}

func NewDraftStore(c cache.Cache[models.MarketDraft], ttl time.Duration) *DraftStore {
	return &DraftStore{cache: c, ttl: ttl}
}

func (s *DraftStore) Save(ctx context.Context, id uuid.UUID, draft models.MarketDraft) error {
	if err := s.cache.Set(ctx, id.String(), draft, s.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Load(ctx context.Context, id uuid.UUID) (models.MarketDraft, error) {
	draft, err := s.cache.Get(ctx, id.String())
	if errors.Is(err, cache.ErrCacheMiss) {
		return models.MarketDraft{}, ErrDraftNotFound
	}
	if err != nil {
		return models.MarketDraft{}, fmt.Errorf("failed to load draft: %w", err)
	}
	return draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cache.Delete(ctx, id.String())
}
