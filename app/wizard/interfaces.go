package wizard

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/models"
)

// Submitter turns a finished draft into a market.
type Submitter interface {
	Submit(ctx context.Context, draft models.MarketDraft) (*models.Market, error)
}

// Service manages wizard sessions
type Service interface {
	Start(ctx context.Context, draftID *uuid.UUID, draftToken string) (*Session, string, error)
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Discard(ctx context.Context, id uuid.UUID) error
	Draft(ctx context.Context, draftID uuid.UUID) (models.MarketDraft, error)
	Authorize(token string, sessionID uuid.UUID) error
	DraftToken(draftID uuid.UUID) (string, error)
	AuthorizeDraft(token string, draftID uuid.UUID) error
}
