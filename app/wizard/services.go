package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/internal/security"
	"github.com/joefazee/prognos/models"
)

// service implements the Service interface
type service struct {
	sessions  cache.Cache[*Session]
	drafts    *DraftStore
	submitter Submitter
	tokens    security.Maker
	tokenTTL  time.Duration
	config    *Config
	log       logger.Logger
}

// NewService creates a new wizard session manager. Sessions hold live
// goroutines so sessions must be an in-process cache.
func NewService(
	sessions cache.Cache[*Session],
	drafts *DraftStore,
	submitter Submitter,
	tokens security.Maker,
	tokenTTL time.Duration,
	config *Config,
	log logger.Logger,
) Service {
	return &service{
		sessions:  sessions,
		drafts:    drafts,
		submitter: submitter,
		tokens:    tokens,
		tokenTTL:  tokenTTL,
		config:    config,
		log:       log,
	}
}

// draftTokenLifetime applies when drafts never expire.
const draftTokenLifetime = 365 * 24 * time.Hour

// Start opens a session on a fresh draft, or on a saved one when draftID is
// given, and issues the token that authorizes it. Resuming requires the
// draft token handed out when the draft was saved.
func (s *service) Start(ctx context.Context, draftID *uuid.UUID, draftToken string) (*Session, string, error) {
	draft := models.NewMarketDraft()
	dID := uuid.New()

	if draftID != nil {
		if err := s.AuthorizeDraft(draftToken, *draftID); err != nil {
			return nil, "", err
		}
		saved, err := s.drafts.Load(ctx, *draftID)
		if err != nil {
			return nil, "", err
		}
		draft = saved
		dID = *draftID
	}

	sess := newSession(uuid.New(), dID, draft, sessionDeps{
		submitter: s.submitter,
		drafts:    s.drafts,
		config:    s.config,
		rules:     s.config.Rules(),
		log:       s.log,
	})

	token, _, err := s.tokens.CreateToken(sess.ID(), s.tokenTTL, security.TokenScopeWizard)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	if err := s.sessions.Set(ctx, sess.ID().String(), sess, s.config.SessionTTL); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	s.log.Info("wizard session started", map[string]interface{}{
		"session_id": sess.ID().String(),
		"draft_id":   dID.String(),
		"resumed":    draftID != nil,
	})

	return sess, token, nil
}

// Get returns a live session and extends its idle timeout.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.sessions.Get(ctx, id.String())
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.sessions.Set(ctx, id.String(), sess, s.config.SessionTTL); err != nil {
		s.log.Error(err, map[string]interface{}{"session_id": id.String(), "op": "session touch"})
	}
	return sess, nil
}

// Discard drops a session. A session with a submission in flight is kept.
func (s *service) Discard(ctx context.Context, id uuid.UUID) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess.Submitting() {
		return ErrSubmissionInProgress
	}

	if err := s.sessions.Delete(ctx, id.String()); err != nil {
		return fmt.Errorf("failed to discard session: %w", err)
	}
	return nil
}

func (s *service) Draft(ctx context.Context, draftID uuid.UUID) (models.MarketDraft, error) {
	return s.drafts.Load(ctx, draftID)
}

// Authorize checks that token was issued for sessionID.
func (s *service) Authorize(token string, sessionID uuid.UUID) error {
	return s.verify(token, security.TokenScopeWizard, sessionID)
}

// DraftToken issues the token that grants access to a saved draft. It lives
// as long as the draft.
func (s *service) DraftToken(draftID uuid.UUID) (string, error) {
	ttl := s.config.DraftTTL
	if ttl <= 0 {
		ttl = draftTokenLifetime
	}

	token, _, err := s.tokens.CreateToken(draftID, ttl, security.TokenScopeDraft)
	if err != nil {
		return "", fmt.Errorf("failed to create draft token: %w", err)
	}
	return token, nil
}

// AuthorizeDraft checks that token was issued for draftID.
func (s *service) AuthorizeDraft(token string, draftID uuid.UUID) error {
	return s.verify(token, security.TokenScopeDraft, draftID)
}

func (s *service) verify(token, scope string, subject uuid.UUID) error {
	if token == "" {
		return models.ErrUnauthorized
	}
	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	if payload.Scope != scope || payload.Subject != subject {
		return models.ErrForbidden
	}
	return nil
}
