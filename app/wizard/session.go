package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

// Session owns one draft and walks it through the wizard steps. All methods
// are safe for concurrent use.
type Session struct {
	mu sync.Mutex
	wg sync.WaitGroup

	id      uuid.UUID
	draftID uuid.UUID
	step    Step
	draft   models.MarketDraft
	errors  map[string]string

	savingDraft bool
	pendingSave bool
	lastSavedAt *time.Time
	submitting  bool
	submitted   bool
	submitErr   error
	market      *models.Market
	submitDone  chan struct{}

	submitter Submitter
	drafts    *DraftStore
	config    *Config
	rules     Rules
	log       logger.Logger
}

type sessionDeps struct {
	submitter Submitter
	drafts    *DraftStore
	config    *Config
	rules     Rules
	log       logger.Logger
}

func newSession(id, draftID uuid.UUID, draft models.MarketDraft, deps sessionDeps) *Session {
	return &Session{
		id:        id,
		draftID:   draftID,
		step:      FirstStep,
		draft:     draft.Clone(),
		errors:    make(map[string]string),
		submitter: deps.submitter,
		drafts:    deps.drafts,
		config:    deps.config,
		rules:     deps.rules,
		log:       deps.log,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) DraftID() uuid.UUID {
	return s.draftID
}

// Edit applies patch and clears the errors of every field it sets.
func (s *Session) Edit(patch *DraftPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}

	touched, err := patch.apply(&s.draft)
	if err != nil {
		return err
	}
	for _, field := range touched {
		delete(s.errors, field)
	}
	return nil
}

// AddOption appends an empty outcome option.
func (s *Session) AddOption() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	return s.draft.AddOption()
}

// RemoveOption drops the option at index.
func (s *Session) RemoveOption(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	return s.draft.RemoveOption(index)
}

// Next validates the current step. On success it advances, capped at the
// review step, and clears the error map; otherwise the error map is replaced
// with the step's failures and a *ValidationError is returned.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}

	if errs := ValidateStep(s.step, s.draft, s.rules); len(errs) > 0 {
		s.errors = errs
		return &ValidationError{Step: s.step, Fields: copyErrors(errs)}
	}

	s.step = s.step.next()
	s.errors = make(map[string]string)
	return nil
}

// Previous steps back without validating. The error map is left as is.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	s.step = s.step.previous()
	return nil
}

// SaveDraft persists a snapshot of the draft in the background. A call made
// while a save is in flight is folded into one follow-up save.
func (s *Session) SaveDraft() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitted {
		return uuid.Nil, ErrAlreadySubmitted
	}

	if s.savingDraft {
		s.pendingSave = true
		return s.draftID, nil
	}

	s.startSaveLocked()
	return s.draftID, nil
}

func (s *Session) startSaveLocked() {
	s.savingDraft = true
	s.pendingSave = false
	snapshot := s.draft.Clone()

	s.wg.Add(1)
	go s.persistDraft(snapshot)
}

func (s *Session) persistDraft(snapshot models.MarketDraft) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.SubmitTimeout)
	defer cancel()

	err := s.drafts.Save(ctx, s.draftID, snapshot)
	if err != nil {
		s.log.Error(err, map[string]interface{}{"session_id": s.id.String(), "draft_id": s.draftID.String()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.savingDraft = false
	if err == nil {
		now := time.Now()
		s.lastSavedAt = &now
	}
	if s.pendingSave && !s.submitted {
		s.startSaveLocked()
	}
}

// Submit validates the draft and hands it to the submitter in the
// background. It is only allowed from the review step. The returned channel
// is closed once the submission has completed either way.
func (s *Session) Submit(ctx context.Context) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return nil, err
	}
	if s.step != LastStep {
		return nil, ErrNotOnReviewStep
	}

	failing := LastStep
	var errs map[string]string
	if s.config.ValidateAllOnSubmit {
		failing, errs = ValidateAll(s.draft, s.rules)
	} else {
		errs = ValidateStep(LastStep, s.draft, s.rules)
	}
	if len(errs) > 0 {
		s.step = failing
		s.errors = errs
		return nil, &ValidationError{Step: failing, Fields: copyErrors(errs)}
	}

	s.errors = make(map[string]string)
	s.submitting = true
	s.submitErr = nil
	done := make(chan struct{})
	s.submitDone = done

	s.wg.Add(1)
	go s.runSubmission(context.WithoutCancel(ctx), s.draft.Clone(), done)

	return done, nil
}

func (s *Session) runSubmission(ctx context.Context, snapshot models.MarketDraft, done chan struct{}) {
	defer s.wg.Done()
	defer close(done)

	ctx, cancel := context.WithTimeout(ctx, s.config.SubmitTimeout)
	defer cancel()

	market, err := s.submitter.Submit(ctx, snapshot)
	if err == nil && market == nil {
		err = ErrEmptySubmission
	}
	if err == nil {
		if derr := s.drafts.Delete(ctx, s.draftID); derr != nil {
			s.log.Error(derr, map[string]interface{}{"draft_id": s.draftID.String(), "op": "discard draft"})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	if err != nil {
		s.submitErr = &SubmissionError{Err: err}
		s.log.Error(s.submitErr, map[string]interface{}{"session_id": s.id.String()})
		return
	}

	s.submitted = true
	s.market = market
	s.log.Info("market submitted", map[string]interface{}{
		"session_id": s.id.String(),
		"market_id":  market.ID.String(),
	})
}

// Done returns the channel of the latest submission, or nil if none started.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitDone
}

// Submitting reports whether a submission is in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Wait blocks until background saves and submissions have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// View returns a copy of the session state.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:          s.id,
		DraftID:     s.draftID,
		Step:        s.step,
		StepName:    s.step.String(),
		Draft:       s.draft.Clone(),
		Errors:      copyErrors(s.errors),
		CanGoBack:   s.step > FirstStep && !s.submitting && !s.submitted,
		CanSubmit:   s.step == LastStep && !s.submitting && !s.submitted,
		Submitting:  s.submitting,
		SavingDraft: s.savingDraft,
		Submitted:   s.submitted,
		Market:      s.market,
	}
	if s.lastSavedAt != nil {
		t := *s.lastSavedAt
		v.LastSavedAt = &t
	}
	if s.submitErr != nil {
		v.SubmitError = s.submitErr.Error()
	}
	return v
}

func (s *Session) editable() error {
	if s.submitting {
		return ErrSubmissionInProgress
	}
	if s.submitted {
		return ErrAlreadySubmitted
	}
	return nil
}

func copyErrors(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
