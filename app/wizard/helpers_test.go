package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	drafts  []models.MarketDraft
	release chan struct{}
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, d models.MarketDraft) (*models.Market, error) {
	f.mu.Lock()
	f.calls++
	f.drafts = append(f.drafts, d)
	release, err := f.release, f.err
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	m, err := models.NewMarketFromDraft(d, 50)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New()
	return m, nil
}

func (f *fakeSubmitter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSubmitter) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func futureDate() *time.Time {
	t := time.Now().Add(72 * time.Hour)
	return &t
}

// validDraft is the complete draft used across the wizard tests.
func validDraft() models.MarketDraft {
	d := models.NewMarketDraft()
	d.Title = "Will X happen?"
	d.Category = "Tech"
	d.Description = "desc"
	d.CloseDate = futureDate()
	d.MarketType = models.MarketTypeYesNo
	d.InitialLiquidity = 50
	d.MinStake = 1
	d.MaxStake = 100
	d.ResolverType = models.ResolverOracle
	d.AgreedToTerms = true
	return d
}

func newTestSession(draft models.MarketDraft, submitter Submitter) (*Session, *DraftStore) {
	drafts := NewDraftStore(cache.NewMemoryCache[models.MarketDraft](), time.Hour)
	cfg := GetDefaultConfig()
	cfg.SubmitTimeout = 5 * time.Second

	return newSession(uuid.New(), uuid.New(), draft, sessionDeps{
		submitter: submitter,
		drafts:    drafts,
		config:    cfg,
		rules:     cfg.Rules(),
		log:       logger.NewNullLogger(),
	}), drafts
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }
