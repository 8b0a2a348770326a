package payout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

func TestOddsProvider_CachesSnapshots(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 60, 40), nil).Once()

	p := NewOddsProvider(source, cache.NewMemoryCache[models.MarketOdds](), time.Minute, logger.NewNullLogger())

	for i := 0; i < 3; i++ {
		odds, err := p.GetOdds(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 60.0, odds.YesOdds)
	}
	source.AssertNumberOfCalls(t, "GetOdds", 1)

	require.NoError(t, p.Invalidate(context.Background(), id))
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 70, 30), nil).Once()

	odds, err := p.GetOdds(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 70.0, odds.YesOdds)
}

func TestOddsProvider_ZeroTTLAlwaysReads(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 50, 50), nil)

	p := NewOddsProvider(source, cache.NewMemoryCache[models.MarketOdds](), 0, logger.NewNullLogger())
	for i := 0; i < 2; i++ {
		_, err := p.GetOdds(context.Background(), id)
		require.NoError(t, err)
	}
	source.AssertNumberOfCalls(t, "GetOdds", 2)
}

func TestOddsProvider_PropagatesSourceErrors(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(models.MarketOdds{}, models.ErrRecordNotFound)

	p := NewOddsProvider(source, cache.NewMemoryCache[models.MarketOdds](), time.Minute, logger.NewNullLogger())
	_, err := p.GetOdds(context.Background(), id)

	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestOddsProvider_CacheFailureFallsThrough(t *testing.T) {
	id := uuid.New()
	source := new(MockOddsSource)
	source.On("GetOdds", mock.Anything, id).Return(openOdds(id, 55, 45), nil)

	broken := new(cache.MockCache[models.MarketOdds])
	broken.On("Get", mock.Anything, id.String()).Return(models.MarketOdds{}, errors.New("redis down"))
	broken.On("Set", mock.Anything, id.String(), mock.Anything, time.Minute).Return(errors.New("redis down"))

	p := NewOddsProvider(source, broken, time.Minute, logger.NewNullLogger())
	odds, err := p.GetOdds(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 55.0, odds.YesOdds)
}

type slowSource struct {
	calls atomic.Int32
	delay time.Duration
}

func (s *slowSource) GetOdds(_ context.Context, id uuid.UUID) (models.MarketOdds, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	return openOdds(id, 50, 50), nil
}

func TestOddsProvider_CollapsesConcurrentMisses(t *testing.T) {
	id := uuid.New()
	source := &slowSource{delay: 50 * time.Millisecond}
	p := NewOddsProvider(source, cache.NewMemoryCache[models.MarketOdds](), time.Minute, logger.NewNullLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.GetOdds(context.Background(), id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, source.calls.Load(), int32(20))
}
