package markets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/prognos/models"
)

func TestOddsSource_GetOdds(t *testing.T) {
	ctx := context.Background()

	t.Run("yes/no market", func(t *testing.T) {
		repo := new(MockRepository)
		m := testMarket(models.MarketTypeYesNo)
		repo.On("GetOdds", ctx, m.ID).Return(&m, nil)

		odds, err := NewOddsSource(repo).GetOdds(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, models.MarketOdds{MarketID: m.ID, YesOdds: 65, NoOdds: 35, Open: true}, odds)
	})

	t.Run("closed market", func(t *testing.T) {
		repo := new(MockRepository)
		m := testMarket(models.MarketTypeYesNo)
		m.Status = models.MarketStatusClosed
		repo.On("GetOdds", ctx, m.ID).Return(&m, nil)

		odds, err := NewOddsSource(repo).GetOdds(ctx, m.ID)
		require.NoError(t, err)
		assert.False(t, odds.Open)
	})

	t.Run("not binary", func(t *testing.T) {
		repo := new(MockRepository)
		m := testMarket(models.MarketTypeScalar)
		repo.On("GetOdds", ctx, m.ID).Return(&m, nil)

		_, err := NewOddsSource(repo).GetOdds(ctx, m.ID)
		assert.ErrorIs(t, err, models.ErrMarketNotBinary)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		id := uuid.New()
		repo.On("GetOdds", ctx, id).Return(nil, models.ErrRecordNotFound)

		_, err := NewOddsSource(repo).GetOdds(ctx, id)
		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})
}
