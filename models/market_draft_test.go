package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarketDraft_Defaults(t *testing.T) {
	d := NewMarketDraft()

	assert.Empty(t, d.Title)
	assert.Empty(t, d.Category)
	assert.Nil(t, d.CloseDate)
	assert.Empty(t, d.MarketType)
	assert.Equal(t, []string{"", ""}, d.Options)
	assert.Equal(t, 0.0, d.ScalarMin)
	assert.Equal(t, 100.0, d.ScalarMax)
	assert.Equal(t, 100.0, d.InitialLiquidity)
	assert.Equal(t, 1.0, d.MinStake)
	assert.Equal(t, 1000.0, d.MaxStake)
	assert.Equal(t, 2.0, d.CreatorFee)
	assert.Empty(t, d.ResolverType)
	assert.Equal(t, 100.0, d.ResolverBond)
	assert.False(t, d.AgreedToTerms)
}

func TestMarketDraft_AddOption(t *testing.T) {
	d := NewMarketDraft()
	for len(d.Options) < MaxOptions {
		require.NoError(t, d.AddOption())
	}

	assert.Len(t, d.Options, MaxOptions)
	assert.ErrorIs(t, d.AddOption(), ErrTooManyOptions)
}

func TestMarketDraft_RemoveOption(t *testing.T) {
	d := NewMarketDraft()
	d.Options = []string{"a", "b", "c", "d"}

	assert.ErrorIs(t, d.RemoveOption(0), ErrOptionNotRemovable)
	assert.ErrorIs(t, d.RemoveOption(1), ErrOptionNotRemovable)
	assert.ErrorIs(t, d.RemoveOption(4), ErrOptionNotRemovable)

	require.NoError(t, d.RemoveOption(2))
	assert.Equal(t, []string{"a", "b", "d"}, d.Options)

	require.NoError(t, d.RemoveOption(2))
	assert.Equal(t, []string{"a", "b"}, d.Options)
}

func TestMarketDraft_RemoveOptionKeepsMinimum(t *testing.T) {
	d := NewMarketDraft()
	assert.ErrorIs(t, d.RemoveOption(2), ErrOptionNotRemovable)
	assert.Len(t, d.Options, MinOptions)
}

func TestMarketDraft_Clone(t *testing.T) {
	closeAt := time.Now().Add(time.Hour)
	d := NewMarketDraft()
	d.CloseDate = &closeAt

	c := d.Clone()
	c.Options[0] = "changed"
	*c.CloseDate = closeAt.Add(time.Hour)

	assert.Equal(t, "", d.Options[0])
	assert.Equal(t, closeAt, *d.CloseDate)
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("Crypto"))
	assert.True(t, IsCategory("Other"))
	assert.False(t, IsCategory("crypto"))
	assert.False(t, IsCategory(""))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, MarketTypeScalar.Valid())
	assert.False(t, MarketType("binary").Valid())
	assert.True(t, ResolverCommunity.Valid())
	assert.False(t, ResolverType("").Valid())
}
