package payout

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/prognos/models"
)

type MockOddsSource struct {
	mock.Mock
}

func (m *MockOddsSource) GetOdds(ctx context.Context, marketID uuid.UUID) (models.MarketOdds, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(models.MarketOdds), args.Error(1)
}

func openOdds(id uuid.UUID, yes, no float64) models.MarketOdds {
	return models.MarketOdds{MarketID: id, YesOdds: yes, NoOdds: no, Open: true}
}
