package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MarketStatus represents the current status of a market
type MarketStatus string

const (
	MarketStatusOpen     MarketStatus = "open"
	MarketStatusClosed   MarketStatus = "closed"
	MarketStatusResolved MarketStatus = "resolved"
)

func (s MarketStatus) Valid() bool {
	switch s {
	case MarketStatusOpen, MarketStatusClosed, MarketStatusResolved:
		return true
	}
	return false
}

// Market represents a prediction market created through the wizard
type Market struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title            string          `gorm:"type:varchar(255);not null" json:"title"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Category         string          `gorm:"type:varchar(50);not null;index" json:"category"`
	MarketType       MarketType      `gorm:"type:varchar(20);not null" json:"market_type"`
	Status           MarketStatus    `gorm:"type:varchar(20);default:'open';index" json:"status"`
	CloseTime        time.Time       `gorm:"type:timestamptz;not null;index" json:"close_time"`
	Options          datatypes.JSON  `gorm:"type:jsonb" json:"options,omitempty"`
	ScalarMin        decimal.Decimal `gorm:"type:decimal(20,4)" json:"scalar_min"`
	ScalarMax        decimal.Decimal `gorm:"type:decimal(20,4)" json:"scalar_max"`
	ScalarUnit       string          `gorm:"type:varchar(50)" json:"scalar_unit,omitempty"`
	InitialLiquidity decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"initial_liquidity"`
	MinStake         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"min_stake"`
	MaxStake         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"max_stake"`
	CreatorFee       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"creator_fee"`
	ResolverType     ResolverType    `gorm:"type:varchar(20);not null" json:"resolver_type"`
	ResolverAddress  string          `gorm:"type:varchar(255)" json:"resolver_address,omitempty"`
	ResolverBond     decimal.Decimal `gorm:"type:decimal(20,2)" json:"resolver_bond"`
	YesOdds          decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"yes_odds"`
	NoOdds           decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"no_odds"`
	TotalPoolAmount  decimal.Decimal `gorm:"type:decimal(20,2);default:0.00" json:"total_pool_amount"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Market model
func (*Market) TableName() string {
	return "markets"
}

// BeforeCreate sets up the model before creation
func (m *Market) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NewMarketFromDraft maps a validated draft onto an open market. The pool
// starts at the initial liquidity and both sides are priced at initialOdds.
func NewMarketFromDraft(d MarketDraft, initialOdds float64) (*Market, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrInvalidMarketTitle
	}
	if !IsCategory(d.Category) {
		return nil, ErrInvalidCategory
	}
	if !d.MarketType.Valid() {
		return nil, ErrInvalidMarketType
	}
	if !d.ResolverType.Valid() {
		return nil, ErrInvalidResolverType
	}
	if d.CloseDate == nil {
		return nil, ErrInvalidCloseTime
	}

	m := &Market{
		Title:            d.Title,
		Description:      d.Description,
		Category:         d.Category,
		MarketType:       d.MarketType,
		Status:           MarketStatusOpen,
		CloseTime:        d.CloseDate.UTC(),
		InitialLiquidity: decimal.NewFromFloat(d.InitialLiquidity),
		MinStake:         decimal.NewFromFloat(d.MinStake),
		MaxStake:         decimal.NewFromFloat(d.MaxStake),
		CreatorFee:       decimal.NewFromFloat(d.CreatorFee),
		ResolverType:     d.ResolverType,
		ResolverBond:     decimal.NewFromFloat(d.ResolverBond),
		YesOdds:          decimal.NewFromFloat(initialOdds),
		NoOdds:           decimal.NewFromFloat(100 - initialOdds),
		TotalPoolAmount:  decimal.NewFromFloat(d.InitialLiquidity),
	}

	switch d.MarketType {
	case MarketTypeMultiple:
		raw, err := json.Marshal(d.Options)
		if err != nil {
			return nil, err
		}
		m.Options = datatypes.JSON(raw)
	case MarketTypeScalar:
		m.ScalarMin = decimal.NewFromFloat(d.ScalarMin)
		m.ScalarMax = decimal.NewFromFloat(d.ScalarMax)
		m.ScalarUnit = d.ScalarUnit
	}

	if d.ResolverType == ResolverDesignated {
		m.ResolverAddress = d.ResolverAddress
	}

	return m, nil
}

// Outcomes lists the tradable outcome labels.
func (m *Market) Outcomes() []string {
	switch m.MarketType {
	case MarketTypeMultiple:
		var opts []string
		if len(m.Options) > 0 {
			if err := json.Unmarshal(m.Options, &opts); err != nil {
				return nil
			}
		}
		return opts
	case MarketTypeScalar:
		return nil
	}
	return []string{"Yes", "No"}
}

// IsOpen checks if the market is open for trading
func (m *Market) IsOpen() bool {
	return m.Status == MarketStatusOpen && time.Now().Before(m.CloseTime)
}

// Odds returns the current odds snapshot.
func (m *Market) Odds() MarketOdds {
	yes, _ := m.YesOdds.Float64()
	no, _ := m.NoOdds.Float64()
	return MarketOdds{
		MarketID: m.ID,
		YesOdds:  yes,
		NoOdds:   no,
		Open:     m.IsOpen(),
	}
}
