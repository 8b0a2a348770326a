package wizard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/models"
)

// StartSessionRequest optionally resumes a saved draft
// @Description Start a wizard session, fresh or from a saved draft
type StartSessionRequest struct {
	DraftID *uuid.UUID `json:"draft_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// DraftPatch sets the given draft fields; omitted fields are left alone
// @Description Partial update of the market draft
type DraftPatch struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=255" example:"Will BTC close above $100k in 2026?"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=50" example:"Crypto"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	CloseDate   *time.Time `json:"close_date,omitempty" example:"2026-12-31T23:59:59Z"`

	MarketType *models.MarketType `json:"market_type,omitempty" validate:"omitempty,oneof=yes-no multiple scalar" example:"yes-no"`
	Options    *[]string          `json:"options,omitempty" validate:"omitempty,min=2,max=6,dive,max=100"`
	ScalarMin  *float64           `json:"scalar_min,omitempty"`
	ScalarMax  *float64           `json:"scalar_max,omitempty"`
	ScalarUnit *string            `json:"scalar_unit,omitempty" validate:"omitempty,max=50" example:"USD"`

	InitialLiquidity *float64 `json:"initial_liquidity,omitempty" validate:"omitempty,gte=0" example:"100"`
	MinStake         *float64 `json:"min_stake,omitempty" validate:"omitempty,gte=0" example:"1"`
	MaxStake         *float64 `json:"max_stake,omitempty" validate:"omitempty,gte=0" example:"1000"`
	CreatorFee       *float64 `json:"creator_fee,omitempty" validate:"omitempty,gte=0,lte=10" example:"2"`

	ResolverType    *models.ResolverType `json:"resolver_type,omitempty" validate:"omitempty,oneof=oracle designated community" example:"oracle"`
	ResolverAddress *string              `json:"resolver_address,omitempty" validate:"omitempty,max=255"`
	ResolverBond    *float64             `json:"resolver_bond,omitempty" validate:"omitempty,gte=0" example:"100"`

	AgreedToTerms *bool `json:"agreed_to_terms,omitempty"`
}

// apply writes the set fields into d and returns their names.
func (p *DraftPatch) apply(d *models.MarketDraft) ([]string, error) {
	if p.Options != nil {
		if n := len(*p.Options); n < models.MinOptions || n > models.MaxOptions {
			return nil, fmt.Errorf("%w: options must have between %d and %d entries",
				ErrInvalidPatch, models.MinOptions, models.MaxOptions)
		}
	}

	var touched []string
	set := func(field string, ok bool, write func()) {
		if ok {
			write()
			touched = append(touched, field)
		}
	}

	set(models.FieldTitle, p.Title != nil, func() { d.Title = *p.Title })
	set(models.FieldCategory, p.Category != nil, func() { d.Category = *p.Category })
	set(models.FieldDescription, p.Description != nil, func() { d.Description = *p.Description })
	set(models.FieldCloseDate, p.CloseDate != nil, func() { t := *p.CloseDate; d.CloseDate = &t })
	set(models.FieldMarketType, p.MarketType != nil, func() { d.MarketType = *p.MarketType })
	set(models.FieldOptions, p.Options != nil, func() { d.Options = append([]string(nil), (*p.Options)...) })
	set(models.FieldScalarMin, p.ScalarMin != nil, func() { d.ScalarMin = *p.ScalarMin })
	set(models.FieldScalarMax, p.ScalarMax != nil, func() { d.ScalarMax = *p.ScalarMax })
	set(models.FieldScalarUnit, p.ScalarUnit != nil, func() { d.ScalarUnit = *p.ScalarUnit })
	set(models.FieldInitialLiquidity, p.InitialLiquidity != nil, func() { d.InitialLiquidity = *p.InitialLiquidity })
	set(models.FieldMinStake, p.MinStake != nil, func() { d.MinStake = *p.MinStake })
	set(models.FieldMaxStake, p.MaxStake != nil, func() { d.MaxStake = *p.MaxStake })
	set(models.FieldCreatorFee, p.CreatorFee != nil, func() { d.CreatorFee = *p.CreatorFee })
	set(models.FieldResolverType, p.ResolverType != nil, func() { d.ResolverType = *p.ResolverType })
	set(models.FieldResolverAddress, p.ResolverAddress != nil, func() { d.ResolverAddress = *p.ResolverAddress })
	set(models.FieldResolverBond, p.ResolverBond != nil, func() { d.ResolverBond = *p.ResolverBond })
	set(models.FieldAgreedToTerms, p.AgreedToTerms != nil, func() { d.AgreedToTerms = *p.AgreedToTerms })

	return touched, nil
}

// SessionView is a point in time copy of a session
// @Description Wizard session state
type SessionView struct {
	ID          uuid.UUID          `json:"id"`
	DraftID     uuid.UUID          `json:"draft_id"`
	Step        Step               `json:"step" example:"1"`
	StepName    string             `json:"step_name" example:"basics"`
	Draft       models.MarketDraft `json:"draft"`
	Errors      map[string]string  `json:"errors"`
	CanGoBack   bool               `json:"can_go_back"`
	CanSubmit   bool               `json:"can_submit"`
	Submitting  bool               `json:"submitting"`
	SavingDraft bool               `json:"saving_draft"`
	LastSavedAt *time.Time         `json:"last_saved_at,omitempty"`
	Submitted   bool               `json:"submitted"`
	SubmitError string             `json:"submit_error,omitempty"`
	Market      *models.Market     `json:"market,omitempty"`
}

// StartSessionResponse carries the new session and its bearer token
type StartSessionResponse struct {
	Session SessionView `json:"session"`
	Token   string      `json:"token"`
}

// SaveDraftResponse acknowledges a background draft save. DraftToken must be
// presented to read or resume the draft.
type SaveDraftResponse struct {
	DraftID    uuid.UUID `json:"draft_id"`
	DraftToken string    `json:"draft_token"`
}

