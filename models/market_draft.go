package models

import (
	"time"
)

// MarketType is the shape of a market's outcome space.
type MarketType string

const (
	MarketTypeYesNo    MarketType = "yes-no"
	MarketTypeMultiple MarketType = "multiple"
	MarketTypeScalar   MarketType = "scalar"
)

// MarketTypes lists the market types in wizard order.
var MarketTypes = []MarketType{MarketTypeYesNo, MarketTypeMultiple, MarketTypeScalar}

func (t MarketType) Valid() bool {
	switch t {
	case MarketTypeYesNo, MarketTypeMultiple, MarketTypeScalar:
		return true
	}
	return false
}

// ResolverType decides who settles a market.
type ResolverType string

const (
	ResolverOracle     ResolverType = "oracle"
	ResolverDesignated ResolverType = "designated"
	ResolverCommunity  ResolverType = "community"
)

var ResolverTypes = []ResolverType{ResolverOracle, ResolverDesignated, ResolverCommunity}

func (t ResolverType) Valid() bool {
	switch t {
	case ResolverOracle, ResolverDesignated, ResolverCommunity:
		return true
	}
	return false
}

// Categories lists the selectable market categories in display order.
var Categories = []string{
	"Crypto",
	"Politics",
	"Sports",
	"Tech",
	"Finance",
	"Entertainment",
	"Science",
	"Other",
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Draft field names, used as error map keys.
const (
	FieldTitle            = "title"
	FieldCategory         = "category"
	FieldDescription      = "description"
	FieldCloseDate        = "close_date"
	FieldMarketType       = "market_type"
	FieldOptions          = "options"
	FieldScalarMin        = "scalar_min"
	FieldScalarMax        = "scalar_max"
	FieldScalarUnit       = "scalar_unit"
	FieldInitialLiquidity = "initial_liquidity"
	FieldMinStake         = "min_stake"
	FieldMaxStake         = "max_stake"
	FieldCreatorFee       = "creator_fee"
	FieldResolverType     = "resolver_type"
	FieldResolverAddress  = "resolver_address"
	FieldResolverBond     = "resolver_bond"
	FieldAgreedToTerms    = "agreed_to_terms"
)

const (
	MinOptions = 2
	MaxOptions = 6

	// options below this index are fixed
	removableOptionIndex = 2
)

// MarketDraft is the record edited by the creation wizard.
type MarketDraft struct {
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	CloseDate   *time.Time `json:"close_date"`

	MarketType MarketType `json:"market_type"`
	Options    []string   `json:"options"`
	ScalarMin  float64    `json:"scalar_min"`
	ScalarMax  float64    `json:"scalar_max"`
	ScalarUnit string     `json:"scalar_unit"`

	InitialLiquidity float64 `json:"initial_liquidity"`
	MinStake         float64 `json:"min_stake"`
	MaxStake         float64 `json:"max_stake"`
	CreatorFee       float64 `json:"creator_fee"`

	ResolverType    ResolverType `json:"resolver_type"`
	ResolverAddress string       `json:"resolver_address"`
	ResolverBond    float64      `json:"resolver_bond"`

	AgreedToTerms bool `json:"agreed_to_terms"`
}

// NewMarketDraft returns a draft populated with the wizard defaults.
func NewMarketDraft() MarketDraft {
	return MarketDraft{
		Options:          []string{"", ""},
		ScalarMin:        0,
		ScalarMax:        100,
		InitialLiquidity: 100,
		MinStake:         1,
		MaxStake:         1000,
		CreatorFee:       2,
		ResolverBond:     100,
	}
}

// AddOption appends an empty option.
func (d *MarketDraft) AddOption() error {
	if len(d.Options) >= MaxOptions {
		return ErrTooManyOptions
	}
	d.Options = append(d.Options, "")
	return nil
}

// RemoveOption deletes the option at index. The first two options are
// permanent.
func (d *MarketDraft) RemoveOption(index int) error {
	if index < removableOptionIndex || index >= len(d.Options) {
		return ErrOptionNotRemovable
	}
	if len(d.Options) <= MinOptions {
		return ErrTooFewOptions
	}
	d.Options = append(d.Options[:index:index], d.Options[index+1:]...)
	return nil
}

// Clone returns a deep copy.
func (d MarketDraft) Clone() MarketDraft {
	out := d
	if d.Options != nil {
		out.Options = append([]string(nil), d.Options...)
	}
	if d.CloseDate != nil {
		t := *d.CloseDate
		out.CloseDate = &t
	}
	return out
}
