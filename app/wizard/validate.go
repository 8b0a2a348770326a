package wizard

import (
	"time"

	"github.com/joefazee/prognos/internal/validator"
	"github.com/joefazee/prognos/models"
)

const minInitialLiquidity = 10

// Rules tunes validation beyond the fixed per-step checks.
type Rules struct {
	RequireFutureCloseDate bool
	Now                    func() time.Time
}

func (r Rules) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// ValidateStep checks the fields owned by step and returns every failure
// keyed by field name. An empty map means the step is complete.
func ValidateStep(step Step, d models.MarketDraft, rules Rules) map[string]string {
	v := validator.New()

	switch step {
	case StepBasics:
		v.Check(validator.NotBlank(d.Title), models.FieldTitle, "Title is required")
		if d.Category == "" {
			v.AddError(models.FieldCategory, "Category is required")
		} else {
			v.Check(models.IsCategory(d.Category), models.FieldCategory, "Category is not supported")
		}
		v.Check(validator.NotBlank(d.Description), models.FieldDescription, "Description is required")
		v.Check(validator.Present(d.CloseDate), models.FieldCloseDate, "Close date is required")
		if rules.RequireFutureCloseDate && validator.Present(d.CloseDate) {
			v.Check(validator.After(d.CloseDate, rules.now()), models.FieldCloseDate, "Close date must be in the future")
		}

	case StepType:
		if d.MarketType == "" {
			v.AddError(models.FieldMarketType, "Market type is required")
		} else {
			v.Check(d.MarketType.Valid(), models.FieldMarketType, "Market type is not supported")
		}
		switch d.MarketType {
		case models.MarketTypeMultiple:
			v.Check(len(d.Options) >= models.MinOptions && validator.AllNotBlank(d.Options),
				models.FieldOptions, "All options must be filled")
		case models.MarketTypeScalar:
			v.Check(validator.NotBlank(d.ScalarUnit), models.FieldScalarUnit, "Unit is required for scalar markets")
		}

	case StepLiquidity:
		v.Check(d.InitialLiquidity >= minInitialLiquidity, models.FieldInitialLiquidity, "Minimum liquidity is $10")
		v.Check(d.MinStake < d.MaxStake, models.FieldMinStake, "Min stake must be less than max stake")

	case StepResolver:
		if d.ResolverType == "" {
			v.AddError(models.FieldResolverType, "Resolver type is required")
		} else {
			v.Check(d.ResolverType.Valid(), models.FieldResolverType, "Resolver type is not supported")
		}
		if d.ResolverType == models.ResolverDesignated {
			v.Check(validator.NotBlank(d.ResolverAddress), models.FieldResolverAddress, "Resolver address is required")
		}

	case StepReview:
		v.Check(d.AgreedToTerms, models.FieldAgreedToTerms, "You must agree to the terms")
	}

	return v.Errors
}

// ValidateAll checks every step in order and reports the first one that
// fails together with its errors. A valid draft yields LastStep and nil.
func ValidateAll(d models.MarketDraft, rules Rules) (Step, map[string]string) {
	for step := FirstStep; step <= LastStep; step++ {
		if errs := ValidateStep(step, d, rules); len(errs) > 0 {
			return step, errs
		}
	}
	return LastStep, nil
}
