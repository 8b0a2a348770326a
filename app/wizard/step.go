package wizard

// Step is a wizard page, numbered from 1.
type Step int

const (
	StepBasics Step = iota + 1
	StepType
	StepLiquidity
	StepResolver
	StepReview

	FirstStep = StepBasics
	LastStep  = StepReview
)

var stepNames = map[Step]string{
	StepBasics:    "basics",
	StepType:      "type",
	StepLiquidity: "liquidity",
	StepResolver:  "resolver",
	StepReview:    "review",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is within the wizard.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) next() Step {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

func (s Step) previous() Step {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}
