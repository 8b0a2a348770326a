package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrNotOnReviewStep      = errors.New("submit is only allowed from the review step")
	ErrAlreadySubmitted     = errors.New("market has already been submitted")
	ErrSessionNotFound      = errors.New("wizard session not found")
	ErrDraftNotFound        = errors.New("draft not found")
	ErrInvalidPatch         = errors.New("invalid draft patch")
	ErrEmptySubmission      = errors.New("submitter returned no market")
)

// ValidationError carries the failing step and its field messages.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("step %d (%s) is invalid: %s", e.Step, e.Step, strings.Join(keys, ", "))
}

// SubmissionError wraps a failure from the market submitter. The draft is
// kept so the submit can be retried.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("market submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
