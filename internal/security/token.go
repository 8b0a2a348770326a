package security

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenScopeWizard = "wizard"
	TokenScopeDraft  = "wizard_draft"
)

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token bound to subject for a specific duration
	CreateToken(subject uuid.UUID, duration time.Duration, scope string) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
