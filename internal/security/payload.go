package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Different types of error that returned from the VerifyToken
var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidKey   = errors.New("invalid key size")
)

// Payload contains the payload data of the token
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Subject   uuid.UUID `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
	Scope     string    `json:"scope"`
}

// NewPayload creates a new payload for subject valid for duration
func NewPayload(subject uuid.UUID, duration time.Duration, scope string) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payload := &Payload{
		ID:        tokenID,
		Subject:   subject,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
		Scope:     scope,
	}

	return payload, nil
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
