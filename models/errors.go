package models

import "errors"

var (
	ErrInvalidStakeAmount = errors.New("invalid stake amount")
	ErrInvalidOdds        = errors.New("invalid odds")
	ErrInvalidFeeRate     = errors.New("invalid fee rate")
	ErrInvalidSide        = errors.New("invalid side")

	ErrTooManyOptions      = errors.New("market cannot have more than 6 options")
	ErrTooFewOptions       = errors.New("market needs at least 2 options")
	ErrOptionNotRemovable  = errors.New("option cannot be removed")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidResolverType = errors.New("invalid resolver type")

	ErrInvalidMarketTitle = errors.New("invalid market title")
	ErrInvalidMarketType  = errors.New("invalid market type")
	ErrInvalidCloseTime   = errors.New("invalid close time")
	ErrMarketNotOpen      = errors.New("market is not open for trading")
	ErrMarketNotBinary    = errors.New("market has no yes/no odds")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrInvalidQuickAmounts             = errors.New("quick amounts must be positive")
	ErrInvalidCacheTTL                 = errors.New("invalid cache TTL")
	ErrInvalidStreamInterval           = errors.New("invalid stream interval")
	ErrInvalidPageSize                 = errors.New("invalid page size")
	ErrInvalidInitialOdds              = errors.New("initial odds must be within (0, 100)")
	ErrInvalidSubmitTimeout            = errors.New("invalid submit timeout")
	ErrInvalidSessionTTL               = errors.New("invalid session TTL")
	ErrInvalidDraftTTL                 = errors.New("invalid draft TTL")
	ErrInvalidTokenKey                 = errors.New("session token key must be 32 bytes")

	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)
