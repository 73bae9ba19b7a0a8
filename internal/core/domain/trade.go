package domain

import (
	"errors"
	"time"
)

// TradeType is the direction of a position.
type TradeType string

const (
	TypeLong  TradeType = "Long"
	TypeShort TradeType = "Short"
)

// Valid reports whether the value is one of the accepted trade types.
func (t TradeType) Valid() bool {
	return t == TypeLong || t == TypeShort
}

// TradeStatus represents the lifecycle state of a trade.
type TradeStatus string

const (
	StatusOpen   TradeStatus = "Open"
	StatusClosed TradeStatus = "Closed"
)

// Valid reports whether the value is one of the accepted statuses.
func (s TradeStatus) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

var (
	ErrTradeNotFound      = errors.New("trade not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("missing or invalid required field")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Trade is the core aggregate: one recorded position, owned by exactly one
// user. UserID is set at creation from the authenticated caller and is never
// reassignable through an update.
type Trade struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Symbol     string      `json:"symbol"`
	Type       TradeType   `json:"type"`
	EntryPrice float64     `json:"entryPrice"`
	ExitPrice  *float64    `json:"exitPrice,omitempty"`
	Status     TradeStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// TradeUpdate carries a partial update. Nil fields are left untouched.
// There is deliberately no owner field here.
type TradeUpdate struct {
	Symbol     *string
	Type       *TradeType
	EntryPrice *float64
	ExitPrice  *float64
	Status     *TradeStatus
	Notes      *string
}
