package ports

import (
	"context"

	"github.com/tradelog/trade-journal/internal/core/domain"
)

// CreateTradeInput carries the caller-supplied fields for a new trade.
// The owner is taken from the authenticated identity, never from here.
type CreateTradeInput struct {
	Symbol     string
	Type       string
	EntryPrice float64
	ExitPrice  *float64
	Notes      string
}

// UpdateTradeInput carries a partial update; nil means "leave unchanged".
type UpdateTradeInput struct {
	Symbol     *string
	Type       *string
	EntryPrice *float64
	ExitPrice  *float64
	Status     *string
	Notes      *string
}

// ListTradesInput scopes and filters a listing. OwnerID is mandatory.
type ListTradesInput struct {
	OwnerID      string
	SearchTerm   string
	StatusFilter string
}

// TradeService defines the owner-scoped use cases. Every operation takes
// the authenticated owner identity and enforces that reads and mutations
// only ever touch that owner's trades.
type TradeService interface {
	Create(ctx context.Context, ownerID string, input CreateTradeInput) (*domain.Trade, error)
	List(ctx context.Context, input ListTradesInput) ([]domain.Trade, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Trade, error)
	Update(ctx context.Context, ownerID, id string, input UpdateTradeInput) (*domain.Trade, error)
	Delete(ctx context.Context, ownerID, id string) error
	Stats(ctx context.Context, ownerID string) (domain.TradeSummary, error)
}
