package ports

import (
	"context"

	"github.com/tradelog/trade-journal/internal/core/domain"
)

// TradeRepository defines persistence operations for trades. Each operation
// touches a single document; the store guarantees per-document atomicity.
type TradeRepository interface {
	Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	// FindByID returns domain.ErrTradeNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Trade, error)
	// ListByOwner returns the owner's trades in natural insertion order.
	// Callers must not rely on any particular ordering.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Trade, error)
	// Update applies only the non-nil fields of upd and returns the
	// resulting document. The owner field is never part of an update.
	Update(ctx context.Context, id string, upd domain.TradeUpdate) (*domain.Trade, error)
	Delete(ctx context.Context, id string) error
}
