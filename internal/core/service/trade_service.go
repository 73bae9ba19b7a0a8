package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradelog/trade-journal/internal/api/metrics"
	"github.com/tradelog/trade-journal/internal/core/domain"
	"github.com/tradelog/trade-journal/internal/core/ports"
)

// TradeService implements the owner-scoped trade use cases.
type TradeService struct {
	repo   ports.TradeRepository
	logger zerolog.Logger
}

func NewTradeService(repo ports.TradeRepository, logger zerolog.Logger) *TradeService {
	return &TradeService{repo: repo, logger: logger}
}

// Create persists a new trade owned by ownerID. Symbol, type and entry
// price are required; status defaults to Open. The zero entry price counts
// as missing, matching the journal's original contract.
func (s *TradeService) Create(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error) {
	if input.Symbol == "" || input.Type == "" || input.EntryPrice == 0 {
		return nil, domain.ErrValidation
	}

	tradeType := domain.TradeType(input.Type)
	if !tradeType.Valid() {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	trade := &domain.Trade{
		UserID:     ownerID,
		Symbol:     input.Symbol,
		Type:       tradeType,
		EntryPrice: input.EntryPrice,
		ExitPrice:  input.ExitPrice,
		Status:     domain.StatusOpen,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, trade)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to create trade")
		metrics.TradeErrorsTotal.WithLabelValues("create_failed").Inc()
		return nil, err
	}

	metrics.TradesCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	s.logger.Info().Str("trade_id", created.ID).Str("user_id", ownerID).Str("symbol", created.Symbol).Msg("trade created")
	return created, nil
}

// List returns the owner's trades, optionally narrowed by a symbol search
// term and a status filter. It never returns another user's trades: the
// repository query itself is scoped by owner.
func (s *TradeService) List(ctx context.Context, input ports.ListTradesInput) ([]domain.Trade, error) {
	trades, err := s.repo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return domain.FilterTrades(trades, input.SearchTerm, input.StatusFilter), nil
}

// Get returns a single trade after the ownership check.
func (s *TradeService) Get(ctx context.Context, ownerID, id string) (*domain.Trade, error) {
	return s.authorize(ctx, ownerID, id)
}

// Update applies a partial update to an owned trade. The owner field is
// not part of the input type at all, so it can never be reassigned.
func (s *TradeService) Update(ctx context.Context, ownerID, id string, input ports.UpdateTradeInput) (*domain.Trade, error) {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return nil, err
	}

	upd, err := toTradeUpdate(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		metrics.TradeErrorsTotal.WithLabelValues("update_failed").Inc()
		return nil, err
	}

	s.logger.Info().Str("trade_id", id).Str("user_id", ownerID).Msg("trade updated")
	return updated, nil
}

// Delete removes an owned trade.
func (s *TradeService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.TradeErrorsTotal.WithLabelValues("delete_failed").Inc()
		return err
	}

	metrics.TradesDeletedTotal.Inc()
	s.logger.Info().Str("trade_id", id).Str("user_id", ownerID).Msg("trade deleted")
	return nil
}

// Stats aggregates over the owner's full, unfiltered list.
func (s *TradeService) Stats(ctx context.Context, ownerID string) (domain.TradeSummary, error) {
	trades, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.TradeSummary{}, err
	}
	return domain.TradeStats(trades), nil
}

// authorize is the single ownership gate shared by Get, Update and Delete.
// The order is fixed: fetch first (absent → ErrTradeNotFound), then compare
// owners (mismatch → ErrForbidden). A caller probing a non-existent id sees
// NotFound, never Forbidden.
func (s *TradeService) authorize(ctx context.Context, ownerID, id string) (*domain.Trade, error) {
	trade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.UserID != ownerID {
		metrics.TradeErrorsTotal.WithLabelValues("forbidden").Inc()
		s.logger.Warn().Str("trade_id", id).Str("user_id", ownerID).Msg("ownership mismatch")
		return nil, domain.ErrForbidden
	}
	return trade, nil
}

// toTradeUpdate validates enum fields that are present and converts the
// transport-level partial input into the repository's update document.
func toTradeUpdate(input ports.UpdateTradeInput) (domain.TradeUpdate, error) {
	var upd domain.TradeUpdate

	if input.Symbol != nil {
		if *input.Symbol == "" {
			return upd, domain.ErrValidation
		}
		upd.Symbol = input.Symbol
	}
	if input.Type != nil {
		t := domain.TradeType(*input.Type)
		if !t.Valid() {
			return upd, domain.ErrValidation
		}
		upd.Type = &t
	}
	if input.Status != nil {
		st := domain.TradeStatus(*input.Status)
		if !st.Valid() {
			return upd, domain.ErrValidation
		}
		upd.Status = &st
	}
	upd.EntryPrice = input.EntryPrice
	upd.ExitPrice = input.ExitPrice
	upd.Notes = input.Notes

	return upd, nil
}
