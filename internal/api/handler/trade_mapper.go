package handler

import (
	"github.com/tradelog/trade-journal/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createTradeRequest) ports.CreateTradeInput {
	return ports.CreateTradeInput{
		Symbol:     req.Symbol,
		Type:       req.Type,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Notes:      req.Notes,
	}
}

func toUpdateInput(req updateTradeRequest) ports.UpdateTradeInput {
	return ports.UpdateTradeInput{
		Symbol:     req.Symbol,
		Type:       req.Type,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Status:     req.Status,
		Notes:      req.Notes,
	}
}
