package handler

// errorResponse documents the error envelope rendered by the central HTTP
// error handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTradeRequest struct {
	Symbol     string   `json:"symbol"     validate:"required"`
	Type       string   `json:"type"       validate:"required,oneof=Long Short"`
	EntryPrice float64  `json:"entryPrice" validate:"required"`
	ExitPrice  *float64 `json:"exitPrice"`
	Notes      string   `json:"notes"`
}

// updateTradeRequest is a partial update: nil fields are left untouched.
// There is intentionally no owner field; ownership is fixed at creation.
type updateTradeRequest struct {
	Symbol     *string  `json:"symbol"     validate:"omitempty,min=1"`
	Type       *string  `json:"type"       validate:"omitempty,oneof=Long Short"`
	EntryPrice *float64 `json:"entryPrice"`
	ExitPrice  *float64 `json:"exitPrice"`
	Status     *string  `json:"status"     validate:"omitempty,oneof=Open Closed"`
	Notes      *string  `json:"notes"`
}

type listTradesQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// --- Response types ---

// deleteTradeResponse echoes the deleted id so the client can drop the row
// from its local list without re-fetching.
type deleteTradeResponse struct {
	ID string `json:"id"`
}
