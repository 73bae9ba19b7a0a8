package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradelog/trade-journal/internal/core/ports"
)

// TradeHandler handles HTTP requests for trade operations. Every route is
// behind the Auth middleware; ownership is enforced by the service.
type TradeHandler struct {
	service ports.TradeService
}

func NewTradeHandler(service ports.TradeService) *TradeHandler {
	return &TradeHandler{service: service}
}

// List handles GET /api/trades — the caller's own trades only.
//
// @Summary      List the caller's trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Symbol substring, case-insensitive"
// @Param        status  query     string  false  "Open, Closed, or All"
// @Success      200     {array}   domain.Trade
// @Failure      401     {object}  errorResponse
// @Router       /api/trades [get]
func (h *TradeHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var q listTradesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	trades, err := h.service.List(c.Request().Context(), ports.ListTradesInput{
		OwnerID:      userID,
		SearchTerm:   q.Search,
		StatusFilter: q.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trades)
}

// Stats handles GET /api/trades/stats — aggregates over the caller's full list.
//
// @Summary      Trade summary stats for the caller
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.TradeSummary
// @Failure      401  {object}  errorResponse
// @Router       /api/trades/stats [get]
func (h *TradeHandler) Stats(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /api/trades/:id.
//
// @Summary      Get one of the caller's trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trade id"
// @Success      200  {object}  domain.Trade
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/trades/{id} [get]
func (h *TradeHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	trade, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Create handles POST /api/trades. The caller becomes the owner.
//
// @Summary      Record a new trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTradeRequest  true  "Trade details"
// @Success      200   {object}  domain.Trade
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/trades [post]
func (h *TradeHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.service.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Update handles PUT /api/trades/:id — partial update, owner immutable.
//
// @Summary      Update one of the caller's trades
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Trade id"
// @Param        body  body      updateTradeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Trade
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/trades/{id} [put]
func (h *TradeHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Delete handles DELETE /api/trades/:id.
//
// @Summary      Delete one of the caller's trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trade id"
// @Success      200  {object}  deleteTradeResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/trades/{id} [delete]
func (h *TradeHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteTradeResponse{ID: id})
}
