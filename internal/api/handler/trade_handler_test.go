package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tradelog/trade-journal/internal/api/middleware"
	"github.com/tradelog/trade-journal/internal/core/domain"
	"github.com/tradelog/trade-journal/internal/core/ports"
)

type stubTradeService struct {
	createFn func(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error)
	listFn   func(ctx context.Context, input ports.ListTradesInput) ([]domain.Trade, error)
	getFn    func(ctx context.Context, ownerID, id string) (*domain.Trade, error)
	updateFn func(ctx context.Context, ownerID, id string, input ports.UpdateTradeInput) (*domain.Trade, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
	statsFn  func(ctx context.Context, ownerID string) (domain.TradeSummary, error)
}

func (s *stubTradeService) Create(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubTradeService) List(ctx context.Context, input ports.ListTradesInput) ([]domain.Trade, error) {
	return s.listFn(ctx, input)
}

func (s *stubTradeService) Get(ctx context.Context, ownerID, id string) (*domain.Trade, error) {
	return s.getFn(ctx, ownerID, id)
}

func (s *stubTradeService) Update(ctx context.Context, ownerID, id string, input ports.UpdateTradeInput) (*domain.Trade, error) {
	return s.updateFn(ctx, ownerID, id, input)
}

func (s *stubTradeService) Delete(ctx context.Context, ownerID, id string) error {
	return s.deleteFn(ctx, ownerID, id)
}

func (s *stubTradeService) Stats(ctx context.Context, ownerID string) (domain.TradeSummary, error) {
	return s.statsFn(ctx, ownerID)
}

// newTradeContext builds an authenticated echo context the way the Auth
// middleware would have left it.
func newTradeContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.UserIDKey, userID)
	}
	return c, rec
}

func TestTradeHandler_List_Success(t *testing.T) {
	stub := &stubTradeService{
		listFn: func(ctx context.Context, input ports.ListTradesInput) ([]domain.Trade, error) {
			if input.OwnerID != "userA" {
				t.Fatalf("expected owner userA, got %s", input.OwnerID)
			}
			if input.SearchTerm != "btc" || input.StatusFilter != "Open" {
				t.Fatalf("query params not passed through: %+v", input)
			}
			return []domain.Trade{{ID: "t1", UserID: "userA", Symbol: "BTC"}}, nil
		},
	}
	handler := NewTradeHandler(stub)

	c, rec := newTradeContext(t, http.MethodGet, "/api/trades?search=btc&status=Open", "", "userA")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var trades []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &trades); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(trades) != 1 || trades[0]["id"] != "t1" {
		t.Fatalf("unexpected payload: %+v", trades)
	}
}

func TestTradeHandler_List_MissingIdentity(t *testing.T) {
	handler := NewTradeHandler(&stubTradeService{})

	c, _ := newTradeContext(t, http.MethodGet, "/api/trades", "", "")
	err := handler.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestTradeHandler_Create_Success(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error) {
			if ownerID != "userA" {
				t.Fatalf("expected owner userA, got %s", ownerID)
			}
			if input.Symbol != "BTC" || input.Type != "Long" || input.EntryPrice != 50000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Trade{ID: "t1", UserID: ownerID, Symbol: input.Symbol, Type: domain.TypeLong, EntryPrice: input.EntryPrice, Status: domain.StatusOpen}, nil
		},
	}
	handler := NewTradeHandler(stub)

	c, rec := newTradeContext(t, http.MethodPost, "/api/trades", `{"symbol":"BTC","type":"Long","entryPrice":50000}`, "userA")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Open" {
		t.Fatalf("expected default status Open, got %v", resp["status"])
	}
	if resp["userId"] != "userA" {
		t.Fatalf("expected owner from token, got %v", resp["userId"])
	}
}

func TestTradeHandler_Create_RejectsBadType(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTradeHandler(stub)

	c, _ := newTradeContext(t, http.MethodPost, "/api/trades", `{"symbol":"BTC","type":"Sideways","entryPrice":1}`, "userA")
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTradeHandler_Create_MissingFields(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTradeInput) (*domain.Trade, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTradeHandler(stub)

	for _, body := range []string{
		`{"type":"Long","entryPrice":1}`,
		`{"symbol":"BTC","entryPrice":1}`,
		`{"symbol":"BTC","type":"Long"}`,
	} {
		c, _ := newTradeContext(t, http.MethodPost, "/api/trades", body, "userA")
		err := handler.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestTradeHandler_Update_PassesPartialFields(t *testing.T) {
	stub := &stubTradeService{
		updateFn: func(ctx context.Context, ownerID, id string, input ports.UpdateTradeInput) (*domain.Trade, error) {
			if id != "t1" || ownerID != "userA" {
				t.Fatalf("unexpected args: %s %s", ownerID, id)
			}
			if input.Notes == nil || *input.Notes != "x" {
				t.Fatalf("expected notes update, got %+v", input)
			}
			if input.Symbol != nil || input.Type != nil || input.EntryPrice != nil {
				t.Fatalf("unset fields must stay nil: %+v", input)
			}
			return &domain.Trade{ID: id, UserID: ownerID, Notes: "x"}, nil
		},
	}
	handler := NewTradeHandler(stub)

	c, rec := newTradeContext(t, http.MethodPut, "/api/trades/t1", `{"notes":"x"}`, "userA")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTradeHandler_Update_ForbiddenPassedThrough(t *testing.T) {
	stub := &stubTradeService{
		updateFn: func(ctx context.Context, ownerID, id string, input ports.UpdateTradeInput) (*domain.Trade, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewTradeHandler(stub)

	c, _ := newTradeContext(t, http.MethodPut, "/api/trades/t1", `{"notes":"x"}`, "userB")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden passed through, got %v", err)
	}
}

func TestTradeHandler_Delete_EchoesID(t *testing.T) {
	stub := &stubTradeService{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			if ownerID != "userA" || id != "t1" {
				t.Fatalf("unexpected args: %s %s", ownerID, id)
			}
			return nil
		},
	}
	handler := NewTradeHandler(stub)

	c, rec := newTradeContext(t, http.MethodDelete, "/api/trades/t1", "", "userA")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "t1" {
		t.Fatalf("expected deleted id echoed, got %+v", resp)
	}
}

func TestTradeHandler_Delete_NotFoundPassedThrough(t *testing.T) {
	stub := &stubTradeService{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			return domain.ErrTradeNotFound
		},
	}
	handler := NewTradeHandler(stub)

	c, _ := newTradeContext(t, http.MethodDelete, "/api/trades/missing", "", "userA")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrTradeNotFound) {
		t.Fatalf("expected ErrTradeNotFound passed through, got %v", err)
	}
}

func TestTradeHandler_Stats(t *testing.T) {
	stub := &stubTradeService{
		statsFn: func(ctx context.Context, ownerID string) (domain.TradeSummary, error) {
			return domain.TradeSummary{Count: 2, OpenCount: 1, TotalEntryValue: 53000}, nil
		},
	}
	handler := NewTradeHandler(stub)

	c, rec := newTradeContext(t, http.MethodGet, "/api/trades/stats", "", "userA")
	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) || resp["openCount"] != float64(1) || resp["totalEntryValue"] != float64(53000) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
