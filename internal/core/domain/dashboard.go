package domain

import "strings"

// StatusFilterAll matches every trade regardless of status.
const StatusFilterAll = "All"

// FilterTrades returns the trades whose symbol contains searchTerm
// (case-insensitive) and whose status matches statusFilter. An empty or
// "All" statusFilter matches everything. The input slice is not modified.
func FilterTrades(trades []Trade, searchTerm, statusFilter string) []Trade {
	term := strings.ToLower(searchTerm)

	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if term != "" && !strings.Contains(strings.ToLower(t.Symbol), term) {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && string(t.Status) != statusFilter {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TradeSummary aggregates counts and entry value over a trade list.
type TradeSummary struct {
	Count           int     `json:"count"`
	OpenCount       int     `json:"openCount"`
	TotalEntryValue float64 `json:"totalEntryValue"`
}

// TradeStats computes summary stats over the full, unfiltered list.
func TradeStats(trades []Trade) TradeSummary {
	s := TradeSummary{Count: len(trades)}
	for _, t := range trades {
		if t.Status == StatusOpen {
			s.OpenCount++
		}
		s.TotalEntryValue += t.EntryPrice
	}
	return s
}
