package dto

import (
	"time"

	"github.com/allisson/custody/internal/account/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListEntriesResponse represents a paginated list of ledger entries.
type ListEntriesResponse struct {
	Data []EntryResponse `json:"data"`
}

// MapAccountToResponse converts an account view to an API response.
func MapAccountToResponse(view domain.AccountView) AccountResponse {
	return AccountResponse{
		ID:        view.ID,
		Balance:   view.Balance.StringFixed(2),
		UpdatedAt: view.UpdatedAt,
	}
}

// MapEntriesToListResponse converts ledger entries to a list response.
func MapEntriesToListResponse(entries []domain.Entry) ListEntriesResponse {
	data := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, EntryResponse{
			ID:           entry.ID.String(),
			Kind:         string(entry.Kind),
			Amount:       entry.Amount.StringFixed(2),
			BalanceAfter: entry.BalanceAfter.StringFixed(2),
			CreatedAt:    entry.CreatedAt,
		})
	}

	return ListEntriesResponse{
		Data: data,
	}
}
