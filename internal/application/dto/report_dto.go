package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSummaryResponse conteos por nivel para el tablero, más los renglones
// que requieren atención (critical primero, luego low).
type StockSummaryResponse struct {
	BranchID  string               `json:"branch_id,omitempty"`
	Critical  int                  `json:"critical"`
	Low       int                  `json:"low"`
	Adequate  int                  `json:"adequate"`
	Total     int                  `json:"total"`
	Attention []StockLevelResponse `json:"attention"`
}

// MovementResponse renglón del historial de movimientos.
type MovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id,omitempty"`
	ItemID        string          `json:"item_id"`
	BranchID      string          `json:"branch_id"`
	Type          string          `json:"type"` // IN | OUT
	Quantity      decimal.Decimal `json:"quantity"`
	Reason        string          `json:"reason,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"created_by"`
}

// MovementListResponse historial paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
