package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateStockRequest body para POST /api/stock/delta: ajuste manual de existencia.
type UpdateStockRequest struct {
	ItemID    string          `json:"item_id"`
	BranchID  string          `json:"branch_id"`
	Direction string          `json:"direction"` // "in" | "out"
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

// StockDeltaResponse resultado de aplicar un delta.
type StockDeltaResponse struct {
	ItemID      string          `json:"item_id"`
	BranchID    string          `json:"branch_id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Status      string          `json:"status"` // critical | low | adequate
}

// StockLevelResponse existencia clasificada de un artículo en una sucursal.
type StockLevelResponse struct {
	BranchID       string          `json:"branch_id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	Category       string          `json:"category"`
	Quantity       decimal.Decimal `json:"quantity"`
	ThresholdLevel decimal.Decimal `json:"threshold_level"`
	Status         string          `json:"status"` // critical | low | adequate
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockListResponse listado de existencias clasificadas.
type StockListResponse struct {
	Items []StockLevelResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// InitializeStockResponse resultado del backfill idempotente de existencias.
type InitializeStockResponse struct {
	Initialized int `json:"initialized"`
}
