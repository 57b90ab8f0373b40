package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia actual de un artículo en una sucursal.
// Quantity se muta únicamente vía el primitivo de delta transaccional, nunca directo.
type Stock struct {
	ItemID    string
	BranchID  string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// StockLevel modelo de lectura: existencia enriquecida con datos del catálogo,
// lista para clasificar (join stock + items).
type StockLevel struct {
	BranchID       string
	ItemID         string
	ItemName       string
	Category       string
	Quantity       decimal.Decimal
	ThresholdLevel decimal.Decimal
	UpdatedAt      time.Time
}
