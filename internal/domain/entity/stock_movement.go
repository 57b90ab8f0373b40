package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada (entregas, ajustes manuales positivos)
	MovementTypeOUT = "OUT" // salida (retiros, ajustes manuales negativos)
)

// StockMovement registra cada delta aplicado a una existencia (libro mayor).
// TransactionID agrupa movimientos de una misma operación (ej. ID de la lista de retiro).
type StockMovement struct {
	ID            string
	TransactionID string
	ItemID        string
	BranchID      string
	Type          string
	Quantity      decimal.Decimal // positivo entrada, negativo salida
	Reason        string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
