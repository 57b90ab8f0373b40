package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery registra una entrega recibida en una sucursal. La cantidad entra al
// stock vía el mismo primitivo de delta (tipo IN) en la misma transacción.
type Delivery struct {
	ID          string
	BranchID    string
	ItemID      string
	Supplier    string
	Amount      decimal.Decimal
	ReceivedBy  string
	Notes       string
	DeliveredAt time.Time
	CreatedAt   time.Time
}
