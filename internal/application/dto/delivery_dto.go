package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordDeliveryRequest body para POST /api/deliveries.
type RecordDeliveryRequest struct {
	BranchID    string          `json:"branch_id,omitempty"` // solo admin; el resto usa la del token
	ItemID      string          `json:"item_id"`
	Supplier    string          `json:"supplier"`
	Amount      decimal.Decimal `json:"amount"`
	ReceivedBy  string          `json:"received_by"`
	Notes       string          `json:"notes,omitempty"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"` // default: ahora
}

// DeliveryResponse entrega registrada; NewQuantity refleja el stock tras la entrada.
type DeliveryResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	ItemID      string          `json:"item_id"`
	Supplier    string          `json:"supplier"`
	Amount      decimal.Decimal `json:"amount"`
	ReceivedBy  string          `json:"received_by"`
	Notes       string          `json:"notes,omitempty"`
	DeliveredAt time.Time       `json:"delivered_at"`
	NewQuantity decimal.Decimal `json:"new_quantity,omitempty"`
}

// DeliveryListResponse listado paginado de entregas.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
