package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveoutItemRequest renglón a incluir al generar una lista de retiro.
// ItemName, Category y AvailableAmount son snapshots tomados en la selección.
type MoveoutItemRequest struct {
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	Category        string          `json:"category"`
	AvailableAmount decimal.Decimal `json:"available_amount"`
	RequestAmount   decimal.Decimal `json:"request_amount"`
}

// CreateMoveoutListRequest body para POST /api/moveouts: creación atómica con
// todos los renglones ya validados.
type CreateMoveoutListRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	BranchID    string               `json:"branch_id,omitempty"` // solo admin; el resto usa la del token
	Items       []MoveoutItemRequest `json:"items"`
}

// CompleteMoveoutItemRequest body para POST /api/moveouts/{id}/items/{itemId}/complete.
type CompleteMoveoutItemRequest struct {
	RequestAmount decimal.Decimal `json:"request_amount"`
	ActorName     string          `json:"actor_name"`
}

// MoveoutItemResponse renglón de lista de retiro.
type MoveoutItemResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	Category        string          `json:"category"`
	AvailableAmount decimal.Decimal `json:"available_amount"`
	RequestAmount   decimal.Decimal `json:"request_amount"`
	Status          string          `json:"status"` // pending | completed
	ProcessedBy     string          `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
}

// MoveoutListResponse lista de retiro con estado derivado de sus renglones.
type MoveoutListResponse struct {
	ID          string                `json:"id"`
	BranchID    string                `json:"branch_id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Status      string                `json:"status"` // draft (Pending) | completed
	PendingItems int                  `json:"pending_items"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   time.Time             `json:"created_at"`
	Items       []MoveoutItemResponse `json:"items,omitempty"`
}

// MoveoutListsResponse listado paginado de listas de retiro.
type MoveoutListsResponse struct {
	Items []MoveoutListResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CompleteMoveoutItemResponse resultado de completar un renglón.
type CompleteMoveoutItemResponse struct {
	Success       bool            `json:"success"`
	NewQuantity   decimal.Decimal `json:"new_quantity"`
	StockStatus   string          `json:"stock_status"`
	ListCompleted bool            `json:"list_completed"`
}
