package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items. ThresholdLevel debe ser > 0.
type CreateItemRequest struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	ThresholdLevel decimal.Decimal `json:"threshold_level"`
}

// UpdateItemRequest body para PUT /api/items/{id}.
type UpdateItemRequest struct {
	Name           *string          `json:"name,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
	ThresholdLevel *decimal.Decimal `json:"threshold_level,omitempty"`
}

// ItemResponse representación de un artículo del catálogo.
type ItemResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	ThresholdLevel decimal.Decimal `json:"threshold_level"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado del catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
