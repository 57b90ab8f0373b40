package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo. ThresholdLevel define el límite de la
// banda "adequate" y se fija al crear el artículo; las operaciones de stock nunca
// lo modifican (solo un update explícito del artículo).
type Item struct {
	ID             string
	SKU            string // código único
	Name           string
	Category       string
	Description    string
	ThresholdLevel decimal.Decimal // > 0; la banda crítica es ThresholdLevel * 0.5
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
