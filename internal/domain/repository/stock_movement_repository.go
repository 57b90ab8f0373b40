package repository

import (
	"time"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// MovementFilter criterios para el historial de movimientos.
type MovementFilter struct {
	BranchID string
	ItemID   string
	Type     string // IN | OUT | vacío = todos
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// StockMovementRepository libro mayor de deltas aplicados al stock.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
