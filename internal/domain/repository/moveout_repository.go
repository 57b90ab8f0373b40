package repository

import (
	"time"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// MoveoutRepository puerto de persistencia para listas de retiro y sus renglones.
// CreateList persiste lista + renglones; debe invocarse dentro de una transacción
// (vía TxRunner) para que la creación sea una sola unidad atómica.
type MoveoutRepository interface {
	CreateList(list *entity.MoveoutList) error
	GetList(id string) (*entity.MoveoutList, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.MoveoutList, error)
	ListAll(limit, offset int) ([]*entity.MoveoutList, error)
	// GetItemForUpdate bloquea el renglón (SELECT FOR UPDATE); nil si no existe en esa lista.
	GetItemForUpdate(listID, itemID string) (*entity.MoveoutItem, error)
	MarkItemCompleted(moveoutItemID, processedBy string, processedAt time.Time) error
	CountPendingItems(listID string) (int, error)
	SetListStatus(listID, status string, updatedAt time.Time) error
}
