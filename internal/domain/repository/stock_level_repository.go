package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// StockLevelRepository modelo de lectura: existencias enriquecidas con el catálogo.
// En los listados, limit <= 0 significa sin límite (reportes y avisos leen todo).
type StockLevelRepository interface {
	Get(itemID, branchID string) (*entity.StockLevel, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.StockLevel, error)
	// ListAll para administradores sin sucursal asignada.
	ListAll(limit, offset int) ([]*entity.StockLevel, error)
}
