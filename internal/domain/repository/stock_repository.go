package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// StockRepository puerto para consultar/actualizar existencias por sucursal+artículo.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(itemID, branchID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(itemID, branchID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// InitializeMissing crea filas en cero para artículos del catálogo sin existencia
	// en la sucursal. Idempotente; devuelve cuántas filas creó.
	InitializeMissing(branchID string) (int, error)
}
