package inventory

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// InitializeStockUseCase backfill idempotente: crea filas de existencia en cero
// para los artículos del catálogo que aún no tienen entrada en la sucursal.
type InitializeStockUseCase struct {
	stockRepo  repository.StockRepository
	branchRepo repository.BranchRepository
}

// NewInitializeStockUseCase construye el caso de uso.
func NewInitializeStockUseCase(stockRepo repository.StockRepository, branchRepo repository.BranchRepository) *InitializeStockUseCase {
	return &InitializeStockUseCase{stockRepo: stockRepo, branchRepo: branchRepo}
}

// Initialize devuelve cuántas filas creó. Repetir la llamada crea cero.
func (uc *InitializeStockUseCase) Initialize(ctx context.Context, branchID string) (int, error) {
	if branchID == "" {
		return 0, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return 0, err
	}
	if branch == nil {
		return 0, domain.ErrNotFound
	}
	return uc.stockRepo.InitializeMissing(branchID)
}
