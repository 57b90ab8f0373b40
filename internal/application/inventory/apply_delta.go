package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sucursales-api/internal/application/notify"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// Direcciones válidas para un delta de stock.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// ApplyStockDeltaUseCase aplica deltas de existencia de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE). Es el único punto por el que se muta
// Quantity: los ajustes manuales lo llaman directo y las entregas y retiros lo
// reutilizan dentro de sus propias transacciones.
type ApplyStockDeltaUseCase struct {
	txRunner   TxRunner
	itemRepo   repository.ItemRepository
	branchRepo repository.BranchRepository
	bus        *notify.Bus
}

// NewApplyStockDeltaUseCase construye el caso de uso. bus puede ser nil (sin avisos).
func NewApplyStockDeltaUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	branchRepo repository.BranchRepository,
	bus *notify.Bus,
) *ApplyStockDeltaUseCase {
	return &ApplyStockDeltaUseCase{
		txRunner:   txRunner,
		itemRepo:   itemRepo,
		branchRepo: branchRepo,
		bus:        bus,
	}
}

// DeltaInput entrada para aplicar un delta de stock.
type DeltaInput struct {
	ItemID    string
	BranchID  string
	Direction string // "in" | "out"
	Amount    decimal.Decimal
	Reason    string
	UserID    string
}

// DeltaResult cantidad resultante y su clasificación.
type DeltaResult struct {
	NewQuantity decimal.Decimal
	Status      stock.Status
}

// Apply valida, abre una transacción, bloquea la fila de stock y aplica el delta.
// Un OUT con Amount mayor a la existencia falla atómico con ErrInsufficientStock
// y deja la cantidad intacta. Cada delta deja su registro en stock_movements.
func (uc *ApplyStockDeltaUseCase) Apply(ctx context.Context, input DeltaInput) (*DeltaResult, error) {
	if input.Direction != DirectionIn && input.Direction != DirectionOut {
		return nil, fmt.Errorf("%w: direction debe ser 'in' u 'out'", domain.ErrInvalidInput)
	}
	if input.ItemID == "" || input.BranchID == "" {
		return nil, fmt.Errorf("%w: item_id y branch_id son requeridos", domain.ErrInvalidInput)
	}
	if !input.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount debe ser mayor a cero", domain.ErrInvalidInput)
	}

	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()
	var newQty decimal.Decimal

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		q, err := applyDeltaLocked(movRepo, stockRepo, input, now, txID)
		if err != nil {
			return err
		}
		newQty = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := stock.Classify(newQty, item.ThresholdLevel)
	uc.publishAlert(item, input.BranchID, newQty, status)

	return &DeltaResult{NewQuantity: newQty, Status: status}, nil
}

// ApplyInTx aplica el delta usando repositorios ya atados a la transacción del
// caller (entregas y retiros). El caller clasifica/avisa tras su propio commit.
func (uc *ApplyStockDeltaUseCase) ApplyInTx(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	input DeltaInput,
	now time.Time,
	transactionID string,
) (decimal.Decimal, error) {
	return applyDeltaLocked(movRepo, stockRepo, input, now, transactionID)
}

// applyDeltaLocked núcleo del primitivo: bloquea la fila, verifica fondos en OUT,
// actualiza la cantidad y deja el movimiento en el libro mayor.
func applyDeltaLocked(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	input DeltaInput,
	now time.Time,
	txID string,
) (decimal.Decimal, error) {
	s, err := stockRepo.GetForUpdate(input.ItemID, input.BranchID)
	if err != nil {
		return decimal.Zero, err
	}

	var movType string
	var signed decimal.Decimal
	switch input.Direction {
	case DirectionIn:
		movType = entity.MovementTypeIN
		signed = input.Amount
		s.Quantity = s.Quantity.Add(input.Amount)
	case DirectionOut:
		if s.Quantity.LessThan(input.Amount) {
			return decimal.Zero, domain.ErrInsufficientStock
		}
		movType = entity.MovementTypeOUT
		signed = input.Amount.Neg()
		s.Quantity = s.Quantity.Sub(input.Amount)
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}

	s.UpdatedAt = now
	if err := stockRepo.Upsert(s); err != nil {
		return decimal.Zero, err
	}

	mov := &entity.StockMovement{
		TransactionID: txID,
		ItemID:        input.ItemID,
		BranchID:      input.BranchID,
		Type:          movType,
		Quantity:      signed,
		Reason:        input.Reason,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	if err := movRepo.Create(mov); err != nil {
		return decimal.Zero, err
	}
	return s.Quantity, nil
}

func (uc *ApplyStockDeltaUseCase) publishAlert(item *entity.Item, branchID string, qty decimal.Decimal, status stock.Status) {
	if uc.bus == nil || !stock.NeedsAlert(status) {
		return
	}
	uc.bus.Publish(notify.StockAlert{
		BranchID:  branchID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  qty,
		Threshold: item.ThresholdLevel,
		Status:    status,
	})
}
