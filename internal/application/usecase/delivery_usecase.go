package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/notify"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// DeliveryTxRunner ejecuta el registro de una entrega y su entrada de stock en
// una sola transacción de BD.
type DeliveryTxRunner interface {
	RunDelivery(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		deliveryRepo repository.DeliveryRepository,
	) error) error
}

// DeliveryUseCase registra entregas recibidas. La fila de entrega y la entrada
// al stock (delta IN) se confirman juntas o no se confirman.
type DeliveryUseCase struct {
	txRunner     DeliveryTxRunner
	itemRepo     repository.ItemRepository
	deliveryRepo repository.DeliveryRepository // lecturas fuera de transacción
	delta        *inventory.ApplyStockDeltaUseCase
	bus          *notify.Bus
}

// NewDeliveryUseCase construye el caso de uso. bus puede ser nil.
func NewDeliveryUseCase(
	txRunner DeliveryTxRunner,
	itemRepo repository.ItemRepository,
	deliveryRepo repository.DeliveryRepository,
	delta *inventory.ApplyStockDeltaUseCase,
	bus *notify.Bus,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		deliveryRepo: deliveryRepo,
		delta:        delta,
		bus:          bus,
	}
}

// Record registra una entrega en la sucursal indicada y suma la cantidad al stock.
func (uc *DeliveryUseCase) Record(ctx context.Context, branchID, userID string, in dto.RecordDeliveryRequest) (*dto.DeliveryResponse, error) {
	if branchID == "" || in.ItemID == "" {
		return nil, fmt.Errorf("%w: branch_id e item_id son requeridos", domain.ErrInvalidInput)
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount debe ser mayor a cero", domain.ErrInvalidInput)
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	deliveredAt := now
	if in.DeliveredAt != nil {
		deliveredAt = *in.DeliveredAt
	}
	delivery := &entity.Delivery{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		ItemID:      in.ItemID,
		Supplier:    in.Supplier,
		Amount:      in.Amount,
		ReceivedBy:  in.ReceivedBy,
		Notes:       in.Notes,
		DeliveredAt: deliveredAt,
		CreatedAt:   now,
	}

	var newQty decimal.Decimal
	err = uc.txRunner.RunDelivery(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		deliveryRepo repository.DeliveryRepository,
	) error {
		q, err := uc.delta.ApplyInTx(movRepo, stockRepo, inventory.DeltaInput{
			ItemID:    in.ItemID,
			BranchID:  branchID,
			Direction: inventory.DirectionIn,
			Amount:    in.Amount,
			Reason:    "entrega: " + in.Supplier,
			UserID:    userID,
		}, now, delivery.ID)
		if err != nil {
			return err
		}
		newQty = q
		return deliveryRepo.Create(delivery)
	})
	if err != nil {
		return nil, err
	}

	// Una entrada también puede dejar el nivel en aviso (umbral alto, entrega chica).
	status := stock.Classify(newQty, item.ThresholdLevel)
	if uc.bus != nil && stock.NeedsAlert(status) {
		uc.bus.Publish(notify.StockAlert{
			BranchID:  branchID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  newQty,
			Threshold: item.ThresholdLevel,
			Status:    status,
		})
	}

	resp := toDeliveryResponse(delivery)
	resp.NewQuantity = newQty
	return resp, nil
}

// ListByBranch lista las entregas de una sucursal, más reciente primero.
func (uc *DeliveryUseCase) ListByBranch(branchID string, limit, offset int) (*dto.DeliveryListResponse, error) {
	list, err := uc.deliveryRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:          d.ID,
		BranchID:    d.BranchID,
		ItemID:      d.ItemID,
		Supplier:    d.Supplier,
		Amount:      d.Amount,
		ReceivedBy:  d.ReceivedBy,
		Notes:       d.Notes,
		DeliveredAt: d.DeliveredAt,
	}
}
