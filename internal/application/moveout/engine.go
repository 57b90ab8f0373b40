package moveout

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

// MoveoutUseCase orquesta el ciclo de vida de las listas de retiro: generación
// atómica con renglones validados, completado renglón por renglón con deducción
// de stock, y estado de lista derivado (completed cuando cae el último pendiente).
//
// AvailableAmount de cada renglón es un snapshot de la selección y NUNCA se
// re-valida contra stock vivo aquí: la deducción con bloqueo de fila es la única
// guardia autoritativa y rechaza con stock insuficiente si hubo una colisión.
type MoveoutUseCase struct {
	txRunner    TxRunner
	moveoutRepo repository.MoveoutRepository
	itemRepo    repository.ItemRepository
	delta       *inventory.ApplyStockDeltaUseCase
	bus         *notify.Bus
}

// NewMoveoutUseCase construye el motor. bus puede ser nil (sin avisos).
func NewMoveoutUseCase(
	txRunner TxRunner,
	moveoutRepo repository.MoveoutRepository,
	itemRepo repository.ItemRepository,
	delta *inventory.ApplyStockDeltaUseCase,
	bus *notify.Bus,
) *MoveoutUseCase {
	return &MoveoutUseCase{
		txRunner:    txRunner,
		moveoutRepo: moveoutRepo,
		itemRepo:    itemRepo,
		delta:       delta,
		bus:         bus,
	}
}

// CreateList aplica la compuerta de validación y persiste la lista con todos sus
// renglones en una sola transacción. Rechazos (sin tocar la BD):
//   - sin renglones
//   - todos los renglones con cantidad cero
//   - algún renglón pidiendo más que su disponible snapshot (el error nombra el renglón)
//
// Duplicados de artículo están permitidos: cada renglón se completa y deduce solo.
func (uc *MoveoutUseCase) CreateList(ctx context.Context, branchID, createdBy string, in dto.CreateMoveoutListRequest) (*dto.MoveoutListResponse, error) {
	if branchID == "" {
		return nil, fmt.Errorf("%w: branch_id requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrMoveoutEmpty
	}

	allZero := true
	for _, it := range in.Items {
		if it.ItemID == "" {
			return nil, fmt.Errorf("%w: renglón sin item_id", domain.ErrInvalidInput)
		}
		if it.RequestAmount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: el renglón '%s' tiene cantidad negativa", domain.ErrInvalidInput, lineLabel(it))
		}
		if it.RequestAmount.GreaterThan(it.AvailableAmount) {
			return nil, fmt.Errorf("%w: el renglón '%s' solicita %s con %s disponibles",
				domain.ErrInvalidInput, lineLabel(it), it.RequestAmount.String(), it.AvailableAmount.String())
		}
		if it.RequestAmount.GreaterThan(decimal.Zero) {
			allZero = false
		}
	}
	if allZero {
		return nil, domain.ErrMoveoutNoAmounts
	}

	now := time.Now()
	list := &entity.MoveoutList{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.MoveoutStatusDraft,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, it := range in.Items {
		list.Items = append(list.Items, entity.MoveoutItem{
			ID:              uuid.New().String(),
			ListID:          list.ID,
			ItemID:          it.ItemID,
			ItemName:        it.ItemName,
			Category:        it.Category,
			AvailableAmount: it.AvailableAmount,
			RequestAmount:   it.RequestAmount,
			Status:          entity.MoveoutItemPending,
			Position:        i,
		})
	}

	err := uc.txRunner.RunMoveout(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.StockRepository,
		moveoutRepo repository.MoveoutRepository,
	) error {
		return moveoutRepo.CreateList(list)
	})
	if err != nil {
		return nil, err
	}
	return toListResponse(list, true), nil
}

// CompleteItemInput entrada para completar un renglón. MoveoutItemID es el ID
// del renglón (no del artículo del catálogo: puede haber duplicados).
// AllowedBranchID vacío = alcance global (admin).
type CompleteItemInput struct {
	ListID          string
	MoveoutItemID   string
	RequestAmount   decimal.Decimal
	ActorName       string
	UserID          string
	AllowedBranchID string
}

// CompleteItem deduce exactamente RequestAmount del stock de la sucursal de la
/// lista y marca el renglón como completado, todo en una transacción: un fallo a
// mitad de camino no deja deducción parcial ni renglón marcado. El renglón ya
// completado rechaza con ErrItemAlreadyProcessed (guardia autoritativa contra el
// doble click; el deshabilitado del control en la UI es solo cortesía).
func (uc *MoveoutUseCase) CompleteItem(ctx context.Context, in CompleteItemInput) (*dto.CompleteMoveoutItemResponse, error) {
	if in.ListID == "" || in.MoveoutItemID == "" {
		return nil, fmt.Errorf("%w: list_id e item_id requeridos", domain.ErrInvalidInput)
	}
	list, err := uc.moveoutRepo.GetList(in.ListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	if in.AllowedBranchID != "" && list.BranchID != in.AllowedBranchID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	var (
		newQty        decimal.Decimal
		catalogItemID string
		listCompleted bool
	)

	err = uc.txRunner.RunMoveout(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		moveoutRepo repository.MoveoutRepository,
	) error {
		row, err := moveoutRepo.GetItemForUpdate(in.ListID, in.MoveoutItemID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if row.Status == entity.MoveoutItemCompleted {
			return domain.ErrItemAlreadyProcessed
		}
		if !in.RequestAmount.Equal(row.RequestAmount) {
			return fmt.Errorf("%w: la cantidad %s no coincide con la registrada %s",
				domain.ErrInvalidInput, in.RequestAmount.String(), row.RequestAmount.String())
		}
		catalogItemID = row.ItemID

		// Mismo primitivo de deducción que las salidas manuales; la lista es el
		// transaction_id del libro mayor.
		q, err := uc.delta.ApplyInTx(movRepo, stockRepo, inventory.DeltaInput{
			ItemID:    row.ItemID,
			BranchID:  list.BranchID,
			Direction: inventory.DirectionOut,
			Amount:    in.RequestAmount,
			Reason:    "moveout: " + list.Title,
			UserID:    in.UserID,
		}, now, list.ID)
		if err != nil {
			return err
		}
		newQty = q

		if err := moveoutRepo.MarkItemCompleted(row.ID, in.ActorName, now); err != nil {
			return err
		}

		pending, err := moveoutRepo.CountPendingItems(in.ListID)
		if err != nil {
			return err
		}
		if pending == 0 {
			listCompleted = true
			return moveoutRepo.SetListStatus(in.ListID, entity.MoveoutStatusCompleted, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := uc.classifyAndAlert(list.BranchID, catalogItemID, newQty)

	return &dto.CompleteMoveoutItemResponse{
		Success:       true,
		NewQuantity:   newQty,
		StockStatus:   string(status),
		ListCompleted: listCompleted,
	}, nil
}

// GetList devuelve la lista con renglones y estado derivado.
func (uc *MoveoutUseCase) GetList(ctx context.Context, id, allowedBranchID string) (*dto.MoveoutListResponse, error) {
	list, err := uc.moveoutRepo.GetList(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	if allowedBranchID != "" && list.BranchID != allowedBranchID {
		return nil, domain.ErrForbidden
	}
	return toListResponse(list, true), nil
}

// List devuelve las listas de la sucursal (o todas si branchID es vacío).
func (uc *MoveoutUseCase) List(ctx context.Context, branchID string, limit, offset int) (*dto.MoveoutListsResponse, error) {
	var (
		lists []*entity.MoveoutList
		err   error
	)
	if branchID == "" {
		lists, err = uc.moveoutRepo.ListAll(limit, offset)
	} else {
		lists, err = uc.moveoutRepo.ListByBranch(branchID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MoveoutListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, *toListResponse(l, false))
	}
	return &dto.MoveoutListsResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// classifyAndAlert re-clasifica tras la deducción y publica aviso si quedó en
// banda low/critical.
func (uc *MoveoutUseCase) classifyAndAlert(branchID, itemID string, qty decimal.Decimal) stock.Status {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return ""
	}
	status := stock.Classify(qty, item.ThresholdLevel)
	if uc.bus != nil && stock.NeedsAlert(status) {
		uc.bus.Publish(notify.StockAlert{
			BranchID:  branchID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  qty,
			Threshold: item.ThresholdLevel,
			Status:    status,
		})
	}
	return status
}

func lineLabel(it dto.MoveoutItemRequest) string {
	if it.ItemName != "" {
		return it.ItemName
	}
	return it.ItemID
}

func toListResponse(l *entity.MoveoutList, withItems bool) *dto.MoveoutListResponse {
	resp := &dto.MoveoutListResponse{
		ID:           l.ID,
		BranchID:     l.BranchID,
		Title:        l.Title,
		Description:  l.Description,
		Status:       l.Status,
		PendingItems: l.PendingCount(),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
	}
	if len(l.Items) > 0 {
		// El estado derivado manda sobre el persistido en lecturas.
		resp.Status = l.DerivedStatus()
	}
	if withItems {
		for _, it := range l.Items {
			resp.Items = append(resp.Items, dto.MoveoutItemResponse{
				ID:              it.ID,
				ItemID:          it.ItemID,
				ItemName:        it.ItemName,
				Category:        it.Category,
				AvailableAmount: it.AvailableAmount,
				RequestAmount:   it.RequestAmount,
				Status:          it.Status,
				ProcessedBy:     it.ProcessedBy,
				ProcessedAt:     it.ProcessedAt,
			})
		}
	}
	return resp
}
