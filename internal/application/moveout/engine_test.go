package moveout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/moveout"
	"github.com/jhoicas/Sucursales-api/internal/application/notify"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + rollback)
// ──────────────────────────────────────────────────────────────────────────────

func stockKey(itemID, branchID string) string { return itemID + "|" + branchID }

type fakeStockRepo struct {
	rows map[string]*entity.Stock
}

func (f *fakeStockRepo) Get(itemID, branchID string) (*entity.Stock, error) {
	if s, ok := f.rows[stockKey(itemID, branchID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ItemID: itemID, BranchID: branchID, Quantity: decimal.Zero}, nil
}

func (f *fakeStockRepo) GetForUpdate(itemID, branchID string) (*entity.Stock, error) {
	return f.Get(itemID, branchID)
}

func (f *fakeStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	f.rows[stockKey(s.ItemID, s.BranchID)] = &cp
	return nil
}

func (f *fakeStockRepo) InitializeMissing(string) (int, error) { return 0, nil }

type fakeMovementRepo struct {
	movs []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.movs = append(f.movs, &cp)
	return nil
}

func (f *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return f.movs, nil
}

type fakeMoveoutRepo struct {
	lists map[string]*entity.MoveoutList
}

func copyList(l *entity.MoveoutList) *entity.MoveoutList {
	cp := *l
	cp.Items = append([]entity.MoveoutItem(nil), l.Items...)
	return &cp
}

func (f *fakeMoveoutRepo) CreateList(l *entity.MoveoutList) error {
	f.lists[l.ID] = copyList(l)
	return nil
}

func (f *fakeMoveoutRepo) GetList(id string) (*entity.MoveoutList, error) {
	l, ok := f.lists[id]
	if !ok {
		return nil, nil
	}
	return copyList(l), nil
}

func (f *fakeMoveoutRepo) ListByBranch(branchID string, _, _ int) ([]*entity.MoveoutList, error) {
	var out []*entity.MoveoutList
	for _, l := range f.lists {
		if l.BranchID == branchID {
			out = append(out, copyList(l))
		}
	}
	return out, nil
}

func (f *fakeMoveoutRepo) ListAll(_, _ int) ([]*entity.MoveoutList, error) {
	var out []*entity.MoveoutList
	for _, l := range f.lists {
		out = append(out, copyList(l))
	}
	return out, nil
}

func (f *fakeMoveoutRepo) GetItemForUpdate(listID, moveoutItemID string) (*entity.MoveoutItem, error) {
	l, ok := f.lists[listID]
	if !ok {
		return nil, nil
	}
	for i := range l.Items {
		if l.Items[i].ID == moveoutItemID {
			cp := l.Items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMoveoutRepo) MarkItemCompleted(moveoutItemID, processedBy string, processedAt time.Time) error {
	for _, l := range f.lists {
		for i := range l.Items {
			if l.Items[i].ID == moveoutItemID {
				l.Items[i].Status = entity.MoveoutItemCompleted
				l.Items[i].ProcessedBy = processedBy
				at := processedAt
				l.Items[i].ProcessedAt = &at
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (f *fakeMoveoutRepo) CountPendingItems(listID string) (int, error) {
	l, ok := f.lists[listID]
	if !ok {
		return 0, nil
	}
	return l.PendingCount(), nil
}

func (f *fakeMoveoutRepo) SetListStatus(listID, status string, updatedAt time.Time) error {
	l, ok := f.lists[listID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Status = status
	l.UpdatedAt = updatedAt
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (f *fakeItemRepo) Create(i *entity.Item) error             { f.items[i.ID] = i; return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) { return f.items[id], nil }
func (f *fakeItemRepo) GetBySKU(string) (*entity.Item, error)   { return nil, nil }
func (f *fakeItemRepo) Update(*entity.Item) error               { return nil }
func (f *fakeItemRepo) List(int, int) ([]*entity.Item, error)   { return nil, nil }
func (f *fakeItemRepo) Delete(string) error                     { return nil }

// fakeTxRunner simula Commit/Rollback: ante error de fn (o failCommit inyectado)
// restaura el estado previo de stock, libro mayor y listas.
type fakeTxRunner struct {
	stock      *fakeStockRepo
	mov        *fakeMovementRepo
	moveout    *fakeMoveoutRepo
	calls      int
	failCommit error
}

func (r *fakeTxRunner) RunMoveout(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	moveoutRepo repository.MoveoutRepository,
) error) error {
	r.calls++

	stockBefore := make(map[string]*entity.Stock, len(r.stock.rows))
	for k, v := range r.stock.rows {
		s := *v
		stockBefore[k] = &s
	}
	movsBefore := len(r.mov.movs)
	listsBefore := make(map[string]*entity.MoveoutList, len(r.moveout.lists))
	for k, v := range r.moveout.lists {
		listsBefore[k] = copyList(v)
	}

	err := fn(r.mov, r.stock, r.moveout)
	if err == nil && r.failCommit != nil {
		err = r.failCommit
	}
	if err != nil {
		r.stock.rows = stockBefore
		r.mov.movs = r.mov.movs[:movsBefore]
		r.moveout.lists = listsBefore
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de escenario
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc      *moveout.MoveoutUseCase
	stock   *fakeStockRepo
	mov     *fakeMovementRepo
	moveout *fakeMoveoutRepo
	runner  *fakeTxRunner
	bus     *notify.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stockRepo := &fakeStockRepo{rows: map[string]*entity.Stock{
		stockKey("item-1", "branch-1"): {ItemID: "item-1", BranchID: "branch-1", Quantity: decimal.NewFromInt(20)},
		stockKey("item-2", "branch-1"): {ItemID: "item-2", BranchID: "branch-1", Quantity: decimal.NewFromInt(50)},
		stockKey("item-3", "branch-1"): {ItemID: "item-3", BranchID: "branch-1", Quantity: decimal.NewFromInt(9)},
	}}
	movRepo := &fakeMovementRepo{}
	moveoutRepo := &fakeMoveoutRepo{lists: map[string]*entity.MoveoutList{}}
	runner := &fakeTxRunner{stock: stockRepo, mov: movRepo, moveout: moveoutRepo}
	items := &fakeItemRepo{items: map[string]*entity.Item{
		"item-1": {ID: "item-1", Name: "Guantes", ThresholdLevel: decimal.NewFromInt(10)},
		"item-2": {ID: "item-2", Name: "Cajas", ThresholdLevel: decimal.NewFromInt(10)},
		"item-3": {ID: "item-3", Name: "Cinta", ThresholdLevel: decimal.NewFromInt(10)},
	}}
	bus := notify.NewBus(nil)
	delta := inventory.NewApplyStockDeltaUseCase(nil, items, nil, nil)
	return &fixture{
		uc:      moveout.NewMoveoutUseCase(runner, moveoutRepo, items, delta, bus),
		stock:   stockRepo,
		mov:     movRepo,
		moveout: moveoutRepo,
		runner:  runner,
		bus:     bus,
	}
}

func line(itemID, name string, available, request int64) dto.MoveoutItemRequest {
	return dto.MoveoutItemRequest{
		ItemID:          itemID,
		ItemName:        name,
		Category:        "general",
		AvailableAmount: decimal.NewFromInt(available),
		RequestAmount:   decimal.NewFromInt(request),
	}
}

func (fx *fixture) createList(t *testing.T, lines ...dto.MoveoutItemRequest) *dto.MoveoutListResponse {
	t.Helper()
	resp, err := fx.uc.CreateList(context.Background(), "branch-1", "user-1", dto.CreateMoveoutListRequest{
		Title: "Retiro semanal",
		Items: lines,
	})
	require.NoError(t, err)
	return resp
}

func (fx *fixture) quantity(t *testing.T, itemID string) decimal.Decimal {
	t.Helper()
	s, err := fx.stock.Get(itemID, "branch-1")
	require.NoError(t, err)
	return s.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Compuerta de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateList_RechazaSinRenglones(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.uc.CreateList(context.Background(), "branch-1", "user-1", dto.CreateMoveoutListRequest{
		Title: "vacía",
		Items: nil,
	})
	require.ErrorIs(t, err, domain.ErrMoveoutEmpty)
	assert.Zero(t, fx.runner.calls, "la validación debe rechazar antes de tocar la BD")
}

func TestCreateList_RechazaTodoEnCero(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.uc.CreateList(context.Background(), "branch-1", "user-1", dto.CreateMoveoutListRequest{
		Title: "ceros",
		Items: []dto.MoveoutItemRequest{line("item-1", "Guantes", 20, 0), line("item-2", "Cajas", 50, 0)},
	})
	require.ErrorIs(t, err, domain.ErrMoveoutNoAmounts)
	assert.Zero(t, fx.runner.calls)
}

func TestCreateList_RechazaExcesoSobreSnapshot_NombrandoRenglon(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.uc.CreateList(context.Background(), "branch-1", "user-1", dto.CreateMoveoutListRequest{
		Title: "exceso",
		Items: []dto.MoveoutItemRequest{line("item-1", "Guantes", 5, 10)},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Guantes", "el error debe nombrar el renglón ofensor")
	assert.Zero(t, fx.runner.calls)
}

func TestCreateList_PersisteDraftConPendientes(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7), line("item-2", "Cajas", 50, 3))

	assert.Equal(t, entity.MoveoutStatusDraft, resp.Status)
	assert.Equal(t, 2, resp.PendingItems)
	require.Len(t, resp.Items, 2)
	for _, it := range resp.Items {
		assert.Equal(t, entity.MoveoutItemPending, it.Status)
	}
	// Duplicados permitidos: dos renglones del mismo artículo conviven.
	resp2 := fx.createList(t, line("item-1", "Guantes", 20, 2), line("item-1", "Guantes", 20, 4))
	assert.Len(t, resp2.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Completado renglón por renglón
// ──────────────────────────────────────────────────────────────────────────────

func TestCompleteItem_DeduceExactoYMarcaCompletado(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7))

	out, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(7),
		ActorName:     "Ana",
		UserID:        "user-1",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.True(t, out.NewQuantity.Equal(decimal.NewFromInt(13)))
	assert.True(t, out.ListCompleted, "lista de un renglón queda completed al completar ese renglón")

	assert.True(t, fx.quantity(t, "item-1").Equal(decimal.NewFromInt(13)))

	got, err := fx.uc.GetList(context.Background(), resp.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.MoveoutStatusCompleted, got.Status)
	assert.Equal(t, entity.MoveoutItemCompleted, got.Items[0].Status)
	assert.Equal(t, "Ana", got.Items[0].ProcessedBy)
	require.NotNil(t, got.Items[0].ProcessedAt)

	// Exactamente un OUT en el libro mayor, agrupado por la lista.
	require.Len(t, fx.mov.movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, fx.mov.movs[0].Type)
	assert.Equal(t, resp.ID, fx.mov.movs[0].TransactionID)
	assert.True(t, fx.mov.movs[0].Quantity.Equal(decimal.NewFromInt(-7)))
}

// Fallo a mitad de la operación: ni deducción ni marca de completado sobreviven.
func TestCompleteItem_FalloDejaTodoIntacto(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7))
	fx.runner.failCommit = assert.AnError

	_, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(7),
		ActorName:     "Ana",
		UserID:        "user-1",
	})
	require.Error(t, err)

	assert.True(t, fx.quantity(t, "item-1").Equal(decimal.NewFromInt(20)), "cantidad intacta")
	got, errGet := fx.uc.GetList(context.Background(), resp.ID, "")
	require.NoError(t, errGet)
	assert.Equal(t, entity.MoveoutItemPending, got.Items[0].Status, "renglón sigue pendiente")
	assert.Empty(t, fx.mov.movs)
}

// El estado de la lista pasa a completed exactamente al caer el último pendiente.
func TestCompleteItem_EstadoDerivadoConTresRenglones(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t,
		line("item-1", "Guantes", 20, 5),
		line("item-2", "Cajas", 50, 10),
		line("item-3", "Cinta", 9, 2),
	)

	complete := func(idx int, amount int64) *dto.CompleteMoveoutItemResponse {
		out, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
			ListID:        resp.ID,
			MoveoutItemID: resp.Items[idx].ID,
			RequestAmount: decimal.NewFromInt(amount),
			ActorName:     "Ana",
			UserID:        "user-1",
		})
		require.NoError(t, err)
		return out
	}

	out := complete(0, 5)
	assert.False(t, out.ListCompleted)
	out = complete(1, 10)
	assert.False(t, out.ListCompleted)

	got, err := fx.uc.GetList(context.Background(), resp.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.MoveoutStatusDraft, got.Status, "con un pendiente la lista sigue en draft")
	assert.Equal(t, 1, got.PendingItems)

	out = complete(2, 2)
	assert.True(t, out.ListCompleted, "el último renglón completa la lista")

	got, err = fx.uc.GetList(context.Background(), resp.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.MoveoutStatusCompleted, got.Status)
}

// La segunda llamada sobre el mismo renglón rebota con ErrItemAlreadyProcessed y
// deja exactamente una deducción.
func TestCompleteItem_DobleEnvioUnaSolaDeduccion(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7))

	in := moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(7),
		ActorName:     "Ana",
		UserID:        "user-1",
	}
	_, err := fx.uc.CompleteItem(context.Background(), in)
	require.NoError(t, err)

	_, err = fx.uc.CompleteItem(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrItemAlreadyProcessed)

	assert.True(t, fx.quantity(t, "item-1").Equal(decimal.NewFromInt(13)), "una sola deducción")
	assert.Len(t, fx.mov.movs, 1)
}

// El snapshot puede quedar desfasado del stock vivo; la deducción autoritativa
// rechaza y el renglón queda pendiente para reintentar.
func TestCompleteItem_ColisionConStockVivo(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 15))

	// Otro retiro vació el stock entre la selección y el completado.
	require.NoError(t, fx.stock.Upsert(&entity.Stock{
		ItemID: "item-1", BranchID: "branch-1", Quantity: decimal.NewFromInt(4),
	}))

	_, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(15),
		ActorName:     "Ana",
		UserID:        "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, errGet := fx.uc.GetList(context.Background(), resp.ID, "")
	require.NoError(t, errGet)
	assert.Equal(t, entity.MoveoutItemPending, got.Items[0].Status)
	assert.True(t, fx.quantity(t, "item-1").Equal(decimal.NewFromInt(4)))
}

func TestCompleteItem_CantidadDistintaALaRegistrada(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7))

	_, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(6),
		ActorName:     "Ana",
		UserID:        "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, fx.quantity(t, "item-1").Equal(decimal.NewFromInt(20)))
}

func TestCompleteItem_SucursalAjenaProhibida(t *testing.T) {
	fx := newFixture(t)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 7))

	_, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:          resp.ID,
		MoveoutItemID:   resp.Items[0].ID,
		RequestAmount:   decimal.NewFromInt(7),
		ActorName:       "Ana",
		UserID:          "user-2",
		AllowedBranchID: "branch-2",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Completar dejando el stock en banda crítica publica un aviso.
func TestCompleteItem_PublicaAvisoCritico(t *testing.T) {
	fx := newFixture(t)
	alerts := fx.bus.Subscribe(4)
	resp := fx.createList(t, line("item-1", "Guantes", 20, 16))

	out, err := fx.uc.CompleteItem(context.Background(), moveout.CompleteItemInput{
		ListID:        resp.ID,
		MoveoutItemID: resp.Items[0].ID,
		RequestAmount: decimal.NewFromInt(16),
		ActorName:     "Ana",
		UserID:        "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, string(stock.StatusCritical), out.StockStatus)

	select {
	case alert := <-alerts:
		assert.Equal(t, stock.StatusCritical, alert.Status)
		assert.Equal(t, "item-1", alert.ItemID)
	case <-time.After(time.Second):
		t.Fatal("no se publicó el aviso crítico")
	}
}
