package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
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
	rows    map[string]*entity.Stock
	catalog []string // IDs de artículos del catálogo, para InitializeMissing
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[string]*entity.Stock{}}
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

func (f *fakeStockRepo) InitializeMissing(branchID string) (int, error) {
	created := 0
	for _, itemID := range f.catalog {
		key := stockKey(itemID, branchID)
		if _, ok := f.rows[key]; !ok {
			f.rows[key] = &entity.Stock{ItemID: itemID, BranchID: branchID, Quantity: decimal.Zero}
			created++
		}
	}
	return created, nil
}

func (f *fakeStockRepo) snapshot() map[string]*entity.Stock {
	cp := make(map[string]*entity.Stock, len(f.rows))
	for k, v := range f.rows {
		s := *v
		cp[k] = &s
	}
	return cp
}

type fakeMovementRepo struct {
	movs []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.movs = append(f.movs, &cp)
	return nil
}

func (f *fakeMovementRepo) List(_ repository.MovementFilter) ([]*entity.StockMovement, error) {
	return f.movs, nil
}

// fakeTxRunner simula Commit/Rollback: ante error de fn (o failCommit inyectado)
// restaura el estado previo de los fakes, como haría la transacción real.
type fakeTxRunner struct {
	stock      *fakeStockRepo
	mov        *fakeMovementRepo
	failCommit error
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	stockBefore := r.stock.snapshot()
	movsBefore := len(r.mov.movs)

	err := fn(r.mov, r.stock)
	if err == nil && r.failCommit != nil {
		err = r.failCommit
	}
	if err != nil {
		r.stock.rows = stockBefore
		r.mov.movs = r.mov.movs[:movsBefore]
		return err
	}
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (f *fakeItemRepo) Create(i *entity.Item) error          { f.items[i.ID] = i; return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return f.items[id], nil
}
func (f *fakeItemRepo) GetBySKU(string) (*entity.Item, error)             { return nil, nil }
func (f *fakeItemRepo) Update(*entity.Item) error                         { return nil }
func (f *fakeItemRepo) List(int, int) ([]*entity.Item, error)             { return nil, nil }
func (f *fakeItemRepo) Delete(string) error                               { return nil }

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }
func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return f.branches[id], nil
}
func (f *fakeBranchRepo) Update(*entity.Branch) error                          { return nil }
func (f *fakeBranchRepo) ListByDistrict(string, int, int) ([]*entity.Branch, error) { return nil, nil }
func (f *fakeBranchRepo) List(int, int) ([]*entity.Branch, error)              { return nil, nil }
func (f *fakeBranchRepo) Delete(string) error                                  { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado de escenario
// ──────────────────────────────────────────────────────────────────────────────

type deltaFixture struct {
	uc     *inventory.ApplyStockDeltaUseCase
	stock  *fakeStockRepo
	mov    *fakeMovementRepo
	runner *fakeTxRunner
	bus    *notify.Bus
}

func newDeltaFixture(t *testing.T, threshold, startQty float64) *deltaFixture {
	t.Helper()
	stockRepo := newFakeStockRepo()
	stockRepo.catalog = []string{"item-1"}
	require.NoError(t, stockRepo.Upsert(&entity.Stock{
		ItemID: "item-1", BranchID: "branch-1",
		Quantity: decimal.NewFromFloat(startQty), UpdatedAt: time.Now(),
	}))
	movRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{stock: stockRepo, mov: movRepo}
	items := &fakeItemRepo{items: map[string]*entity.Item{
		"item-1": {ID: "item-1", Name: "Guantes", ThresholdLevel: decimal.NewFromFloat(threshold)},
	}}
	branches := &fakeBranchRepo{branches: map[string]*entity.Branch{
		"branch-1": {ID: "branch-1", Name: "Centro"},
	}}
	bus := notify.NewBus(nil)
	return &deltaFixture{
		uc:     inventory.NewApplyStockDeltaUseCase(runner, items, branches, bus),
		stock:  stockRepo,
		mov:    movRepo,
		runner: runner,
		bus:    bus,
	}
}

func (fx *deltaFixture) quantity(t *testing.T) decimal.Decimal {
	t.Helper()
	s, err := fx.stock.Get("item-1", "branch-1")
	require.NoError(t, err)
	return s.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaYRegistraMovimiento(t *testing.T) {
	fx := newDeltaFixture(t, 10, 20)
	res, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: inventory.DirectionIn, Amount: decimal.NewFromInt(5), UserID: "u1",
	})
	require.NoError(t, err)
	assert.True(t, res.NewQuantity.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, stock.StatusAdequate, res.Status)

	require.Len(t, fx.mov.movs, 1)
	assert.Equal(t, entity.MovementTypeIN, fx.mov.movs[0].Type)
	assert.True(t, fx.mov.movs[0].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestApply_SalidaDescuentaExacto(t *testing.T) {
	fx := newDeltaFixture(t, 10, 20)
	res, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: inventory.DirectionOut, Amount: decimal.NewFromInt(7), UserID: "u1",
	})
	require.NoError(t, err)
	assert.True(t, res.NewQuantity.Equal(decimal.NewFromInt(13)))

	require.Len(t, fx.mov.movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, fx.mov.movs[0].Type)
	assert.True(t, fx.mov.movs[0].Quantity.Equal(decimal.NewFromInt(-7)), "el libro mayor registra la salida en negativo")
}

// Un OUT por más de la existencia falla atómico: ni cantidad ni libro mayor cambian.
func TestApply_SalidaInsuficiente_NoCambiaNada(t *testing.T) {
	fx := newDeltaFixture(t, 10, 5)
	_, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: inventory.DirectionOut, Amount: decimal.NewFromInt(8), UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, fx.quantity(t).Equal(decimal.NewFromInt(5)))
	assert.Empty(t, fx.mov.movs)
}

// Fallo inyectado al confirmar: la transacción revierte cantidad y movimiento.
func TestApply_FalloAlConfirmar_RevierteTodo(t *testing.T) {
	fx := newDeltaFixture(t, 10, 20)
	fx.runner.failCommit = assert.AnError

	_, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: inventory.DirectionOut, Amount: decimal.NewFromInt(7), UserID: "u1",
	})
	require.Error(t, err)
	assert.True(t, fx.quantity(t).Equal(decimal.NewFromInt(20)), "la cantidad debe quedar intacta")
	assert.Empty(t, fx.mov.movs)
}

func TestApply_DireccionInvalida(t *testing.T) {
	fx := newDeltaFixture(t, 10, 20)
	_, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: "sideways", Amount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Al quedar la existencia en banda low/critical se publica un aviso en el bus.
func TestApply_PublicaAvisoAlBajarDeUmbral(t *testing.T) {
	fx := newDeltaFixture(t, 10, 20)
	alerts := fx.bus.Subscribe(4)

	_, err := fx.uc.Apply(context.Background(), inventory.DeltaInput{
		ItemID: "item-1", BranchID: "branch-1",
		Direction: inventory.DirectionOut, Amount: decimal.NewFromInt(12), UserID: "u1",
	})
	require.NoError(t, err)

	select {
	case alert := <-alerts:
		assert.Equal(t, stock.StatusLow, alert.Status)
		assert.True(t, alert.Quantity.Equal(decimal.NewFromInt(8)))
	case <-time.After(time.Second):
		t.Fatal("no se publicó el aviso de stock bajo")
	}
}

func TestInitialize_Idempotente(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.catalog = []string{"item-1", "item-2", "item-3"}
	branches := &fakeBranchRepo{branches: map[string]*entity.Branch{
		"branch-1": {ID: "branch-1"},
	}}
	uc := inventory.NewInitializeStockUseCase(stockRepo, branches)

	created, err := uc.Initialize(context.Background(), "branch-1")
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = uc.Initialize(context.Background(), "branch-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created, "la segunda llamada no debe crear filas")
}

func TestInitialize_SucursalInexistente(t *testing.T) {
	uc := inventory.NewInitializeStockUseCase(newFakeStockRepo(), &fakeBranchRepo{branches: map[string]*entity.Branch{}})
	_, err := uc.Initialize(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
