package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

type fakeLevelRepo struct {
	levels []*entity.StockLevel
}

func (f *fakeLevelRepo) Get(itemID, branchID string) (*entity.StockLevel, error) {
	for _, l := range f.levels {
		if l.ItemID == itemID && l.BranchID == branchID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLevelRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.StockLevel, error) {
	out := make([]*entity.StockLevel, 0)
	for _, l := range f.levels {
		if l.BranchID == branchID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLevelRepo) ListAll(limit, offset int) ([]*entity.StockLevel, error) {
	return f.levels, nil
}

type fakeMovementRepo struct {
	movements  []*entity.StockMovement
	lastFilter repository.MovementFilter
}

func (f *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	f.movements = append(f.movements, mov)
	return nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	f.lastFilter = filter
	return f.movements, nil
}

func nivel(branch, item, name string, qty, threshold int64) *entity.StockLevel {
	return &entity.StockLevel{
		BranchID:       branch,
		ItemID:         item,
		ItemName:       name,
		Quantity:       decimal.NewFromInt(qty),
		ThresholdLevel: decimal.NewFromInt(threshold),
	}
}

func TestReportUseCase_ResumenPorNivel(t *testing.T) {
	levels := &fakeLevelRepo{levels: []*entity.StockLevel{
		nivel("branch-1", "i1", "Arroz", 3, 10),    // critical (3 <= 5)
		nivel("branch-1", "i2", "Frijol", 8, 10),   // low (8 <= 10)
		nivel("branch-1", "i3", "Azúcar", 50, 10),  // adequate
		nivel("branch-1", "i4", "Aceite", 5, 10),   // critical (límite inclusivo)
		nivel("branch-2", "i5", "Harina", 1, 10),   // otra sucursal
	}}
	uc := usecase.NewReportUseCase(levels, &fakeMovementRepo{})

	summary, err := uc.StockSummary("branch-1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Critical)
	assert.Equal(t, 1, summary.Low)
	assert.Equal(t, 1, summary.Adequate)
	assert.Equal(t, 4, summary.Total)

	// Atención: critical primero, luego low; dentro del nivel, por nombre.
	require.Len(t, summary.Attention, 3)
	assert.Equal(t, "Aceite", summary.Attention[0].ItemName)
	assert.Equal(t, "critical", summary.Attention[0].Status)
	assert.Equal(t, "Arroz", summary.Attention[1].ItemName)
	assert.Equal(t, "critical", summary.Attention[1].Status)
	assert.Equal(t, "Frijol", summary.Attention[2].ItemName)
	assert.Equal(t, "low", summary.Attention[2].Status)
}

func TestReportUseCase_ResumenGlobalSinSucursal(t *testing.T) {
	levels := &fakeLevelRepo{levels: []*entity.StockLevel{
		nivel("branch-1", "i1", "Arroz", 3, 10),
		nivel("branch-2", "i2", "Frijol", 50, 10),
	}}
	uc := usecase.NewReportUseCase(levels, &fakeMovementRepo{})

	summary, err := uc.StockSummary("")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 1, summary.Adequate)
}

func TestReportUseCase_MovimientosAplicaFiltro(t *testing.T) {
	movements := &fakeMovementRepo{movements: []*entity.StockMovement{
		{ID: "m1", ItemID: "i1", BranchID: "branch-1", Type: "OUT", Quantity: decimal.NewFromInt(2)},
	}}
	uc := usecase.NewReportUseCase(&fakeLevelRepo{}, movements)

	resp, err := uc.Movements(repository.MovementFilter{
		BranchID: "branch-1",
		Type:     "OUT",
		Limit:    20,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "m1", resp.Items[0].ID)
	assert.Equal(t, "OUT", resp.Items[0].Type)

	// El filtro llega intacto al repositorio.
	assert.Equal(t, "branch-1", movements.lastFilter.BranchID)
	assert.Equal(t, "OUT", movements.lastFilter.Type)
	assert.Equal(t, 20, movements.lastFilter.Limit)
}
