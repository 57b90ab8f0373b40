package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

type fakeItemRepo struct {
	byID  map[string]*entity.Item
	order []string
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[string]*entity.Item{}}
}

func (f *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	f.byID[item.ID] = &cp
	f.order = append(f.order, item.ID)
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := f.byID[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, it := range f.byID {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := f.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(f.order))
	for _, id := range f.order {
		cp := *f.byID[id]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItemRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestItemUseCase_CrearArticulo(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	resp, err := uc.Create(dto.CreateItemRequest{
		SKU:            "HAR-001",
		Name:           "Harina de trigo",
		Category:       "abarrotes",
		ThresholdLevel: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "HAR-001", resp.SKU)
	assert.True(t, resp.ThresholdLevel.Equal(decimal.NewFromInt(20)))
}

func TestItemUseCase_CrearSinDatosRequeridos(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{
		Name:           "Sin SKU",
		ThresholdLevel: decimal.NewFromInt(5),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestItemUseCase_UmbralDebeSerPositivo(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{
		SKU:            "X-1",
		Name:           "Artículo",
		ThresholdLevel: decimal.Zero,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestItemUseCase_SKUDuplicado(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{
		SKU: "DUP-1", Name: "Primero", ThresholdLevel: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateItemRequest{
		SKU: "DUP-1", Name: "Segundo", ThresholdLevel: decimal.NewFromInt(10),
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestItemUseCase_ActualizarUmbral(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{
		SKU: "UPD-1", Name: "Aceite", ThresholdLevel: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	nuevo := decimal.NewFromInt(30)
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{ThresholdLevel: &nuevo})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.ThresholdLevel.Equal(nuevo))

	// Un umbral no positivo se rechaza también al actualizar.
	cero := decimal.Zero
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{ThresholdLevel: &cero})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestItemUseCase_GetInexistente(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
