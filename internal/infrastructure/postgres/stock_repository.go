package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual de un artículo en una sucursal.
// Una fila inexistente se trata como existencia cero (pre-backfill).
func (r *StockRepo) Get(itemID, branchID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, branch_id, quantity, updated_at
		FROM stock WHERE item_id = $1 AND branch_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, branchID).Scan(
		&s.ItemID, &s.BranchID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ItemID: itemID, BranchID: branchID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(itemID, branchID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, branch_id, quantity, updated_at
		FROM stock WHERE item_id = $1 AND branch_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, branchID).Scan(
		&s.ItemID, &s.BranchID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ItemID: itemID, BranchID: branchID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por artículo y sucursal).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (item_id, branch_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, branch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ItemID, stock.BranchID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// InitializeMissing crea filas en cero para los artículos del catálogo que aún no
// tienen existencia en la sucursal. Idempotente: correr dos veces no duplica nada.
func (r *StockRepo) InitializeMissing(branchID string) (int, error) {
	query := `
		INSERT INTO stock (item_id, branch_id, quantity, updated_at)
		SELECT i.id, $1, 0, now()
		FROM items i
		ON CONFLICT (item_id, branch_id) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query, branchID)
	if err != nil {
		return 0, fmt.Errorf("initialize stock: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
