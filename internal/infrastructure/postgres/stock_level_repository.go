package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo modelo de lectura (stock JOIN items) sobre PostgreSQL.
type StockLevelRepo struct {
	pool *pgxpool.Pool
}

// NewStockLevelRepository construye el adaptador de lectura de existencias.
func NewStockLevelRepository(pool *pgxpool.Pool) *StockLevelRepo {
	return &StockLevelRepo{pool: pool}
}

const stockLevelSelect = `
	SELECT s.branch_id, s.item_id, i.name, i.category, s.quantity, i.threshold_level, s.updated_at
	FROM stock s
	JOIN items i ON i.id = s.item_id`

// Get obtiene la existencia enriquecida de un artículo en una sucursal.
func (r *StockLevelRepo) Get(itemID, branchID string) (*entity.StockLevel, error) {
	query := stockLevelSelect + ` WHERE s.item_id = $1 AND s.branch_id = $2`
	var l entity.StockLevel
	err := r.pool.QueryRow(context.Background(), query, itemID, branchID).Scan(
		&l.BranchID, &l.ItemID, &l.ItemName, &l.Category,
		&l.Quantity, &l.ThresholdLevel, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// ListByBranch lista existencias de una sucursal. limit <= 0 trae todo.
func (r *StockLevelRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.StockLevel, error) {
	query := stockLevelSelect + ` WHERE s.branch_id = $1 ORDER BY i.name`
	args := []any{branchID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	return scanStockLevels(rows)
}

// ListAll lista existencias de todas las sucursales. limit <= 0 trae todo.
func (r *StockLevelRepo) ListAll(limit, offset int) ([]*entity.StockLevel, error) {
	query := stockLevelSelect + ` ORDER BY s.branch_id, i.name`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	return scanStockLevels(rows)
}

func scanStockLevels(rows pgx.Rows) ([]*entity.StockLevel, error) {
	var list []*entity.StockLevel
	for rows.Next() {
		var l entity.StockLevel
		if err := rows.Scan(&l.BranchID, &l.ItemID, &l.ItemName, &l.Category,
			&l.Quantity, &l.ThresholdLevel, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
