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

var _ repository.RegionRepository = (*RegionRepo)(nil)

// RegionRepo implementación del puerto RegionRepository sobre PostgreSQL.
type RegionRepo struct {
	pool *pgxpool.Pool
}

// NewRegionRepository construye el adaptador de persistencia para regiones.
func NewRegionRepository(pool *pgxpool.Pool) *RegionRepo {
	return &RegionRepo{pool: pool}
}

// Create persiste una nueva región.
func (r *RegionRepo) Create(region *entity.Region) error {
	query := `
		INSERT INTO regions (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		region.ID, region.Name, region.CreatedAt, region.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

// GetByID obtiene una región por ID.
func (r *RegionRepo) GetByID(id string) (*entity.Region, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM regions WHERE id = $1`
	var reg entity.Region
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&reg.ID, &reg.Name, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}

// Update actualiza una región existente.
func (r *RegionRepo) Update(region *entity.Region) error {
	query := `
		UPDATE regions SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		region.ID, region.Name, region.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update region: %w", err)
	}
	return nil
}

// List lista regiones con paginación.
func (r *RegionRepo) List(limit, offset int) ([]*entity.Region, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM regions ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Region
	for rows.Next() {
		var reg entity.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

// Delete elimina una región por ID.
func (r *RegionRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete region: %w", err)
	}
	return nil
}
