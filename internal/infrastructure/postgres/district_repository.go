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

var _ repository.DistrictRepository = (*DistrictRepo)(nil)

// DistrictRepo implementación del puerto DistrictRepository sobre PostgreSQL.
type DistrictRepo struct {
	pool *pgxpool.Pool
}

// NewDistrictRepository construye el adaptador de persistencia para distritos.
func NewDistrictRepository(pool *pgxpool.Pool) *DistrictRepo {
	return &DistrictRepo{pool: pool}
}

// Create persiste un nuevo distrito.
func (r *DistrictRepo) Create(district *entity.District) error {
	query := `
		INSERT INTO districts (id, region_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		district.ID, district.RegionID, district.Name, district.CreatedAt, district.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert district: %w", err)
	}
	return nil
}

// GetByID obtiene un distrito por ID.
func (r *DistrictRepo) GetByID(id string) (*entity.District, error) {
	query := `
		SELECT id, region_id, name, created_at, updated_at
		FROM districts WHERE id = $1`
	var d entity.District
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.RegionID, &d.Name, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get district: %w", err)
	}
	return &d, nil
}

// Update actualiza un distrito existente.
func (r *DistrictRepo) Update(district *entity.District) error {
	query := `
		UPDATE districts SET region_id = $2, name = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		district.ID, district.RegionID, district.Name, district.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update district: %w", err)
	}
	return nil
}

// ListByRegion lista distritos de una región con paginación.
func (r *DistrictRepo) ListByRegion(regionID string, limit, offset int) ([]*entity.District, error) {
	query := `
		SELECT id, region_id, name, created_at, updated_at
		FROM districts WHERE region_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, regionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()
	return scanDistricts(rows)
}

// List lista todos los distritos con paginación.
func (r *DistrictRepo) List(limit, offset int) ([]*entity.District, error) {
	query := `
		SELECT id, region_id, name, created_at, updated_at
		FROM districts ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()
	return scanDistricts(rows)
}

// Delete elimina un distrito por ID.
func (r *DistrictRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete district: %w", err)
	}
	return nil
}

func scanDistricts(rows pgx.Rows) ([]*entity.District, error) {
	var list []*entity.District
	for rows.Next() {
		var d entity.District
		if err := rows.Scan(&d.ID, &d.RegionID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
