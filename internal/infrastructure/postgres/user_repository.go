package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// branch_id se guarda como NULL cuando el usuario es admin global.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para el personal.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Email duplicado devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, branch_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	branchID := (*string)(nil)
	if user.BranchID != "" {
		branchID = &user.BranchID
	}
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, branchID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy("id", id)
}

// FindByEmail busca un usuario por email.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getBy("email", email)
}

func (r *UserRepo) getBy(column, value string) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT id, branch_id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE %s = $1`, column)
	var u entity.User
	var branchID *string
	err := r.pool.QueryRow(context.Background(), query, value).Scan(
		&u.ID, &branchID, &u.Email, &u.PasswordHash, &u.Name,
		&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if branchID != nil {
		u.BranchID = *branchID
	}
	return &u, nil
}

// Update actualiza un usuario existente (sin tocar el hash de password).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET branch_id = $2, name = $3, role = $4, status = $5, updated_at = $6
		WHERE id = $1`
	branchID := (*string)(nil)
	if user.BranchID != "" {
		branchID = &user.BranchID
	}
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, branchID, user.Name, user.Role, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByBranch lista el personal de una sucursal con paginación.
func (r *UserRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, branch_id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE branch_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var bID *string
		if err := rows.Scan(&u.ID, &bID, &u.Email, &u.PasswordHash, &u.Name,
			&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if bID != nil {
			u.BranchID = *bID
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
