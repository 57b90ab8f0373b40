package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.MoveoutRepository = (*MoveoutRepo)(nil)

// MoveoutRepo persistencia de listas de retiro sobre PostgreSQL (usable con pool o tx).
type MoveoutRepo struct {
	q Querier
}

// NewMoveoutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoveoutRepository(q Querier) *MoveoutRepo {
	return &MoveoutRepo{q: q}
}

// CreateList persiste la lista y todos sus renglones. Invocar dentro de una
// transacción para que la creación sea atómica.
func (r *MoveoutRepo) CreateList(list *entity.MoveoutList) error {
	query := `
		INSERT INTO moveout_lists (id, branch_id, title, description, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		list.ID, list.BranchID, list.Title, list.Description, list.Status,
		list.CreatedBy, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert moveout list: %w", err)
	}
	itemQuery := `
		INSERT INTO moveout_items (id, list_id, item_id, item_name, category, available_amount, request_amount, status, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, it := range list.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, list.ID, it.ItemID, it.ItemName, it.Category,
			it.AvailableAmount, it.RequestAmount, it.Status, it.Position,
		)
		if err != nil {
			return fmt.Errorf("insert moveout item: %w", err)
		}
	}
	return nil
}

// GetList obtiene una lista con sus renglones en orden de inserción.
func (r *MoveoutRepo) GetList(id string) (*entity.MoveoutList, error) {
	query := `
		SELECT id, branch_id, title, description, status, created_by, created_at, updated_at
		FROM moveout_lists WHERE id = $1`
	var l entity.MoveoutList
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.BranchID, &l.Title, &l.Description, &l.Status,
		&l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get moveout list: %w", err)
	}
	items, err := r.listItems(l.ID)
	if err != nil {
		return nil, err
	}
	l.Items = items
	return &l, nil
}

// ListByBranch lista las listas de retiro de una sucursal, más reciente primero.
func (r *MoveoutRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.MoveoutList, error) {
	query := `
		SELECT id, branch_id, title, description, status, created_by, created_at, updated_at
		FROM moveout_lists WHERE branch_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list moveout lists: %w", err)
	}
	defer rows.Close()
	return r.scanListsWithItems(rows)
}

// ListAll lista las listas de retiro de todas las sucursales (admin global).
func (r *MoveoutRepo) ListAll(limit, offset int) ([]*entity.MoveoutList, error) {
	query := `
		SELECT id, branch_id, title, description, status, created_by, created_at, updated_at
		FROM moveout_lists ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list moveout lists: %w", err)
	}
	defer rows.Close()
	return r.scanListsWithItems(rows)
}

// GetItemForUpdate bloquea el renglón para update; nil si no existe en esa lista.
func (r *MoveoutRepo) GetItemForUpdate(listID, itemID string) (*entity.MoveoutItem, error) {
	query := `
		SELECT id, list_id, item_id, item_name, category, available_amount, request_amount, status, processed_by, processed_at, position
		FROM moveout_items WHERE list_id = $1 AND id = $2
		FOR UPDATE`
	var it entity.MoveoutItem
	var processedBy *string
	err := r.q.QueryRow(context.Background(), query, listID, itemID).Scan(
		&it.ID, &it.ListID, &it.ItemID, &it.ItemName, &it.Category,
		&it.AvailableAmount, &it.RequestAmount, &it.Status, &processedBy, &it.ProcessedAt, &it.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get moveout item for update: %w", err)
	}
	if processedBy != nil {
		it.ProcessedBy = *processedBy
	}
	return &it, nil
}

// MarkItemCompleted marca el renglón como completado con quién y cuándo.
func (r *MoveoutRepo) MarkItemCompleted(moveoutItemID, processedBy string, processedAt time.Time) error {
	query := `
		UPDATE moveout_items SET status = $2, processed_by = $3, processed_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		moveoutItemID, entity.MoveoutItemCompleted, processedBy, processedAt,
	)
	if err != nil {
		return fmt.Errorf("mark moveout item completed: %w", err)
	}
	return nil
}

// CountPendingItems cuenta los renglones aún pendientes de una lista.
func (r *MoveoutRepo) CountPendingItems(listID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM moveout_items WHERE list_id = $1 AND status = $2`,
		listID, entity.MoveoutItemPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending moveout items: %w", err)
	}
	return n, nil
}

// SetListStatus actualiza el estado almacenado de la lista.
func (r *MoveoutRepo) SetListStatus(listID, status string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE moveout_lists SET status = $2, updated_at = $3 WHERE id = $1`,
		listID, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("set moveout list status: %w", err)
	}
	return nil
}

func (r *MoveoutRepo) scanListsWithItems(rows pgx.Rows) ([]*entity.MoveoutList, error) {
	var lists []*entity.MoveoutList
	for rows.Next() {
		var l entity.MoveoutList
		if err := rows.Scan(&l.ID, &l.BranchID, &l.Title, &l.Description, &l.Status,
			&l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan moveout list: %w", err)
		}
		lists = append(lists, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, l := range lists {
		items, err := r.listItems(l.ID)
		if err != nil {
			return nil, err
		}
		l.Items = items
	}
	return lists, nil
}

func (r *MoveoutRepo) listItems(listID string) ([]entity.MoveoutItem, error) {
	query := `
		SELECT id, list_id, item_id, item_name, category, available_amount, request_amount, status, processed_by, processed_at, position
		FROM moveout_items WHERE list_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, listID)
	if err != nil {
		return nil, fmt.Errorf("list moveout items: %w", err)
	}
	defer rows.Close()
	var items []entity.MoveoutItem
	for rows.Next() {
		var it entity.MoveoutItem
		var processedBy *string
		if err := rows.Scan(&it.ID, &it.ListID, &it.ItemID, &it.ItemName, &it.Category,
			&it.AvailableAmount, &it.RequestAmount, &it.Status, &processedBy, &it.ProcessedAt, &it.Position); err != nil {
			return nil, fmt.Errorf("scan moveout item: %w", err)
		}
		if processedBy != nil {
			it.ProcessedBy = *processedBy
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
