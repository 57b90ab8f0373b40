package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo persistencia de entregas sobre PostgreSQL (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una entrega recibida.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, branch_id, item_id, supplier, amount, received_by, notes, delivered_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.BranchID, delivery.ItemID, delivery.Supplier,
		delivery.Amount, delivery.ReceivedBy, delivery.Notes,
		delivery.DeliveredAt, delivery.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// ListByBranch lista las entregas de una sucursal, más reciente primero.
func (r *DeliveryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, branch_id, item_id, supplier, amount, received_by, notes, delivered_at, created_at
		FROM deliveries WHERE branch_id = $1 ORDER BY delivered_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.BranchID, &d.ItemID, &d.Supplier, &d.Amount,
			&d.ReceivedBy, &d.Notes, &d.DeliveredAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
