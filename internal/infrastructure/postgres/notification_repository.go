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

var _ repository.NotificationPreferenceRepository = (*NotificationPreferenceRepo)(nil)

// NotificationPreferenceRepo preferencias de avisos sobre PostgreSQL.
type NotificationPreferenceRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationPreferenceRepository construye el adaptador de preferencias.
func NewNotificationPreferenceRepository(pool *pgxpool.Pool) *NotificationPreferenceRepo {
	return &NotificationPreferenceRepo{pool: pool}
}

// Get obtiene las preferencias guardadas del usuario; nil si nunca guardó.
func (r *NotificationPreferenceRepo) Get(userID string) (*entity.NotificationPreference, error) {
	query := `
		SELECT user_id, low_stock, critical_stock, moveout_activity, delivery_activity, updated_at
		FROM notification_preferences WHERE user_id = $1`
	var p entity.NotificationPreference
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.LowStock, &p.CriticalStock, &p.MoveoutActivity, &p.DeliveryActivity, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification preferences: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza las preferencias del usuario.
func (r *NotificationPreferenceRepo) Upsert(pref *entity.NotificationPreference) error {
	query := `
		INSERT INTO notification_preferences (user_id, low_stock, critical_stock, moveout_activity, delivery_activity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET low_stock = EXCLUDED.low_stock,
			critical_stock = EXCLUDED.critical_stock,
			moveout_activity = EXCLUDED.moveout_activity,
			delivery_activity = EXCLUDED.delivery_activity,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		pref.UserID, pref.LowStock, pref.CriticalStock,
		pref.MoveoutActivity, pref.DeliveryActivity, pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert notification preferences: %w", err)
	}
	return nil
}
