package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// NotificationPreferenceRepository puerto de persistencia para preferencias de avisos.
type NotificationPreferenceRepository interface {
	Get(userID string) (*entity.NotificationPreference, error)
	Upsert(pref *entity.NotificationPreference) error
}
