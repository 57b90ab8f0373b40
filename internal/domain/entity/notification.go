package entity

import "time"

// NotificationPreference preferencias por usuario para los avisos de la aplicación.
// Los avisos se consultan por re-poll; aquí solo se guarda qué quiere ver cada quien.
type NotificationPreference struct {
	UserID           string
	LowStock         bool
	CriticalStock    bool
	MoveoutActivity  bool
	DeliveryActivity bool
	UpdatedAt        time.Time
}
