package dto

import "time"

// NotificationPreferencesResponse preferencias de avisos del usuario autenticado.
type NotificationPreferencesResponse struct {
	LowStock         bool      `json:"low_stock"`
	CriticalStock    bool      `json:"critical_stock"`
	MoveoutActivity  bool      `json:"moveout_activity"`
	DeliveryActivity bool      `json:"delivery_activity"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UpdateNotificationPreferencesRequest body para PUT /api/notifications/preferences.
type UpdateNotificationPreferencesRequest struct {
	LowStock         *bool `json:"low_stock,omitempty"`
	CriticalStock    *bool `json:"critical_stock,omitempty"`
	MoveoutActivity  *bool `json:"moveout_activity,omitempty"`
	DeliveryActivity *bool `json:"delivery_activity,omitempty"`
}

// StockAlertDTO renglón de aviso para el badge de notificaciones (re-poll).
type StockAlertDTO struct {
	BranchID string `json:"branch_id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Status   string `json:"status"` // critical | low
	Quantity string `json:"quantity"`
}

// StockAlertsResponse avisos vigentes según preferencias del usuario.
type StockAlertsResponse struct {
	Total  int             `json:"total"`
	Alerts []StockAlertDTO `json:"alerts"`
}
