package usecase

import (
	"sort"
	"time"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// NotificationUseCase preferencias de avisos por usuario y cómputo de los avisos
// vigentes. Los avisos se recalculan en cada consulta (re-poll), no se almacenan.
type NotificationUseCase struct {
	prefs  repository.NotificationPreferenceRepository
	levels repository.StockLevelRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	prefs repository.NotificationPreferenceRepository,
	levels repository.StockLevelRepository,
) *NotificationUseCase {
	return &NotificationUseCase{prefs: prefs, levels: levels}
}

// defaultPreferences todo activado: un usuario sin fila guardada ve todos los avisos.
func defaultPreferences(userID string) *entity.NotificationPreference {
	return &entity.NotificationPreference{
		UserID:           userID,
		LowStock:         true,
		CriticalStock:    true,
		MoveoutActivity:  true,
		DeliveryActivity: true,
	}
}

// GetPreferences devuelve las preferencias del usuario, o los defaults si nunca guardó.
func (uc *NotificationUseCase) GetPreferences(userID string) (*dto.NotificationPreferencesResponse, error) {
	pref, err := uc.prefs.Get(userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		pref = defaultPreferences(userID)
	}
	return toPreferencesResponse(pref), nil
}

// UpdatePreferences aplica cambios parciales y persiste (upsert).
func (uc *NotificationUseCase) UpdatePreferences(userID string, in dto.UpdateNotificationPreferencesRequest) (*dto.NotificationPreferencesResponse, error) {
	pref, err := uc.prefs.Get(userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		pref = defaultPreferences(userID)
	}
	if in.LowStock != nil {
		pref.LowStock = *in.LowStock
	}
	if in.CriticalStock != nil {
		pref.CriticalStock = *in.CriticalStock
	}
	if in.MoveoutActivity != nil {
		pref.MoveoutActivity = *in.MoveoutActivity
	}
	if in.DeliveryActivity != nil {
		pref.DeliveryActivity = *in.DeliveryActivity
	}
	pref.UpdatedAt = time.Now()
	if err := uc.prefs.Upsert(pref); err != nil {
		return nil, err
	}
	return toPreferencesResponse(pref), nil
}

// Alerts calcula los avisos de stock vigentes para el usuario, filtrados por sus
// preferencias. branchID vacío (admin global) recorre todas las sucursales.
// Orden: critical primero, dentro del mismo nivel por nombre de artículo.
func (uc *NotificationUseCase) Alerts(userID, branchID string) (*dto.StockAlertsResponse, error) {
	pref, err := uc.prefs.Get(userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		pref = defaultPreferences(userID)
	}

	var levels []*entity.StockLevel
	if branchID != "" {
		levels, err = uc.levels.ListByBranch(branchID, 0, 0)
	} else {
		levels, err = uc.levels.ListAll(0, 0)
	}
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.StockAlertDTO, 0)
	for _, l := range levels {
		status := stock.Classify(l.Quantity, l.ThresholdLevel)
		switch status {
		case stock.StatusCritical:
			if !pref.CriticalStock {
				continue
			}
		case stock.StatusLow:
			if !pref.LowStock {
				continue
			}
		default:
			continue
		}
		alerts = append(alerts, dto.StockAlertDTO{
			BranchID: l.BranchID,
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Status:   string(status),
			Quantity: l.Quantity.String(),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		si := stock.Severity(stock.Status(alerts[i].Status))
		sj := stock.Severity(stock.Status(alerts[j].Status))
		if si != sj {
			return si > sj
		}
		return alerts[i].ItemName < alerts[j].ItemName
	})

	return &dto.StockAlertsResponse{Total: len(alerts), Alerts: alerts}, nil
}

func toPreferencesResponse(p *entity.NotificationPreference) *dto.NotificationPreferencesResponse {
	return &dto.NotificationPreferencesResponse{
		LowStock:         p.LowStock,
		CriticalStock:    p.CriticalStock,
		MoveoutActivity:  p.MoveoutActivity,
		DeliveryActivity: p.DeliveryActivity,
		UpdatedAt:        p.UpdatedAt,
	}
}
