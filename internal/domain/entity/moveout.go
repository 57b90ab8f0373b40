package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una lista de retiro. Una lista nace en draft (mostrada como "Pending")
// y pasa a completed solo cuando su último renglón pendiente se completa; nunca
// por una llamada directa.
const (
	MoveoutStatusDraft     = "draft"
	MoveoutStatusCompleted = "completed"
)

// Estados de un renglón de lista de retiro.
const (
	MoveoutItemPending   = "pending"
	MoveoutItemCompleted = "completed"
)

// MoveoutList lote de retiro por etapas, propiedad de la sucursal que lo creó.
type MoveoutList struct {
	ID          string
	BranchID    string
	Title       string
	Description string
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []MoveoutItem // orden de inserción, significativo solo para mostrar
}

// MoveoutItem renglón de una lista de retiro. ItemName y Category son snapshots
// tomados al agregar el renglón; no se re-sincronizan con el catálogo.
// AvailableAmount es la existencia al momento de la selección (snapshot, no vivo).
type MoveoutItem struct {
	ID              string
	ListID          string
	ItemID          string
	ItemName        string
	Category        string
	AvailableAmount decimal.Decimal
	RequestAmount   decimal.Decimal
	Status          string
	ProcessedBy     string
	ProcessedAt     *time.Time
	Position        int
}

// DerivedStatus recalcula el estado de la lista a partir de sus renglones:
// completed exactamente cuando todos los renglones están completados.
// Es la misma regla que aplica el motor al persistir, expuesta para lecturas.
func (l *MoveoutList) DerivedStatus() string {
	if len(l.Items) == 0 {
		return l.Status
	}
	for _, it := range l.Items {
		if it.Status != MoveoutItemCompleted {
			return MoveoutStatusDraft
		}
	}
	return MoveoutStatusCompleted
}

// PendingCount cantidad de renglones aún pendientes.
func (l *MoveoutList) PendingCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Status == MoveoutItemPending {
			n++
		}
	}
	return n
}
