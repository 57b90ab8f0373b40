package moveout

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el motor de retiros: la deducción de stock, la marca
// del renglón y el estado de la lista viajan juntos en una sola unidad atómica.
type TxRunner interface {
	RunMoveout(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		moveoutRepo repository.MoveoutRepository,
	) error) error
}
