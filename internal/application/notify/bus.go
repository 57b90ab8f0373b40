package notify

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// StockAlert evento in-process emitido cuando una mutación deja un artículo en
// nivel low o critical. Los consumidores (badges, contadores) re-consultan el
// estado autoritativo; el evento solo dispara el re-poll.
type StockAlert struct {
	BranchID  string
	ItemID    string
	ItemName  string
	Quantity  decimal.Decimal
	Threshold decimal.Decimal
	Status    stock.Status
	At        time.Time
}

// Bus pub/sub in-process para avisos de stock. Publish nunca bloquea: si el
// buffer de un suscriptor está lleno, el evento se descarta para ese suscriptor
// (el estado real siempre se re-consulta, no se reconstruye desde eventos).
type Bus struct {
	mu   sync.RWMutex
	subs []chan StockAlert

	published *prometheus.CounterVec
	dropped   prometheus.Counter
}

// NewBus construye el bus y registra sus métricas en reg (nil = sin métricas).
func NewBus(reg prometheus.Registerer) *Bus {
	b := &Bus{}
	if reg != nil {
		b.published = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "stock_alerts_total",
			Help: "Avisos de stock emitidos, por nivel.",
		}, []string{"tier"})
		b.dropped = promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "stock_alerts_dropped_total",
			Help: "Avisos descartados por buffer de suscriptor lleno.",
		})
	}
	return b
}

// Subscribe devuelve un canal con el buffer indicado por el que se recibirán
// los avisos publicados a partir de ahora.
func (b *Bus) Subscribe(buffer int) <-chan StockAlert {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan StockAlert, buffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish entrega el aviso a todos los suscriptores sin bloquear.
func (b *Bus) Publish(alert StockAlert) {
	if alert.At.IsZero() {
		alert.At = time.Now()
	}
	if b.published != nil {
		b.published.WithLabelValues(string(alert.Status)).Inc()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- alert:
		default:
			if b.dropped != nil {
				b.dropped.Inc()
			}
		}
	}
}
