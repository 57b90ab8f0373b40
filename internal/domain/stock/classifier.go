package stock

import "github.com/shopspring/decimal"

// Status nivel de existencia de un artículo en una sucursal.
type Status string

// Niveles en orden de severidad decreciente. "low" cubre también lo que algunas
// vistas llaman "bajo umbral": es la misma banda numérica con una sola etiqueta.
const (
	StatusCritical Status = "critical"
	StatusLow      Status = "low"
	StatusAdequate Status = "adequate"
)

var half = decimal.NewFromFloat(0.5)

// Classify mapea (cantidad, umbral) a un nivel discreto. Reglas en orden,
// mutuamente excluyentes, con límites inclusivos hacia el nivel más severo:
//
//	critical  si quantity <= threshold * 0.5
//	low       si quantity <= threshold
//	adequate  en el resto
//
// Función pura, segura para llamadas concurrentes. Un umbral <= 0 es un error de
// configuración del caller (la creación de artículos exige umbral > 0); aquí la
// regla se aplica tal cual, con lo que toda cantidad positiva resulta adequate.
func Classify(quantity, threshold decimal.Decimal) Status {
	if quantity.LessThanOrEqual(threshold.Mul(half)) {
		return StatusCritical
	}
	if quantity.LessThanOrEqual(threshold) {
		return StatusLow
	}
	return StatusAdequate
}

// Severity valor numérico para ordenar por urgencia (mayor = más urgente).
func Severity(s Status) int {
	switch s {
	case StatusCritical:
		return 2
	case StatusLow:
		return 1
	default:
		return 0
	}
}

// NeedsAlert indica si el nivel amerita un aviso de stock.
func NeedsAlert(s Status) bool {
	return s == StatusCritical || s == StatusLow
}
