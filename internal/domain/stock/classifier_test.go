package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// Límites inclusivos: threshold*0.5 es critical, threshold*0.5 + 1 es low,
// threshold es low, threshold + 1 es adequate.
func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		name      string
		quantity  float64
		threshold float64
		want      stock.Status
	}{
		{"cero con umbral 10", 0, 10, stock.StatusCritical},
		{"mitad exacta del umbral", 5, 10, stock.StatusCritical},
		{"mitad más uno", 6, 10, stock.StatusLow},
		{"umbral exacto", 10, 10, stock.StatusLow},
		{"umbral más uno", 11, 10, stock.StatusAdequate},
		{"umbral impar, mitad fraccionaria", 3.5, 7, stock.StatusCritical},
		{"umbral impar, sobre la mitad", 4, 7, stock.StatusLow},
		{"muy por encima", 1000, 7, stock.StatusAdequate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(dec(tc.quantity), dec(tc.threshold))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Umbral <= 0 es error de configuración del caller: la regla se aplica tal cual
// y toda cantidad positiva cae en adequate.
func TestClassify_UmbralCero(t *testing.T) {
	assert.Equal(t, stock.StatusCritical, stock.Classify(dec(0), dec(0)))
	assert.Equal(t, stock.StatusAdequate, stock.Classify(dec(1), dec(0)))
}

// Función pura: misma entrada, misma salida.
func TestClassify_Idempotente(t *testing.T) {
	a := stock.Classify(dec(6), dec(10))
	b := stock.Classify(dec(6), dec(10))
	assert.Equal(t, a, b)
}

// Monotonía: para un umbral fijo, subir la cantidad nunca empeora el nivel.
func TestClassify_Monotonia(t *testing.T) {
	threshold := dec(20)
	prev := stock.Severity(stock.Classify(dec(0), threshold))
	for q := 1; q <= 40; q++ {
		sev := stock.Severity(stock.Classify(decimal.NewFromInt(int64(q)), threshold))
		assert.LessOrEqual(t, sev, prev,
			"la severidad no debe subir al aumentar la cantidad (q=%d)", q)
		prev = sev
	}
}

func TestNeedsAlert(t *testing.T) {
	assert.True(t, stock.NeedsAlert(stock.StatusCritical))
	assert.True(t, stock.NeedsAlert(stock.StatusLow))
	assert.False(t, stock.NeedsAlert(stock.StatusAdequate))
}
