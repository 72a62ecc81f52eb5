package money

import (
	"fmt"
	"math"
)

// Round2 округляет до двух знаков после запятой.
// Все денежные величины движка ценообразования фиксируются с точностью до цента.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatEuro форматирует сумму для отображения: "€12.34".
// Используется только на границе представления, движок оперирует числами.
func FormatEuro(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}
