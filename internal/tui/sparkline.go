package tui

import (
	"math"
	"strings"

	"anchor-sim/internal/model"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the last width prices as block characters scaled between
// the window's min and max. Points below the anchor are drawn in the buy
// color, others in the sell color.
func Sparkline(points []model.PricePoint, anchor float64, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Price)
		hi = math.Max(hi, p.Price)
	}

	var b strings.Builder
	for _, p := range points {
		r := sparkLevels[sparkIndex(p.Price, lo, hi)]
		if p.Price < anchor {
			b.WriteString(BuyStyle.Render(string(r)))
		} else {
			b.WriteString(SellStyle.Render(string(r)))
		}
	}
	return b.String()
}

func sparkIndex(v, lo, hi float64) int {
	top := len(sparkLevels) - 1
	if hi <= lo {
		return top / 2
	}
	i := int(math.Round((v - lo) / (hi - lo) * float64(top)))
	return max(0, min(top, i))
}
