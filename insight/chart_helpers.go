package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// scaledCells maps value onto width cells relative to maxValue.
// Any value occupies at least one cell once progress starts. An infinite value fills
// the bar and NaN leaves it empty.
func scaledCells(value, maxValue float64, width int, progress float64) int {
	if width <= 0 {
		return 0
	}
	if !(maxValue > 0) {
		maxValue = 1
	}
	progress = clamp01(progress)

	var ratio float64
	switch {
	case math.IsNaN(value):
		return 0
	case math.IsInf(value, 0):
		ratio = 1
	default:
		ratio = clamp01(math.Abs(value) / maxValue)
	}
	cells := int(math.Round(ratio * float64(width) * progress))
	if cells < 1 && progress > 0 {
		cells = 1
	}
	return min(max(cells, 0), width)
}

// splitCells distributes width cells across parts proportionally using
// largest remainders, so the result always sums to width when any part is
// positive. Parts are scaled by the largest one first so finite values near
// the float limit cannot overflow the total; +Inf parts share the width and
// NaN parts get nothing.
func splitCells(parts []float64, width int) []int {
	out := make([]int, len(parts))
	if width <= 0 {
		return out
	}

	weights := make([]float64, len(parts))
	hasInf := false
	for _, p := range parts {
		if math.IsInf(p, 1) {
			hasInf = true
		}
	}
	var largest float64
	for i, p := range parts {
		switch {
		case hasInf && math.IsInf(p, 1):
			weights[i] = 1
		case !hasInf && p > 0:
			weights[i] = p
		}
		largest = math.Max(largest, weights[i])
	}
	if largest <= 0 {
		return out
	}

	var total float64
	for i := range weights {
		weights[i] /= largest
		total += weights[i]
	}

	remainders := make([]float64, len(parts))
	used := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		exact := w / total * float64(width)
		out[i] = min(int(math.Floor(exact)), width-used)
		remainders[i] = exact - float64(out[i])
		used += out[i]
	}

	for used < width {
		best := -1
		for i, r := range remainders {
			if weights[i] <= 0 {
				continue
			}
			if best < 0 || r > remainders[best] {
				best = i
			}
		}
		if best < 0 {
			break
		}
		out[best]++
		remainders[best] = -1
		used++
	}
	return out
}

func blendHex(a, b string, t float64) string {
	start, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	end, err := colorful.Hex(b)
	if err != nil {
		return b
	}
	return start.BlendLab(end, clamp01(t)).Clamped().Hex()
}

func paint(hex, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// clamp01 limits v to [0,1]; NaN becomes 0.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FormatMoney renders v as dollars with a leading minus for losses.
func FormatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatPercent renders v with two decimals and a percent sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Truncate cuts s to max runes, ending in an ellipsis when shortened.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func padRight(s string, width int) string {
	gap := width - xansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func clipANSIWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(line) <= width {
		return line
	}
	if width <= 1 {
		return "…"
	}
	return xansi.Truncate(line, width, "…")
}
