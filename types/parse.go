package types

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces user text into a number. Text that does not parse
// as a finite number yields 0. A leading "$", a trailing "%" and thousands
// separators are ignored.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	switch {
	case strings.HasPrefix(s, "-$"):
		s = "-" + s[2:]
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatAmount renders v with the shortest exact decimal representation.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
