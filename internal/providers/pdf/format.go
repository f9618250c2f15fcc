package pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatCurrency renders a whole-dollar amount with thousands separators,
// e.g. -1234567.8 -> "-$1,234,568". Report figures use zero decimal places.
func formatCurrency(symbol string, amount float64) string {
	whole := int64(math.Round(math.Abs(amount)))
	grouped := groupThousands(whole)
	if amount < 0 && whole != 0 {
		return "-" + symbol + grouped
	}
	return symbol + grouped
}

func formatCount(v int64) string {
	return groupThousands(v)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatMonths(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " months"
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " hours"
}

func groupThousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
