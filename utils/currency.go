package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD formats an amount for display with two decimals and thousands separators.
// Example: 1234.5 -> "$1,234.50"
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	formatted := fmt.Sprintf("%.2f", amount)
	integerPart, decimalPart, _ := strings.Cut(formatted, ".")

	// group the integer part by thousands
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "$" + strings.Join(groups, ",") + "." + decimalPart
}
