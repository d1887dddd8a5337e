package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalSmart parses a number that may use either a comma or a dot
// as the decimal separator. When both appear, the one occurring last is
// the decimal separator and the other is a thousands separator; a lone
// comma is treated as decimal. Unparseable input yields 0.
func ParseDecimalSmart(input string) decimal.Decimal {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// Comma is decimal: drop thousands dots, then swap.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// Dot is decimal: drop thousands commas.
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
