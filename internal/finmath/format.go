package finmath

import (
	"fmt"
	"strings"
)

// FormatEUR renders a value the way the course material does: French digit
// grouping with a narrow space, comma decimal separator, trailing € sign.
// e.g. 12345.5 -> "12 345,50 €".
func FormatEUR(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(decPart)
	b.WriteString(" €")
	return b.String()
}

// FormatPercent renders a rate with two decimals and a % sign, comma decimal.
func FormatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f%%", v), ".", ",", 1)
}
