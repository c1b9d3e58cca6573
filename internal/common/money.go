package common

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern extracts a dollar amount from rendered journal-entry text,
// e.g. "Cash $2,500" or "Sales Revenue $1,250.50".
var amountPattern = regexp.MustCompile(`\$([0-9][0-9,]*(?:\.[0-9]+)?)`)

// FormatAmount renders a dollar amount with thousands separators and no
// currency symbol, e.g. 2500 -> "2,500", 1250.5 -> "1,250.50".
func FormatAmount(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to whole cents first so fractions like .999 carry into the
	// dollars instead of rendering a third cent digit.
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String()
	if frac > 0 {
		out = fmt.Sprintf("%s.%02d", out, frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount extracts the first dollar amount embedded in text. It returns
// false when no amount is present.
func ParseAmount(text string) (float64, bool) {
	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	cleaned := strings.ReplaceAll(match[1], ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
