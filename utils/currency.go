package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRupees extracts the integer amount from a display string such as
// "₹1,00,00,000". Strings without digits parse as zero.
func ParseRupees(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatRupees renders an amount with Indian digit grouping, e.g. ₹1,00,00,000.
func FormatRupees(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	digits := amount.Truncate(0).String()
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		digits = strings.Join(groups, ",") + "," + tail
	}
	return sign + "₹" + digits
}
