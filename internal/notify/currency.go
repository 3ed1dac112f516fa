package notify

import (
	"fmt"
	"math"
	"strconv"
)

// FormatUSD renders an amount as US-locale currency: dollar sign, thousands
// separators and two decimal places, rounding half away from zero.
func FormatUSD(amount float64) string {
	negative := math.Signbit(amount)
	cents := int64(math.Round(math.Abs(amount) * 100))

	dollars := cents / 100
	remainder := cents % 100

	grouped := groupThousands(strconv.FormatInt(dollars, 10))
	formatted := fmt.Sprintf("$%s.%02d", grouped, remainder)
	if negative {
		return "-" + formatted
	}
	return formatted
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	out := digits[:head]
	for i := head; i < len(digits); i += 3 {
		out += "," + digits[i:i+3]
	}
	return out
}
