// pkg/utils/area/area.go
package area

import (
	"fmt"
	"math"
	"strconv"
)

// SqmPerPyeong is the legal conversion factor between square meters and
// pyeong (1평 = 3.3058㎡).
const SqmPerPyeong = 3.3058

// SqmToPyeong converts square meters to pyeong, rounded to one decimal.
func SqmToPyeong(sqm float64) float64 {
	return math.Round(sqm/SqmPerPyeong*10) / 10
}

// PricePerPyeong returns the price per pyeong for a total price in man-won.
// Returns 0 when the converted area is 0 so callers never divide by zero.
func PricePerPyeong(totalPrice int64, sqm float64) int64 {
	pyeong := SqmToPyeong(sqm)
	if pyeong == 0 {
		return 0
	}
	return int64(math.Round(float64(totalPrice) / pyeong))
}

// FormatPrice renders a man-won amount the way listings display it:
// 12340 → "1억 2,340만", 10000 → "1억", 9999 → "9,999만".
func FormatPrice(manwon int64) string {
	if manwon >= 10000 {
		eok := manwon / 10000
		remainder := manwon % 10000
		if remainder == 0 {
			return fmt.Sprintf("%d억", eok)
		}
		return fmt.Sprintf("%d억 %s만", eok, groupDigits(remainder))
	}
	return groupDigits(manwon) + "만"
}

// groupDigits inserts thousands separators into a non-negative integer.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
