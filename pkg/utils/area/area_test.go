// pkg/utils/area/area_test.go
package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqmToPyeong(t *testing.T) {
	assert.Equal(t, 0.0, SqmToPyeong(0))
	assert.Equal(t, 1.0, SqmToPyeong(3.3058))
	assert.Equal(t, 1000.0, SqmToPyeong(3305.8))
	assert.Equal(t, 1200.1, SqmToPyeong(3967.0))
}

func TestSqmToPyeongMonotone(t *testing.T) {
	prev := 0.0
	for sqm := 0.0; sqm <= 10000; sqm += 37.5 {
		p := SqmToPyeong(sqm)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.GreaterOrEqual(t, p, prev, "sqm=%v", sqm)
		prev = p
	}
}

func TestPricePerPyeong(t *testing.T) {
	assert.Equal(t, int64(0), PricePerPyeong(99999, 0))
	// 12340 man-won over 1000 pyeong
	assert.Equal(t, int64(12), PricePerPyeong(12340, 3305.8))
	// rounds, not truncates
	assert.Equal(t, int64(2), PricePerPyeong(5, 3.3058*3))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1억", FormatPrice(10000))
	assert.Equal(t, "1억 2,340만", FormatPrice(12340))
	assert.Equal(t, "9,999만", FormatPrice(9999))
	assert.Equal(t, "18억", FormatPrice(180000))
	assert.Equal(t, "10억 500만", FormatPrice(100500))
	assert.Equal(t, "350만", FormatPrice(350))
	assert.Equal(t, "0만", FormatPrice(0))
}
