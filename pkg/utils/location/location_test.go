// pkg/utils/location/location_test.go
package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigunguCode(t *testing.T) {
	code, ok := SigunguCode("화성시")
	assert.True(t, ok)
	assert.Equal(t, "41590", code)

	_, ok = SigunguCode("모르는시")
	assert.False(t, ok)
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("경기"))
	assert.False(t, ValidRegion("달나라"))
}

func TestLandCategoryCount(t *testing.T) {
	assert.Len(t, LandCategories, 28)
}
