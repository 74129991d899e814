// pkg/utils/address/mask_test.go
package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "화성시 팔탄면 구장리 ***-*", Mask("화성시 팔탄면 구장리 123-4"))
	assert.Equal(t, "파주시 문산읍 당동리 ****", Mask("파주시 문산읍 당동리 1024"))
	// no trailing parcel token: unchanged
	assert.Equal(t, "화성시 팔탄면 구장리", Mask("화성시 팔탄면 구장리"))
	// digits in the middle are not a parcel suffix
	assert.Equal(t, "3공단로 끝", Mask("3공단로 끝"))
}

func TestMaskIsStableOnMaskedInput(t *testing.T) {
	once := Mask("김포시 통진읍 서암리 55-12")
	assert.Equal(t, once, Mask(once))
}

func TestStripParcel(t *testing.T) {
	assert.Equal(t, "화성시 팔탄면 구장리", StripParcel("화성시 팔탄면 구장리 123-4"))
	assert.Equal(t, "화성시 팔탄면 구장리", StripParcel("화성시 팔탄면 구장리"))
	assert.Equal(t, "", StripParcel(""))
}
