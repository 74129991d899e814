// pkg/utils/address/mask.go
package address

import (
	"regexp"
	"strings"
)

// parcelPattern matches a trailing lot-number token: digits optionally
// followed by a dash and more digits ("123" or "123-4").
var parcelPattern = regexp.MustCompile(`(\d+)([-–]\d+)?$`)

// Mask redacts the trailing parcel number of a lot-number address while
// keeping the administrative prefix intact:
// "화성시 팔탄면 구장리 123-4" → "화성시 팔탄면 구장리 ***-*".
// Addresses without a trailing parcel token are returned unchanged, so
// masking an already-masked address is a no-op.
func Mask(addr string) string {
	if addr == "" {
		return ""
	}
	return parcelPattern.ReplaceAllStringFunc(addr, func(match string) string {
		sep := "-"
		idx := strings.IndexAny(match, "-–")
		if idx < 0 {
			return maskDigits(match)
		}
		sep = string([]rune(match[idx:])[0])
		bun := match[:idx]
		ji := match[idx+len(sep):]
		return maskDigits(bun) + sep + maskDigits(ji)
	})
}

func maskDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '*'
		}
		return r
	}, s)
}

// StripParcel removes the trailing lot-number token entirely. Map lookups
// use the district-level address so customer-facing geocoding never leaks
// the exact parcel.
func StripParcel(addr string) string {
	return strings.TrimSpace(parcelPattern.ReplaceAllString(addr, ""))
}
