package model

import (
	"strings"
)

// FilterCriteria narrows the public catalog. Every field is optional:
// the zero value (or the literal "all") leaves that dimension open.
// PriceRange and AreaRange take the fixed bracket labels the search UI
// exposes.
type FilterCriteria struct {
	Keyword     string
	DealType    string
	ListingType string
	Region      string
	PriceRange  string
	AreaRange   string
}

// Price brackets, man-won. Lower bound exclusive, upper bound inclusive
// except the open ends.
const (
	PriceRangeUnder1 = "~1억"
	PriceRange1To3   = "1~3억"
	PriceRange3To5   = "3~5억"
	PriceRange5To10  = "5~10억"
	PriceRangeOver10 = "10억~"
)

// Area brackets, pyeong. Same boundary convention as the price brackets.
const (
	AreaRangeUnder500   = "~500"
	AreaRange500To1000  = "500~1000"
	AreaRange1000To2000 = "1000~2000"
	AreaRangeOver2000   = "2000~"
)

func unconstrained(v string) bool {
	return v == "" || v == "all"
}

// FilterListings returns the subset of listings matching every set
// criterion, in input order. Non-active listings never pass: the catalog
// only shows what is currently exposed.
func FilterListings(listings []Listing, c FilterCriteria) []Listing {
	matched := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Status != ListingStatusActive {
			continue
		}
		if !matchesCriteria(&l, c) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

func matchesCriteria(l *Listing, c FilterCriteria) bool {
	if c.Keyword != "" &&
		!strings.Contains(l.Title, c.Keyword) &&
		!strings.Contains(l.Address, c.Keyword) {
		return false
	}
	if !unconstrained(c.DealType) && string(l.DealType) != c.DealType {
		return false
	}
	if !unconstrained(c.ListingType) && string(l.Type) != c.ListingType {
		return false
	}
	if !unconstrained(c.Region) && l.Region != c.Region {
		return false
	}
	if !unconstrained(c.PriceRange) && !priceInRange(l.Price, c.PriceRange) {
		return false
	}
	if !unconstrained(c.AreaRange) && !areaInRange(l.AreaPyeong(), c.AreaRange) {
		return false
	}
	return true
}

func priceInRange(price int64, bracket string) bool {
	switch bracket {
	case PriceRangeUnder1:
		return price <= 10000
	case PriceRange1To3:
		return price > 10000 && price <= 30000
	case PriceRange3To5:
		return price > 30000 && price <= 50000
	case PriceRange5To10:
		return price > 50000 && price <= 100000
	case PriceRangeOver10:
		return price > 100000
	}
	return true
}

func areaInRange(pyeong float64, bracket string) bool {
	switch bracket {
	case AreaRangeUnder500:
		return pyeong <= 500
	case AreaRange500To1000:
		return pyeong > 500 && pyeong <= 1000
	case AreaRange1000To2000:
		return pyeong > 1000 && pyeong <= 2000
	case AreaRangeOver2000:
		return pyeong > 2000
	}
	return true
}

// AdminFilterCriteria is the dashboard table filter. Unlike the public
// catalog it can select on status, and applies no visibility baseline.
type AdminFilterCriteria struct {
	Keyword     string
	ListingType string
	Status      string
}

// FilterAdminListings filters the dashboard table, preserving input order.
func FilterAdminListings(listings []Listing, c AdminFilterCriteria) []Listing {
	matched := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if c.Keyword != "" &&
			!strings.Contains(l.Title, c.Keyword) &&
			!strings.Contains(l.Address, c.Keyword) {
			continue
		}
		if !unconstrained(c.ListingType) && string(l.Type) != c.ListingType {
			continue
		}
		if !unconstrained(c.Status) && string(l.Status) != c.Status {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}
