package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleListings() []Listing {
	return []Listing{
		{
			Title:    "화성시 팔탄면 공장",
			Type:     ListingTypeFactory,
			DealType: DealTypeSale,
			Status:   ListingStatusActive,
			Price:    25000,
			AreaSqm:  1652.9, // 500.0평
			Address:  "화성시 팔탄면 구장리 123-4",
			Region:   "경기",
		},
		{
			Title:    "파주시 창고 임대",
			Type:     ListingTypeWarehouse,
			DealType: DealTypeLease,
			Status:   ListingStatusActive,
			Price:    8000,
			AreaSqm:  3305.8, // 1000.0평
			Address:  "파주시 문산읍 당동리 55",
			Region:   "경기",
		},
		{
			Title:    "김포시 토지",
			Type:     ListingTypeLand,
			DealType: DealTypeSale,
			Status:   ListingStatusHidden,
			Price:    120000,
			AreaSqm:  9917.4,
			Address:  "김포시 통진읍 서암리 7-1",
			Region:   "경기",
		},
		{
			Title:    "인천 서구 공장",
			Type:     ListingTypeFactory,
			DealType: DealTypeSale,
			Status:   ListingStatusSold,
			Price:    45000,
			AreaSqm:  2644.6,
			Address:  "인천 서구 오류동 88-2",
			Region:   "인천",
		},
	}
}

func TestFilterListingsBaselineExcludesNonActive(t *testing.T) {
	out := FilterListings(sampleListings(), FilterCriteria{})

	assert.Len(t, out, 2)
	assert.Equal(t, "화성시 팔탄면 공장", out[0].Title)
	assert.Equal(t, "파주시 창고 임대", out[1].Title)
}

func TestFilterListingsActiveAndHiddenPair(t *testing.T) {
	listings := []Listing{
		{Title: "노출 매물", Status: ListingStatusActive},
		{Title: "숨김 매물", Status: ListingStatusHidden},
	}

	out := FilterListings(listings, FilterCriteria{})

	assert.Len(t, out, 1)
	assert.Equal(t, "노출 매물", out[0].Title)
}

func TestFilterListingsKeyword(t *testing.T) {
	listings := sampleListings()

	// matches title
	out := FilterListings(listings, FilterCriteria{Keyword: "창고"})
	assert.Len(t, out, 1)
	assert.Equal(t, "파주시 창고 임대", out[0].Title)

	// matches address even when the title does not
	out = FilterListings(listings, FilterCriteria{Keyword: "구장리"})
	assert.Len(t, out, 1)
	assert.Equal(t, "화성시 팔탄면 공장", out[0].Title)

	// keyword matching is exact substring, no normalization
	out = FilterListings(listings, FilterCriteria{Keyword: "없는말"})
	assert.Empty(t, out)
}

func TestFilterListingsExactCriteria(t *testing.T) {
	listings := sampleListings()

	out := FilterListings(listings, FilterCriteria{DealType: string(DealTypeLease)})
	assert.Len(t, out, 1)

	out = FilterListings(listings, FilterCriteria{ListingType: string(ListingTypeFactory)})
	assert.Len(t, out, 1)
	assert.Equal(t, "화성시 팔탄면 공장", out[0].Title)

	out = FilterListings(listings, FilterCriteria{Region: "인천"})
	assert.Empty(t, out) // the only 인천 listing is sold

	out = FilterListings(listings, FilterCriteria{DealType: "all", ListingType: "all", Region: "all"})
	assert.Len(t, out, 2)
}

func TestPriceBracketBoundaries(t *testing.T) {
	cases := []struct {
		price   int64
		bracket string
		want    bool
	}{
		{10000, PriceRangeUnder1, true},
		{10001, PriceRangeUnder1, false},
		{10000, PriceRange1To3, false}, // lower bound exclusive
		{10001, PriceRange1To3, true},
		{30000, PriceRange1To3, true}, // upper bound inclusive
		{30000, PriceRange3To5, false},
		{50000, PriceRange3To5, true},
		{100000, PriceRange5To10, true},
		{100000, PriceRangeOver10, false},
		{100001, PriceRangeOver10, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, priceInRange(tc.price, tc.bracket),
			"price=%d bracket=%s", tc.price, tc.bracket)
	}
}

func TestAreaBracketBoundaries(t *testing.T) {
	assert.True(t, areaInRange(500, AreaRangeUnder500))
	assert.False(t, areaInRange(500.1, AreaRangeUnder500))
	assert.False(t, areaInRange(500, AreaRange500To1000))
	assert.True(t, areaInRange(1000, AreaRange500To1000))
	assert.True(t, areaInRange(2000, AreaRange1000To2000))
	assert.False(t, areaInRange(2000, AreaRangeOver2000))
	assert.True(t, areaInRange(2000.1, AreaRangeOver2000))
}

func TestFilterListingsAreaBracket(t *testing.T) {
	// 500.0평 sits in the lower bracket; only the 1000.0평 warehouse matches
	out := FilterListings(sampleListings(), FilterCriteria{AreaRange: AreaRange500To1000})
	assert.Len(t, out, 1)
	assert.Equal(t, "파주시 창고 임대", out[0].Title)

	out = FilterListings(sampleListings(), FilterCriteria{AreaRange: AreaRangeUnder500})
	assert.Len(t, out, 1)
	assert.Equal(t, "화성시 팔탄면 공장", out[0].Title)
}

func TestFilterListingsPreservesOrder(t *testing.T) {
	listings := []Listing{
		{Title: "c", Status: ListingStatusActive},
		{Title: "a", Status: ListingStatusActive},
		{Title: "b", Status: ListingStatusActive},
	}

	out := FilterListings(listings, FilterCriteria{})

	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].Title, out[1].Title, out[2].Title})
}

func TestFilterAdminListings(t *testing.T) {
	listings := sampleListings()

	out := FilterAdminListings(listings, AdminFilterCriteria{})
	assert.Len(t, out, 4) // no visibility baseline on the dashboard

	out = FilterAdminListings(listings, AdminFilterCriteria{Status: string(ListingStatusSold)})
	assert.Len(t, out, 1)
	assert.Equal(t, "인천 서구 공장", out[0].Title)

	out = FilterAdminListings(listings, AdminFilterCriteria{Keyword: "김포"})
	assert.Len(t, out, 1)
}
