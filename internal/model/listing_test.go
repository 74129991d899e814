package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleVisibility(t *testing.T) {
	l := Listing{Status: ListingStatusActive}

	assert.NoError(t, l.ToggleVisibility())
	assert.Equal(t, ListingStatusHidden, l.Status)

	assert.NoError(t, l.ToggleVisibility())
	assert.Equal(t, ListingStatusActive, l.Status)
}

func TestToggleVisibilityRejectsSold(t *testing.T) {
	l := Listing{Status: ListingStatusSold}

	err := l.ToggleVisibility()

	assert.ErrorIs(t, err, ErrSoldListing)
	assert.Equal(t, ListingStatusSold, l.Status)
}

func TestMarkSold(t *testing.T) {
	for _, from := range []ListingStatus{ListingStatusActive, ListingStatusHidden, ListingStatusSold} {
		l := Listing{Status: from}
		l.MarkSold()
		assert.Equal(t, ListingStatusSold, l.Status)
	}
}

func TestRestore(t *testing.T) {
	l := Listing{Status: ListingStatusSold}
	assert.NoError(t, l.Restore())
	assert.Equal(t, ListingStatusActive, l.Status)

	l = Listing{Status: ListingStatusHidden}
	assert.ErrorIs(t, l.Restore(), ErrNotSold)
	assert.Equal(t, ListingStatusHidden, l.Status)
}

func TestPubliclyVisible(t *testing.T) {
	assert.True(t, (&Listing{Status: ListingStatusActive}).PubliclyVisible())
	assert.False(t, (&Listing{Status: ListingStatusHidden}).PubliclyVisible())
	assert.False(t, (&Listing{Status: ListingStatusSold}).PubliclyVisible())
}

func TestListingDerivedMetrics(t *testing.T) {
	l := Listing{Price: 12340, AreaSqm: 3305.8}

	assert.Equal(t, 1000.0, l.AreaPyeong())
	assert.Equal(t, int64(12), l.PricePerPyeong())
	assert.Equal(t, "1억 2,340만", l.PriceLabel())
}

func TestPublicViewHidesPrivateFields(t *testing.T) {
	l := Listing{
		Title:      "화성시 공장",
		Address:    "화성시 팔탄면 구장리 123-4",
		Memo:       "소유자 급매 희망",
		OwnerPhone: "010-1234-5678",
		Price:      25000,
		AreaSqm:    1652.9,
	}
	l.AddressMasked = "화성시 팔탄면 구장리 ***-*"

	view := l.Public(nil)

	assert.Equal(t, "화성시 팔탄면 구장리 ***-*", view["address"])
	assert.NotContains(t, view, "full_address")
	assert.NotContains(t, view, "memo")
	assert.NotContains(t, view, "owner_phone")
}

func TestPublicViewDisclosureFallback(t *testing.T) {
	profile := &AgencyProfile{
		AgencyName:     "PX부동산중개",
		AgentName:      "김중개",
		RegistrationNo: "41590-2024-00001",
		Address:        "경기 화성시 향남읍",
		Phone:          "031-123-4567",
	}
	l := Listing{AgentName: "박소장"} // listing override wins where set

	view := l.Public(profile)
	disclosure := view["disclosure"].(map[string]string)

	assert.Equal(t, "PX부동산중개", disclosure["agency_name"])
	assert.Equal(t, "박소장", disclosure["agent_name"])
	assert.Equal(t, "031-123-4567", disclosure["agency_phone"])
}

func TestAdminViewCarriesPrivateFields(t *testing.T) {
	l := Listing{
		Address:    "화성시 팔탄면 구장리 123-4",
		Memo:       "내부 메모",
		OwnerPhone: "010-0000-0000",
	}

	view := l.AdminView(nil)

	assert.Equal(t, "화성시 팔탄면 구장리 123-4", view["full_address"])
	assert.Equal(t, "내부 메모", view["memo"])
	assert.Equal(t, "010-0000-0000", view["owner_phone"])
}
