package model

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pxtown_backend/pkg/utils/address"
	"pxtown_backend/pkg/utils/area"
)

// Listing Types
type ListingType string

const (
	ListingTypeLand      ListingType = "토지"
	ListingTypeFactory   ListingType = "공장"
	ListingTypeWarehouse ListingType = "창고"
	ListingTypeOther     ListingType = "기타"
)

// Deal Types
type DealType string

const (
	DealTypeSale  DealType = "매매"
	DealTypeLease DealType = "임대"
)

// Listing Status
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusHidden ListingStatus = "hidden"
	ListingStatusSold   ListingStatus = "sold"
)

var (
	ErrSoldListing = errors.New("sold listings cannot be toggled; restore them first")
	ErrNotSold     = errors.New("only sold listings can be restored")
)

type Listing struct {
	gorm.Model
	Title    string        `json:"title" gorm:"not null"`
	Type     ListingType   `json:"type" gorm:"not null;index"`
	DealType DealType      `json:"deal_type" gorm:"not null;index"`
	Status   ListingStatus `json:"status" gorm:"not null;default:'active';index"`

	// Financial, denominated in man-won (units of 10,000 KRW)
	Price       int64  `json:"price" gorm:"not null"`
	MonthlyRent *int64 `json:"monthly_rent,omitempty"`

	// Physical
	AreaSqm           float64  `json:"area_sqm" gorm:"not null"`
	BuildingAreaSqm   *float64 `json:"building_area_sqm,omitempty"`
	TotalFloorAreaSqm *float64 `json:"total_floor_area_sqm,omitempty"`
	GroundFloors      *int     `json:"ground_floors,omitempty"`
	UndergroundFloors *int     `json:"underground_floors,omitempty"`
	StructureName     string   `json:"structure_name,omitempty"`
	UseApprovalDate   string   `json:"use_approval_date,omitempty"`

	// Location. Address carries the exact parcel and is admin-only;
	// AddressMasked is the customer-facing form, refreshed on every save.
	Address       string `json:"-" gorm:"not null"`
	AddressMasked string `json:"address_masked"`
	Region        string `json:"region" gorm:"index"`

	// Regulatory / descriptive
	LandCategory    string `json:"land_category"`
	Zoning          string `json:"zoning"`
	RoadFrontage    string `json:"road_frontage,omitempty"`
	Shape           string `json:"shape,omitempty"`
	Terrain         string `json:"terrain,omitempty"`
	IllegalBuilding bool   `json:"illegal_building"`
	Description     string `json:"description" gorm:"type:text"`
	BlogPost        string `json:"blog_post,omitempty" gorm:"type:text"`
	VideoURL        string `json:"video_url,omitempty"`

	// Raw building-ledger payload from the last registry lookup
	LedgerRaw datatypes.JSON `json:"-"`

	// Admin-private, never serialized on public paths
	Memo       string `json:"-" gorm:"type:text"`
	OwnerPhone string `json:"-"`

	// 공인중개사법 disclosure fields; blank values fall back to the
	// agency profile at render time
	AgencyName     string `json:"agency_name,omitempty"`
	AgentName      string `json:"agent_name,omitempty"`
	RegistrationNo string `json:"registration_no,omitempty"`
	AgencyAddress  string `json:"agency_address,omitempty"`
	AgencyPhone    string `json:"agency_phone,omitempty"`

	Images []ListingImage `json:"images" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

type ListingImage struct {
	gorm.Model
	ListingID uint   `json:"listing_id"`
	URL       string `json:"url" gorm:"not null"`
	IsCover   bool   `json:"is_cover" gorm:"default:false"`
	Order     int    `json:"order" gorm:"default:0"`

	Listing Listing `json:"-" gorm:"foreignKey:ListingID"`
}

// BeforeSave keeps the masked address in sync with the full address.
func (l *Listing) BeforeSave(tx *gorm.DB) error {
	l.AddressMasked = address.Mask(l.Address)
	return nil
}

// AreaPyeong returns the land area in pyeong, rounded to one decimal.
func (l *Listing) AreaPyeong() float64 {
	return area.SqmToPyeong(l.AreaSqm)
}

// PricePerPyeong returns the listing price per pyeong in man-won.
func (l *Listing) PricePerPyeong() int64 {
	return area.PricePerPyeong(l.Price, l.AreaSqm)
}

// PriceLabel renders the price the way cards display it ("1억 2,340만").
func (l *Listing) PriceLabel() string {
	return area.FormatPrice(l.Price)
}

// PubliclyVisible reports whether the listing may appear in the catalog.
// Sold listings stay reachable on their detail page with a sold badge;
// hidden listings are not reachable at all.
func (l *Listing) PubliclyVisible() bool {
	return l.Status == ListingStatusActive
}

// ToggleVisibility flips an active listing to hidden and back. Sold
// listings are excluded: leaving the sold state requires Restore, so a
// completed deal can never be re-exposed by a stray visibility click.
func (l *Listing) ToggleVisibility() error {
	switch l.Status {
	case ListingStatusActive:
		l.Status = ListingStatusHidden
	case ListingStatusHidden:
		l.Status = ListingStatusActive
	default:
		return ErrSoldListing
	}
	return nil
}

// MarkSold moves the listing to sold from any state. Idempotent.
func (l *Listing) MarkSold() {
	l.Status = ListingStatusSold
}

// Restore reopens a sold listing as active.
func (l *Listing) Restore() error {
	if l.Status != ListingStatusSold {
		return ErrNotSold
	}
	l.Status = ListingStatusActive
	return nil
}

// Public returns the customer-facing view: masked address, derived
// metrics, disclosure fields with agency-profile fallbacks, and none of
// the admin-private columns.
func (l *Listing) Public(profile *AgencyProfile) map[string]interface{} {
	view := map[string]interface{}{
		"id":               l.ID,
		"title":            l.Title,
		"type":             l.Type,
		"deal_type":        l.DealType,
		"status":           l.Status,
		"price":            l.Price,
		"price_label":      l.PriceLabel(),
		"price_per_pyeong": l.PricePerPyeong(),
		"area_sqm":         l.AreaSqm,
		"area_pyeong":      l.AreaPyeong(),
		"address":          l.AddressMasked,
		"region":           l.Region,
		"land_category":    l.LandCategory,
		"zoning":           l.Zoning,
		"illegal_building": l.IllegalBuilding,
		"description":      l.Description,
		"images":           l.Images,
		"created_at":       l.CreatedAt,
	}
	if l.MonthlyRent != nil {
		view["monthly_rent"] = *l.MonthlyRent
		view["monthly_rent_label"] = area.FormatPrice(*l.MonthlyRent)
	}
	if l.BuildingAreaSqm != nil {
		view["building_area_sqm"] = *l.BuildingAreaSqm
	}
	if l.TotalFloorAreaSqm != nil {
		view["total_floor_area_sqm"] = *l.TotalFloorAreaSqm
	}
	if l.GroundFloors != nil {
		view["ground_floors"] = *l.GroundFloors
	}
	if l.UndergroundFloors != nil {
		view["underground_floors"] = *l.UndergroundFloors
	}
	for key, val := range map[string]string{
		"structure_name":    l.StructureName,
		"use_approval_date": l.UseApprovalDate,
		"road_frontage":     l.RoadFrontage,
		"shape":             l.Shape,
		"terrain":           l.Terrain,
		"blog_post":         l.BlogPost,
		"video_url":         l.VideoURL,
	} {
		if val != "" {
			view[key] = val
		}
	}

	disclosure := map[string]string{
		"agency_name":     l.AgencyName,
		"agent_name":      l.AgentName,
		"registration_no": l.RegistrationNo,
		"agency_address":  l.AgencyAddress,
		"agency_phone":    l.AgencyPhone,
	}
	if profile != nil {
		fallback := map[string]string{
			"agency_name":     profile.AgencyName,
			"agent_name":      profile.AgentName,
			"registration_no": profile.RegistrationNo,
			"agency_address":  profile.Address,
			"agency_phone":    profile.Phone,
		}
		for key, val := range disclosure {
			if val == "" {
				disclosure[key] = fallback[key]
			}
		}
	}
	view["disclosure"] = disclosure

	return view
}

// AdminView is the dashboard row: everything Public carries plus the
// private columns.
func (l *Listing) AdminView(profile *AgencyProfile) map[string]interface{} {
	view := l.Public(profile)
	view["full_address"] = l.Address
	view["memo"] = l.Memo
	view["owner_phone"] = l.OwnerPhone
	view["updated_at"] = l.UpdatedAt
	if len(l.LedgerRaw) > 0 {
		view["ledger_raw"] = l.LedgerRaw
	}
	return view
}
