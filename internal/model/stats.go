package model

import (
	"time"

	"gorm.io/gorm"
)

// ListingView is one recorded catalog-detail view.
type ListingView struct {
	gorm.Model
	ListingID uint      `json:"listing_id" gorm:"index"`
	IP        string    `json:"ip" gorm:"index"`
	SessionID string    `json:"session_id" gorm:"index"`
	UserAgent string    `json:"user_agent"`
	ViewedAt  time.Time `json:"viewed_at" gorm:"index"`
	IsUnique  bool      `json:"is_unique" gorm:"default:true"`

	Listing Listing `json:"-" gorm:"foreignKey:ListingID"`
}

// ListingStats aggregates views per listing.
type ListingStats struct {
	gorm.Model
	ListingID   uint      `json:"listing_id" gorm:"uniqueIndex"`
	TotalViews  int64     `json:"total_views"`
	UniqueViews int64     `json:"unique_views"`
	LastUpdated time.Time `json:"last_updated"`

	Listing Listing `json:"-" gorm:"foreignKey:ListingID"`
}

// BeforeCreate flags repeat views: the same IP within 24 hours does not
// count as unique.
func (v *ListingView) BeforeCreate(tx *gorm.DB) error {
	var count int64
	tx.Model(&ListingView{}).
		Where("listing_id = ? AND ip = ? AND viewed_at > ?",
			v.ListingID,
			v.IP,
			time.Now().Add(-24*time.Hour)).
		Count(&count)

	if count > 0 {
		v.IsUnique = false
	}
	return nil
}

// AfterCreate rolls the view into the per-listing aggregate.
func (v *ListingView) AfterCreate(tx *gorm.DB) error {
	var stats ListingStats
	tx.FirstOrCreate(&stats, ListingStats{ListingID: v.ListingID})

	updates := map[string]interface{}{
		"total_views":  gorm.Expr("total_views + ?", 1),
		"last_updated": time.Now(),
	}
	if v.IsUnique {
		updates["unique_views"] = gorm.Expr("unique_views + ?", 1)
	}

	return tx.Model(&stats).Updates(updates).Error
}
