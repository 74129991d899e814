// pkg/cron/listing_stats.go
package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/notify"
)

type weeklyStats struct {
	TotalViews  int64
	UniqueViews int64
	TopTitle    string
	TopViews    int64
}

// InitListingStatsCron posts the weekly view summary to the admin chat,
// Sundays at 20:00.
func InitListingStatsCron() {
	c := cron.New()

	_, err := c.AddFunc("0 20 * * 0", sendWeeklyListingStats)
	if err != nil {
		log.Printf("Could not initialize listing stats cron: %v", err)
		return
	}

	c.Start()
}

func sendWeeklyListingStats() {
	if notify.GlobalNotifier == nil {
		return
	}

	startDate := time.Now().AddDate(0, 0, -7)

	var stats weeklyStats
	err := database.GetDB().Raw(`
        SELECT
            COUNT(lv.id) as total_views,
            COUNT(DISTINCT lv.ip) as unique_views,
            (
                SELECT l2.title
                FROM listings l2
                LEFT JOIN listing_views lv2 ON l2.id = lv2.listing_id
                WHERE lv2.viewed_at >= ?
                GROUP BY l2.id
                ORDER BY COUNT(lv2.id) DESC
                LIMIT 1
            ) as top_title,
            (
                SELECT COUNT(lv3.id)
                FROM listings l3
                LEFT JOIN listing_views lv3 ON l3.id = lv3.listing_id
                WHERE lv3.viewed_at >= ?
                GROUP BY l3.id
                ORDER BY COUNT(lv3.id) DESC
                LIMIT 1
            ) as top_views
        FROM listing_views lv
        WHERE lv.viewed_at >= ?
    `, startDate, startDate, startDate).Scan(&stats).Error

	if err != nil {
		log.Printf("Error fetching weekly listing stats: %v", err)
		return
	}

	if stats.TotalViews == 0 {
		return
	}

	err = notify.GlobalNotifier.SendListingStatsReport(
		stats.TotalViews,
		stats.UniqueViews,
		stats.TopTitle,
		stats.TopViews,
	)
	if err != nil {
		log.Printf("Error sending weekly listing stats: %v", err)
	}
}
