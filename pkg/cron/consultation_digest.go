// pkg/cron/consultation_digest.go
package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"pxtown_backend/internal/model"
	"pxtown_backend/pkg/database"
	"pxtown_backend/pkg/notify"
)

// InitConsultationDigestCron reminds the admin chat about unanswered
// inquiries every morning at 09:00.
func InitConsultationDigestCron() {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", sendConsultationDigest)
	if err != nil {
		log.Printf("Could not initialize consultation digest cron: %v", err)
		return
	}

	c.Start()
}

func sendConsultationDigest() {
	if notify.GlobalNotifier == nil {
		return
	}

	var pending int64
	err := database.GetDB().Model(&model.Consultation{}).
		Where("status = ?", model.ConsultationPending).
		Count(&pending).Error
	if err != nil {
		log.Printf("Error counting pending consultations: %v", err)
		return
	}

	if pending == 0 {
		return
	}

	if err := notify.GlobalNotifier.SendPendingDigest(pending); err != nil {
		log.Printf("Error sending consultation digest: %v", err)
	}
}
