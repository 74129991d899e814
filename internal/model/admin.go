package model

import (
	"gorm.io/gorm"
)

// Admin is a dashboard account. The brokerage runs with a single seeded
// admin but nothing below assumes only one row exists.
type Admin struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `json:"name"`
}

func (a *Admin) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":    a.ID,
		"email": a.Email,
		"name":  a.Name,
	}
}

// AgencyProfile holds the 공인중개사법 disclosure defaults shown on every
// listing whose own disclosure fields are blank. Stored as a single row.
type AgencyProfile struct {
	gorm.Model
	AgencyName     string `json:"agency_name"`
	AgentName      string `json:"agent_name"`
	RegistrationNo string `json:"registration_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}
