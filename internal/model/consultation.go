package model

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Consultation Status
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationCompleted ConsultationStatus = "completed"
)

var (
	ErrBlankName  = errors.New("customer name is required")
	ErrBlankPhone = errors.New("customer phone is required")
)

// Consultation is an anonymous customer inquiry against one listing.
// ListingTitle is denormalized at submission time so the inquiry stays
// readable after the listing is edited or deleted. Everything except
// Status is immutable once created.
type Consultation struct {
	gorm.Model
	ListingID     uint               `json:"listing_id" gorm:"index"`
	ListingTitle  string             `json:"listing_title"`
	CustomerName  string             `json:"customer_name" gorm:"not null"`
	CustomerPhone string             `json:"customer_phone" gorm:"not null"`
	Message       string             `json:"message" gorm:"type:text"`
	Status        ConsultationStatus `json:"status" gorm:"not null;default:'pending';index"`
}

// ValidateInput checks the required customer fields before anything is
// persisted. A failed submit must not leave a partial record behind.
func ValidateConsultationInput(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if strings.TrimSpace(phone) == "" {
		return ErrBlankPhone
	}
	return nil
}

// ToggleStatus flips pending ↔ completed. Toggling twice restores the
// original status.
func (c *Consultation) ToggleStatus() {
	if c.Status == ConsultationPending {
		c.Status = ConsultationCompleted
	} else {
		c.Status = ConsultationPending
	}
}

// CountPending returns how many consultations still await an answer,
// used for the dashboard badge.
func CountPending(consultations []Consultation) int {
	n := 0
	for _, c := range consultations {
		if c.Status == ConsultationPending {
			n++
		}
	}
	return n
}
