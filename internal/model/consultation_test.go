package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConsultationInput(t *testing.T) {
	assert.NoError(t, ValidateConsultationInput("홍길동", "010-1234-5678"))
	assert.ErrorIs(t, ValidateConsultationInput("", "010-1234-5678"), ErrBlankName)
	assert.ErrorIs(t, ValidateConsultationInput("   ", "010-1234-5678"), ErrBlankName)
	assert.ErrorIs(t, ValidateConsultationInput("홍길동", ""), ErrBlankPhone)
	assert.ErrorIs(t, ValidateConsultationInput("홍길동", "  "), ErrBlankPhone)
}

func TestToggleStatusIsInvolution(t *testing.T) {
	c := Consultation{Status: ConsultationPending}

	c.ToggleStatus()
	assert.Equal(t, ConsultationCompleted, c.Status)

	c.ToggleStatus()
	assert.Equal(t, ConsultationPending, c.Status)
}

func TestCountPending(t *testing.T) {
	consultations := []Consultation{
		{Status: ConsultationPending},
		{Status: ConsultationCompleted},
		{Status: ConsultationPending},
	}

	assert.Equal(t, 2, CountPending(consultations))
	assert.Equal(t, 0, CountPending(nil))
}
