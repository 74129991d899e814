package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken(1, "admin@pxtown.kr", "관리자")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.AdminID)
	assert.Equal(t, "admin@pxtown.kr", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
