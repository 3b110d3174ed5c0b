package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+14155551234",
		"14155551234",
		"+44 20 7946 0958",
		"(415) 555-1234",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"abc",
		"+0123456",
		"555-CALL-NOW",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(6)
	assert.Len(t, s, 6)
	for _, r := range s {
		assert.Contains(t, randomCharset, string(r))
	}

	// collisions across two draws should be vanishingly rare
	assert.NotEqual(t, GenerateRandomString(12), GenerateRandomString(12))
}
