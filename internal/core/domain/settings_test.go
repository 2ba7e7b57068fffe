package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Empty(t, s.APIToken)
	assert.Equal(t, "https://api.pappers.fr/v2", s.FRBaseURL)
	assert.Equal(t, "https://api.pappers.in/v1", s.INBaseURL)
	assert.Equal(t, 20, s.PageSize)
	assert.Equal(t, 5, s.PageLimit)
	assert.True(t, s.Backfill)
	assert.Equal(t, "FR", s.DefaultCountryCode)
	assert.False(t, s.Unlimited())
}

func TestSettings_Unlimited(t *testing.T) {
	s := DefaultSettings()
	s.PageLimit = 0
	assert.True(t, s.Unlimited())

	s.PageLimit = -1
	assert.True(t, s.Unlimited())
}

func TestSettings_MaskedToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"abc", "****"},
		{"0123456789abcdef", "****cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Settings{APIToken: tt.token}.MaskedToken())
		})
	}
}
