package pappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

func TestNormaliseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DUPONT", "Dupont"},
		{"jean-pierre", "Jean Pierre"},
		{"  marie   claire ", "Marie Claire"},
		{"", ""},
		{"-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormaliseName(tt.in))
		})
	}
}

func TestNormaliseDateMonth(t *testing.T) {
	assert.Equal(t, "1970-5", NormaliseDateMonth("1970-05"))
	assert.Equal(t, "1970-11", NormaliseDateMonth("1970-11"))
	assert.Equal(t, "1970-10", NormaliseDateMonth("1970-10"))
	assert.Equal(t, "1970-5", NormaliseDateMonth(NormaliseDateMonth("1970-05")))
}

func TestNormaliseID(t *testing.T) {
	assert.Equal(t, "443061841", NormaliseID("443 061 841"))
	assert.Equal(t, "443061841", NormaliseID("443.061.841"))
	assert.Equal(t, "SC123", NormaliseID("SC123"))
}

func TestReorderDate(t *testing.T) {
	got, err := ReorderDate("f", "05/1970", "/", 2)
	require.NoError(t, err)
	assert.Equal(t, "1970-05", got)

	got, err = ReorderDate("f", "12/05/1970", "/", 3)
	require.NoError(t, err)
	assert.Equal(t, "1970-05-12", got)

	_, err = ReorderDate("f", "1970", "/", 2)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))

	_, err = ReorderDate("f", "mai/1970", "/", 2)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "1970-05", MonthOf("1970-05-12"))
	assert.Equal(t, "1970", MonthOf("1970"))
}

func TestCountryCodeRewrites(t *testing.T) {
	assert.Equal(t, "GB", CanonicalCountryCode("uk"))
	assert.Equal(t, "FR", CanonicalCountryCode(" fr "))
	assert.Equal(t, "UK", RegistryCountryCode("GB"))
	assert.Equal(t, "CH", RegistryCountryCode("ch"))
}
