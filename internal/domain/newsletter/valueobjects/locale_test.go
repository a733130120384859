package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocale(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
		base      string
	}{
		{
			name:     "plain language",
			input:    "en",
			expected: "en",
			base:     "en",
		},
		{
			name:     "language with region",
			input:    "de-AT",
			expected: "de-AT",
			base:     "de",
		},
		{
			name:     "lowercase region is canonicalized",
			input:    "de-at",
			expected: "de-AT",
			base:     "de",
		},
		{
			name:     "empty falls back to default",
			input:    "",
			expected: "en",
			base:     "en",
		},
		{
			name:      "garbage tag",
			input:     "not a locale",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, err := NewLocale(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, locale.String())
			assert.Equal(t, tt.base, locale.Base())
		})
	}
}

func TestLocaleZeroValue(t *testing.T) {
	var locale Locale
	assert.Equal(t, DefaultLocale, locale.String())
	assert.Equal(t, DefaultLocale, locale.Base())
}
