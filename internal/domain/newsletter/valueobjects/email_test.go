package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
	}{
		{
			name:     "valid email",
			input:    "reader@example.com",
			expected: "reader@example.com",
		},
		{
			name:     "uppercase is normalized",
			input:    "Reader@Example.COM",
			expected: "reader@example.com",
		},
		{
			name:     "surrounding spaces are trimmed",
			input:    " reader@example.com ",
			expected: "reader@example.com",
		},
		{
			name:     "subdomain",
			input:    "user@mail.example.com",
			expected: "user@mail.example.com",
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
		{
			name:      "missing at sign",
			input:     "readerexample.com",
			wantError: true,
		},
		{
			name:      "missing domain",
			input:     "reader@",
			wantError: true,
		},
		{
			name:      "missing local part",
			input:     "@example.com",
			wantError: true,
		},
		{
			name:      "missing tld",
			input:     "reader@example",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, email)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, email.String())
		})
	}
}

func TestEmailEquals(t *testing.T) {
	a, err := NewEmail("reader@example.com")
	require.NoError(t, err)
	b, err := NewEmail("READER@example.com")
	require.NoError(t, err)
	c, err := NewEmail("other@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestEmailDomain(t *testing.T) {
	email, err := NewEmail("reader@mail.example.com")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", email.Domain())
}
