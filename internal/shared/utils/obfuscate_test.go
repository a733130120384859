package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscateEmailRoundTrip(t *testing.T) {
	tests := []string{
		"reader@example.com",
		"first.last+tag@sub.example.org",
		"a@b.co",
	}

	for _, email := range tests {
		encoded := ObfuscateEmail(email)
		assert.NotContains(t, encoded, "@")
		assert.NotContains(t, encoded, "/")

		decoded, err := DeobfuscateEmail(encoded)
		require.NoError(t, err)
		assert.Equal(t, email, decoded)
	}
}

func TestDeobfuscateEmailRejectsGarbage(t *testing.T) {
	_, err := DeobfuscateEmail("not%%base64!!")
	assert.Error(t, err)
}
