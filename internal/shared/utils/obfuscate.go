package utils

import (
	"encoding/base64"
	"fmt"
)

// ObfuscateEmail encodes an email address for embedding in an activation
// URL path segment. This is reversible encoding, not encryption; the
// activation token is what actually protects the endpoint.
func ObfuscateEmail(email string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(email))
}

// DeobfuscateEmail reverses ObfuscateEmail.
func DeobfuscateEmail(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("malformed email segment: %w", err)
	}
	return string(raw), nil
}
