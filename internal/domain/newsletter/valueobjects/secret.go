package valueobjects

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const (
	// confirmationCodeBytes sizes the short code the subscriber types in
	// manually. 6 bytes = 48 bits of entropy, paired with the attempt
	// throttle on the confirm endpoint.
	confirmationCodeBytes = 6

	// activationTokenBytes sizes the long token embedded in the
	// activation link. 32 bytes = 256 bits.
	activationTokenBytes = 32
)

// GenerateConfirmationCode produces the short hex code sent in the
// confirmation email and transcribed by the subscriber.
func GenerateConfirmationCode() (string, error) {
	b := make([]byte, confirmationCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateActivationToken produces the URL-safe secret embedded in the
// clickable activation link.
func GenerateActivationToken() (string, error) {
	b := make([]byte, activationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate activation token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// SecretsEqual compares two secrets in constant time.
func SecretsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
