package valueobjects

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a registration arrives without a locale.
const DefaultLocale = "en"

// Locale is the language tag captured at registration time. It is
// immutable once set on a subscription and drives the language of the
// confirmation email.
type Locale struct {
	tag language.Tag
}

// NewLocale parses and canonicalizes a BCP 47 language tag.
func NewLocale(value string) (Locale, error) {
	if value == "" {
		value = DefaultLocale
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", value, err)
	}

	return Locale{tag: tag}, nil
}

// MustLocale is a convenience for constants and tests.
func MustLocale(value string) Locale {
	l, err := NewLocale(value)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the canonical tag, e.g. "en" or "de-AT".
func (l Locale) String() string {
	if l.tag == (language.Tag{}) {
		return DefaultLocale
	}
	return l.tag.String()
}

// Base returns the base language, e.g. "de" for "de-AT". Email templates
// are keyed by base language.
func (l Locale) Base() string {
	if l.tag == (language.Tag{}) {
		return DefaultLocale
	}
	base, _ := l.tag.Base()
	return base.String()
}
