package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkletter/internal/shared/utils"
)

func testMailer() *SMTPMailer {
	return NewSMTPMailer(SMTPConfig{
		Host:        "localhost",
		Port:        1025,
		FromAddress: "newsletter@blog.test",
		FromName:    "Blog",
		BaseURL:     "https://blog.test",
	})
}

func TestComposeConfirmation(t *testing.T) {
	m := testMailer()

	subject, plain, html, err := m.composeConfirmation("reader@example.com", "en", "a1b2c3d4e5f6", "tok123")
	require.NoError(t, err)

	assert.Equal(t, "Your newsletter confirmation code", subject)
	assert.Contains(t, plain, "a1b2c3d4e5f6")
	assert.Contains(t, plain, "https://blog.test/newsletter/activate/")
	assert.Contains(t, plain, "tok123")

	assert.Contains(t, html, "<strong>a1b2c3d4e5f6</strong>")
	assert.NotContains(t, html, "{{", "all placeholders are substituted")
}

func TestComposeConfirmationLocales(t *testing.T) {
	m := testMailer()

	subject, plain, _, err := m.composeConfirmation("reader@example.com", "de", "c0ffee00c0de", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Dein Bestätigungscode für den Newsletter", subject)
	assert.Contains(t, plain, "c0ffee00c0de")

	// Unknown locale falls back to English.
	subject, _, _, err = m.composeConfirmation("reader@example.com", "fr", "c0ffee00c0de", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Your newsletter confirmation code", subject)
}

func TestActivationURL(t *testing.T) {
	m := testMailer()

	url := m.ActivationURL("reader@example.com", "the-token")
	assert.Equal(t,
		"https://blog.test/newsletter/activate/"+utils.ObfuscateEmail("reader@example.com")+"/the-token",
		url)
}

func TestRendererSanitizesHTML(t *testing.T) {
	r := newRenderer()

	out, err := r.ToHTML("hello <script>alert(1)</script> **world**")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<strong>world</strong>")
}
