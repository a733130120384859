package email

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"inkletter/internal/shared/utils"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for the activation link
}

// SMTPMailer composes the confirmation email and hands it off to the
// SMTP transport. Delivery is not guaranteed or retried here; a failed
// handoff surfaces as an error to the caller, whose record is already
// persisted and resendable.
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
	render *renderer
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		render: newRenderer(),
	}
}

// SendConfirmationEmail sends the double opt-in email carrying the
// manual confirmation code and the clickable activation link.
func (s *SMTPMailer) SendConfirmationEmail(to, locale, code, activationToken string) error {
	subject, plainBody, htmlBody, err := s.composeConfirmation(to, locale, code, activationToken)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *SMTPMailer) composeConfirmation(to, locale, code, activationToken string) (subject, plain, html string, err error) {
	tpl := templateForLocale(locale)

	bodyTemplate, err := template.New("confirmation").Parse(tpl.Body)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	err = bodyTemplate.Execute(&body, map[string]string{
		"Code":          code,
		"ActivationURL": s.ActivationURL(to, activationToken),
	})
	if err != nil {
		return "", "", "", fmt.Errorf("failed to render email template: %w", err)
	}

	html, err = s.render.ToHTML(body.String())
	if err != nil {
		return "", "", "", err
	}

	return tpl.Subject, body.String(), html, nil
}

// ActivationURL builds the two-segment activation link for a recipient.
func (s *SMTPMailer) ActivationURL(to, activationToken string) string {
	return fmt.Sprintf("%s/newsletter/activate/%s/%s",
		s.config.BaseURL, utils.ObfuscateEmail(to), activationToken)
}
