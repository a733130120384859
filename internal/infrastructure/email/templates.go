package email

// Confirmation email templates, authored in markdown and rendered to a
// sanitized HTML alternative at send time. Keyed by base language;
// unknown locales fall back to English.

type confirmationTemplate struct {
	Subject string
	Body    string
}

var confirmationTemplates = map[string]confirmationTemplate{
	"en": {
		Subject: "Your newsletter confirmation code",
		Body: `## Almost there!

Thanks for subscribing to the blog newsletter. Your confirmation code is:

**{{.Code}}**

Enter it on the page you just came from, or activate your subscription
directly via this link:

{{.ActivationURL}}

If you did not request this subscription, simply ignore this email.`,
	},
	"de": {
		Subject: "Dein Bestätigungscode für den Newsletter",
		Body: `## Fast geschafft!

Danke für deine Anmeldung zum Blog-Newsletter. Dein Bestätigungscode lautet:

**{{.Code}}**

Gib ihn auf der Seite ein, von der du gerade kommst, oder aktiviere dein
Abonnement direkt über diesen Link:

{{.ActivationURL}}

Falls du diese Anmeldung nicht angefordert hast, ignoriere diese E-Mail einfach.`,
	},
}

func templateForLocale(locale string) confirmationTemplate {
	if tpl, ok := confirmationTemplates[locale]; ok {
		return tpl
	}
	return confirmationTemplates["en"]
}
