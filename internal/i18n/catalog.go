// Package i18n provides the message catalogs used for outbound notification
// copy. Catalogs are static; locale selection happens once at startup and the
// English catalog backs any key missing from another locale.
package i18n

import "golang.org/x/text/language"

// supported lists the locales with a message catalog, most preferred first.
// The first entry is the fallback for unrecognized locales.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"welcome.user.subject":             "Welcome to Impactboard",
		"welcome.brand.subject":            "Your brand is live on Impactboard",
		"sponsorship.notification.subject": "New sponsorship request",
		"sponsorship.approval.subject":     "Your sponsorship was approved",
		"achievement.subject":              "Achievement unlocked",
		"monthly_report.subject":           "Your monthly impact report",
		"footer.reason":                    "You are receiving this because you have an Impactboard account.",
	},
	language.Spanish: {
		"welcome.user.subject":             "Bienvenido a Impactboard",
		"welcome.brand.subject":            "Tu marca ya está activa en Impactboard",
		"sponsorship.notification.subject": "Nueva solicitud de patrocinio",
		"sponsorship.approval.subject":     "Tu patrocinio fue aprobado",
		"achievement.subject":              "Logro desbloqueado",
		"monthly_report.subject":           "Tu informe mensual de impacto",
		"footer.reason":                    "Recibes este mensaje porque tienes una cuenta de Impactboard.",
	},
	language.BrazilianPortuguese: {
		"welcome.user.subject":             "Bem-vindo ao Impactboard",
		"welcome.brand.subject":            "Sua marca está no ar no Impactboard",
		"sponsorship.notification.subject": "Nova solicitação de patrocínio",
		"sponsorship.approval.subject":     "Seu patrocínio foi aprovado",
		"achievement.subject":              "Conquista desbloqueada",
		"monthly_report.subject":           "Seu relatório mensal de impacto",
		"footer.reason":                    "Você está recebendo isto porque tem uma conta no Impactboard.",
	},
}

// Messages is a read-only view over one locale's catalog. Safe for
// concurrent use.
type Messages struct {
	tag  language.Tag
	msgs map[string]string
}

// Match resolves a BCP 47 locale string (e.g. "es", "pt-BR", "en-US") to the
// closest supported locale. Empty or unparseable input matches English.
func Match(locale string) language.Tag {
	if locale == "" {
		return supported[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Load returns the Messages for the given locale string.
func Load(locale string) *Messages {
	tag := Match(locale)
	return &Messages{tag: tag, msgs: catalogs[tag]}
}

// Tag returns the resolved locale tag.
func (m *Messages) Tag() language.Tag { return m.tag }

// Get returns the message for key, falling back to the English catalog when
// the key is missing from this locale. Unknown keys return the empty string.
func (m *Messages) Get(key string) string {
	if v, ok := m.msgs[key]; ok {
		return v
	}
	return catalogs[supported[0]][key]
}
