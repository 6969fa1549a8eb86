// Package i18n localizes response messages. English is the default,
// Spanish is available for sitters who prefer it.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"sitterdesk/internal/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

// Init initializes the message bundle.
func Init() error {
	bundle = i18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	languages := []string{"en-US", "es-ES"}
	for _, lang := range languages {
		if err := loadMessages(lang); err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}
	return nil
}

func loadMessages(lang string) error {
	for id, msg := range getMessages(lang) {
		bundle.AddMessages(language.MustParse(lang), &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}
	return nil
}

// GetLocalizer builds a localizer for an Accept-Language header value.
func GetLocalizer(acceptLang string) *i18n.Localizer {
	langs := parseAcceptLanguage(acceptLang)
	if len(langs) == 0 {
		langs = []string{"en-US"}
	}
	return i18n.NewLocalizer(bundle, langs...)
}

// parseAcceptLanguage takes the first language of the header, dropping
// any quality factor.
func parseAcceptLanguage(acceptLang string) []string {
	if acceptLang == "" {
		return nil
	}
	parts := strings.Split(acceptLang, ",")
	lang := strings.TrimSpace(parts[0])
	if idx := strings.Index(lang, ";"); idx > 0 {
		lang = lang[:idx]
	}
	return []string{normalizeLanguageCode(lang)}
}

func normalizeLanguageCode(lang string) string {
	switch lower := strings.ToLower(strings.TrimSpace(lang)); {
	case strings.HasPrefix(lower, "es"):
		return "es-ES"
	default:
		return "en-US"
	}
}

// T translates a message, falling back to the message ID.
func T(localizer *i18n.Localizer, msgID string, data ...map[string]any) string {
	config := &i18n.LocalizeConfig{MessageID: msgID}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}
	msg, err := localizer.Localize(config)
	if err != nil {
		return msgID
	}
	return msg
}

func getMessages(lang string) map[string]string {
	switch lang {
	case "es-ES":
		return locales.MessagesEsES
	default:
		return locales.MessagesEnUS
	}
}
