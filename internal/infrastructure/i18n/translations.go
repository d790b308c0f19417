package i18n

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"h37bot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator renders command replies from the embedded message files.
// Localizers are built once per requested locale.
type Translator struct {
	bundle   *i18n.Bundle
	fallback string

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
	missing    map[string]struct{}
}

// NewTranslator loads every active.<lang>.toml file. An unparsable default
// locale falls back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Warn().Str("locale", defaultLocale).Msg("⚠️ i18n: unknown default locale, using English")
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Error().Err(err).Str("file", file).Msg("❌ i18n: failed to load messages")
		}
	}
	log.Debug().Int("languages", len(bundle.LanguageTags())).Msg("i18n: bundle loaded")

	return &Translator{
		bundle:     bundle,
		fallback:   tag.String(),
		localizers: map[string]*i18n.Localizer{},
		missing:    map[string]struct{}{},
	}
}

// T renders key for locale (Discord sends tags such as "en-US" or "fr").
// Unknown locales use the default language; unknown keys render as the key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.reportMissing(locale, key, err)
		return key
	}
	return msg
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.localizers[locale]; ok {
		return l
	}
	l := i18n.NewLocalizer(t.bundle, locale, t.fallback)
	t.localizers[locale] = l
	return l
}

// reportMissing logs each unresolved locale/key pair once.
func (t *Translator) reportMissing(locale, key string, err error) {
	t.mu.Lock()
	id := locale + "|" + key
	_, seen := t.missing[id]
	t.missing[id] = struct{}{}
	t.mu.Unlock()

	if !seen {
		log.Warn().Err(err).Str("key", key).Str("locale", locale).Msg("⚠️ i18n: message not found")
	}
}
