package main

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/strvalid/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// newTranslator loads the embedded locales. English carries every key and is
// the default language.
func newTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
