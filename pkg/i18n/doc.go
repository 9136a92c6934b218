// Package i18n translates messages stored as nested YAML or JSON documents
// keyed by language code.
//
// A Translator is built from a TranslationAdapter. MapAdapter serves an
// in-memory map; FSAdapter reads every YAML or JSON file in a directory of an
// fs.FS, which is how locale files embedded in a binary are loaded:
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	lang := tr.Lang("de-AT")                        // "de"
//	msg := tr.T(lang, "card.checksum")
//	msg = tr.T(lang, "validation.min_length", "field", "password", "min", "8")
//
// Keys use dots to address nested maps. Placeholders have the form %{name}.
// A message missing in the requested language is looked up in the default
// language before falling back to the key.
//
// MatchLanguage uses golang.org/x/text/language matching, so regional
// variants and Accept-Language lists resolve to the closest supported code.
package i18n
