package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Translator looks up messages by language and dot-separated key. It is
// immutable after NewTranslator and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads every language from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoMessages, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// DefaultLanguage returns the language used when a requested one cannot be matched.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Lang resolves a requested language tag or Accept-Language style list to one
// of the supported languages, falling back to the default language.
func (t *Translator) Lang(requested string) string {
	return MatchLanguage(requested, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation reports whether key resolves to a message in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	s, ok := t.lookup(lang, key)
	return ok && s != ""
}

// lookup walks nested maps along the dot-separated key and returns the
// message when the final value is a string.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = asMap(val); !ok {
			return "", false
		}
	}
	return "", false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. args are name, value pairs; an odd
// trailing argument is ignored and unknown placeholders are left as they are.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs:
//
//	// validation.min_length: "%{field} must be at least %{min} characters long"
//	tr.T("en", "validation.min_length", "field", "password", "min", "8")
//
// When lang has no such message, the default language is tried. When that
// fails too, T returns the key itself, or "" with WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is like T but returns defaultValue, with placeholders substituted, when
// no message is found.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(defaultValue, args)
}

// Tv is like Td with placeholder values taken from a map, formatted with
// fmt.Sprint. It fits the translation values carried by validation errors.
func (t *Translator) Tv(lang, key, defaultValue string, values map[string]any) string {
	args := make([]string, 0, len(values)*2)
	for _, name := range slices.Sorted(maps.Keys(values)) {
		args = append(args, name, fmt.Sprint(values[name]))
	}
	return t.Td(lang, key, defaultValue, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if s, ok := t.lookup(lang, key); ok {
		return s, true
	}
	if lang != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return s, true
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}
