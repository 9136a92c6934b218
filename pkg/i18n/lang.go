package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

// MatchLanguage picks the supported language closest to requested, which may
// be a single tag ("de-AT") or an Accept-Language style list
// ("fr-CH, de;q=0.8"). It returns fallback when requested is empty, cannot be
// parsed, or nothing in supported is a reasonable match.
func MatchLanguage(requested string, supported []string, fallback string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return fallback
	}
	return codes[idx]
}
