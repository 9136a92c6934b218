package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse expects a mapping of language codes to nested message mappings.
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages in YAML content", ErrInvalidStructure)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := asMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = messages
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	switch normalizeExt(ext) {
	case "yaml", "yml":
		return true
	default:
		return false
	}
}
