package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse expects an object of language codes to nested message objects.
func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, raw := range data {
		var messages map[string]any
		if err := json.Unmarshal(raw, &messages); err != nil || messages == nil {
			return nil, fmt.Errorf("%w: language %q: expected object", ErrInvalidStructure, lang)
		}
		result[lang] = messages
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return normalizeExt(ext) == "json"
}
