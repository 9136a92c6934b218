package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns the content of one translation file into messages keyed by
// language. Each file has language codes at its top level.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension, or returns nil
// when no parser handles it.
func NewParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if ext != "" && p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
