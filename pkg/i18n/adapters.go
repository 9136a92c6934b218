package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads messages keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in one directory of a filesystem, typically an
// embed.FS. Files whose extension the parser does not handle are skipped.
// Messages from later files (in name order) override earlier ones per key.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil when parser or fsys is nil. An empty dir means the
// root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseFile, name), err)
		}

		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			maps.Copy(all[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}
