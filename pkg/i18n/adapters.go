package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads translation tables keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is resolved from the
// file extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, a.parser, a.path, content)
}

// FSAdapter loads every file in dir of fsys that the parser supports.
// Tables for the same language are deep-merged; later files win on conflicts.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an adapter over any fs.FS, such as an embed.FS.
// Use "." for the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter loads every supported file in a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	return NewFSAdapter(parser, os.DirFS(filepath.Clean(dir)), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if a.fsys == nil {
		return nil, errors.Join(ErrFailedToReadDir, errors.New("nil filesystem"))
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
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

		tables, err := parseFile(ctx, a.parser, name, content)
		if err != nil {
			return nil, err
		}
		merge(all, tables)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

func parseFile(ctx context.Context, p Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTranslationFile, name)
	}
	tables, err := p.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return tables, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, table := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(table))
		}
		mergeTable(dst[lang], table)
	}
}

func mergeTable(dst, src map[string]any) {
	for key, val := range src {
		if srcMap, ok := normalizeMap(val); ok {
			if dstMap, ok := normalizeMap(dst[key]); ok {
				mergeTable(dstMap, srcMap)
				dst[key] = dstMap
				continue
			}
		}
		dst[key] = val
	}
}
