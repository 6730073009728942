package intl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LoadDir loads every catalog under root, which is laid out as one
// directory per language holding locale files in any registered format:
//
//	root/en/common.json
//	root/en/menu.yaml
//	root/fr/common.json
//
// The logical file name is the base name without extension, so the catalogs
// above are ("en","common"), ("en","menu") and ("fr","common").
//
// Per-file parse or build failures, language directories that are not
// well-formed BCP 47 tags, and files present for some languages but absent
// for others are reported once through the Warn callback and skipped; they
// never halt loading. An error is returned only when root itself cannot be
// read.
func (r *Registry) LoadDir(root string) error {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read locale root %s: %w", root, err)
	}

	// lang -> set of logical file names, for the completeness check
	loaded := make(map[string]map[string]struct{})

	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		lang := dir.Name()
		if _, err := language.Parse(lang); err != nil {
			r.warn("intl: locale %q is not a well-formed BCP 47 tag: %v", lang, err)
		}
		loaded[lang] = make(map[string]struct{})

		files, err := os.ReadDir(filepath.Join(root, lang))
		if err != nil {
			r.warn("intl: read language dir %s: %v", lang, err)
			continue
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			ext := filepath.Ext(file.Name())
			unmarshal, ok := formatFor(ext)
			if !ok {
				continue
			}
			name := strings.TrimSuffix(file.Name(), ext)
			path := filepath.Join(root, lang, file.Name())

			catalog, err := r.loadFile(lang, name, path, unmarshal)
			if err != nil {
				r.warn("intl: load %s: %v", path, err)
				continue
			}
			r.AddCatalog(catalog)
			loaded[lang][name] = struct{}{}
		}
	}

	r.warnIncomplete(loaded)
	return nil
}

// MustLoadDir is LoadDir for initialization paths where a missing locale
// root is fatal.
func (r *Registry) MustLoadDir(root string) {
	if err := r.LoadDir(root); err != nil {
		panic(err)
	}
}

func (r *Registry) loadFile(lang, name, path string, unmarshal UnmarshalFunc) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	catalog, err := BuildCatalog(lang, name, doc)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}

// warnIncomplete emits one warning per (language, file) pair that exists
// for some languages but not for others.
func (r *Registry) warnIncomplete(loaded map[string]map[string]struct{}) {
	union := make(map[string]struct{})
	for _, files := range loaded {
		for name := range files {
			union[name] = struct{}{}
		}
	}
	all := make([]string, 0, len(union))
	for name := range union {
		all = append(all, name)
	}
	sort.Strings(all)

	langs := make([]string, 0, len(loaded))
	for lang := range loaded {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		for _, name := range all {
			if _, ok := loaded[lang][name]; !ok {
				r.warn("intl: language %q is missing file %q", lang, name)
			}
		}
	}
}
