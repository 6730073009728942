package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lifei6671/intl"
)

// localeFile is one decoded locale file.
type localeFile struct {
	Lang string
	Name string // logical file name, extension stripped
	Path string
	Doc  map[string]any
}

// Result is the aggregated lint report for one locale root.
type Result struct {
	Languages  []string
	Files      []string // union of logical file names across languages
	BadLocales []string // directories that are not well-formed BCP 47 tags

	ParseErrors  map[string]error            // path -> decode error
	MissingFiles map[string][]string         // lang -> missing logical files
	MissingKeys  map[string][]string         // lang -> "file:key"
	EntryErrors  map[string]map[string]error // lang -> "file:key" -> shape error
	SyntaxErrors map[string]map[string]error // lang -> "file:key" -> placeholder error
}

// CheckLocales performs:
//  1. locale directory name validation
//  2. file and key alignment across languages (missing files / keys)
//  3. entry shape validation via intl.ParseEntry
//  4. placeholder syntax validation via intl.ValidatePlaceholders
func CheckLocales(dir string) (*Result, error) {
	res := &Result{
		ParseErrors:  make(map[string]error),
		MissingFiles: make(map[string][]string),
		MissingKeys:  make(map[string][]string),
		EntryErrors:  make(map[string]map[string]error),
		SyntaxErrors: make(map[string]map[string]error),
	}

	files, err := scanLocales(dir, res)
	if err != nil {
		return nil, err
	}

	byLang := make(map[string]map[string]localeFile) // lang -> name -> file
	allFiles := make(map[string]struct{})
	for _, f := range files {
		if byLang[f.Lang] == nil {
			byLang[f.Lang] = make(map[string]localeFile)
		}
		byLang[f.Lang][f.Name] = f
		allFiles[f.Name] = struct{}{}
	}

	res.Languages = sortedKeys(byLang)
	res.Files = sortedSet(allFiles)

	// file alignment
	for _, lang := range res.Languages {
		for _, name := range res.Files {
			if _, ok := byLang[lang][name]; !ok {
				res.MissingFiles[lang] = append(res.MissingFiles[lang], name)
			}
		}
	}

	// key alignment per logical file
	for _, name := range res.Files {
		keySet := make(map[string]struct{})
		for _, lang := range res.Languages {
			if f, ok := byLang[lang][name]; ok {
				for key := range f.Doc {
					keySet[key] = struct{}{}
				}
			}
		}
		for _, lang := range res.Languages {
			f, ok := byLang[lang][name]
			if !ok {
				continue // already reported as a missing file
			}
			for _, key := range sortedSet(keySet) {
				if _, ok := f.Doc[key]; !ok {
					res.MissingKeys[lang] = append(res.MissingKeys[lang], name+":"+key)
				}
			}
		}
	}

	// shape and placeholder validation
	for _, f := range files {
		for key, value := range f.Doc {
			ref := f.Name + ":" + key
			if _, err := intl.ParseEntry(value); err != nil {
				addIssue(res.EntryErrors, f.Lang, ref, err)
			}
			for _, text := range entryTexts(value) {
				if err := intl.ValidatePlaceholders(text); err != nil {
					addIssue(res.SyntaxErrors, f.Lang, ref, err)
				}
			}
		}
	}

	for _, issues := range []map[string][]string{res.MissingFiles, res.MissingKeys} {
		for lang := range issues {
			sort.Strings(issues[lang])
		}
	}
	return res, nil
}

// scanLocales walks dir as one directory per language and decodes every
// locale file it understands. Decode failures are recorded, not fatal.
func scanLocales(dir string, res *Result) ([]localeFile, error) {
	dirs, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locale root %s: %w", dir, err)
	}

	var files []localeFile
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		lang := d.Name()
		if _, err := language.Parse(lang); err != nil {
			res.BadLocales = append(res.BadLocales, lang)
		}

		entries, err := os.ReadDir(filepath.Join(dir, lang))
		if err != nil {
			return nil, fmt.Errorf("read language dir %s: %w", lang, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, lang, entry.Name())
			doc, ok, err := decodeFile(path)
			if !ok {
				continue // unknown extension
			}
			if err != nil {
				res.ParseErrors[path] = err
				continue
			}
			ext := filepath.Ext(entry.Name())
			files = append(files, localeFile{
				Lang: lang,
				Name: strings.TrimSuffix(entry.Name(), ext),
				Path: path,
				Doc:  doc,
			})
		}
	}
	sort.Strings(res.BadLocales)
	return files, nil
}

func decodeFile(path string) (map[string]any, bool, error) {
	var unmarshal func([]byte, any) error
	switch filepath.Ext(path) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, true, err
	}
	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return nil, true, err
	}
	return doc, true, nil
}

// entryTexts collects every display string carried by a raw document value.
func entryTexts(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case map[string]any:
		texts := make([]string, 0, len(v))
		for _, raw := range v {
			if text, ok := raw.(string); ok {
				texts = append(texts, text)
			}
		}
		sort.Strings(texts)
		return texts
	default:
		return nil
	}
}

func addIssue(m map[string]map[string]error, lang, ref string, err error) {
	if m[lang] == nil {
		m[lang] = make(map[string]error)
	}
	m[lang][ref] = err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
