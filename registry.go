package intl

import (
	"log"
	"sort"
	"sync"
)

// MissingText is the literal rendered whenever a lookup cannot be resolved
// in either the current or the fallback language. Callers always receive a
// renderable string; the miss itself is reported through the diagnostic
// channel (Resolve's boolean and the MissingHandler).
const MissingText = "Error missing text"

// Config holds the initial Registry settings.
type Config struct {
	// Initial current language, e.g. "en". Defaults to "en".
	DefaultLang string

	// Initial fallback language. Defaults to DefaultLang.
	FallbackLang string

	// MissingHandler, when set, is called once per lookup that resolved in
	// neither language. Useful for logging missing translations during
	// development.
	MissingHandler func(lang, file, key string)

	// Warn receives loader diagnostics (parse failures, incomplete
	// languages, suspicious locale names). Defaults to log.Printf.
	// Warnings never halt loading or resolution.
	Warn func(format string, args ...any)
}

// Registry owns every loaded Catalog, keyed by (language, file), together
// with the current/fallback language selection. It is the single entry
// point call sites use to obtain a Translation handle.
//
// Catalogs are immutable; the mutex only guards the language state and the
// catalog index, so SetLang may race freely with concurrent lookups.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[catalogKey]*Catalog
	current  string
	fallback string

	missing func(lang, file, key string)
	warn    func(format string, args ...any)
}

type catalogKey struct {
	lang string
	file string
}

// New creates a Registry. Languages may be switched at any time afterwards;
// a language without loaded catalogs simply degrades to the fallback path.
func New(cfg Config) *Registry {
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	if cfg.FallbackLang == "" {
		cfg.FallbackLang = cfg.DefaultLang
	}
	if cfg.Warn == nil {
		cfg.Warn = log.Printf
	}
	return &Registry{
		catalogs: make(map[catalogKey]*Catalog),
		current:  cfg.DefaultLang,
		fallback: cfg.FallbackLang,
		missing:  cfg.MissingHandler,
		warn:     cfg.Warn,
	}
}

// AddCatalog registers a catalog under its (language, file) pair,
// replacing any previous one. Usually called by LoadDir.
func (r *Registry) AddCatalog(c *Catalog) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs[catalogKey{lang: c.Lang(), file: c.File()}] = c
}

// SetLang switches the current language. The code is not validated against
// the loaded catalogs: resolution degrades gracefully when nothing is
// loaded for it.
func (r *Registry) SetLang(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = code
}

// SetFallbackLang switches the fallback language. Like SetLang, the code is
// accepted unconditionally.
func (r *Registry) SetFallbackLang(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = code
}

// Lang returns the current language code.
func (r *Registry) Lang() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// FallbackLang returns the fallback language code.
func (r *Registry) FallbackLang() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Languages returns every language that has at least one loaded catalog,
// in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for key := range r.catalogs {
		seen[key.lang] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Translation returns a handle scoped to the catalogs for file in the
// current and fallback languages. Either slot may be nil when that
// (language, file) pair was never loaded. The handle is a snapshot:
// it is cheap, not stored, and recomputed on every call so it always
// reflects the latest language selection.
func (r *Registry) Translation(file string) *Translation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Translation{
		lang:         r.current,
		fallbackLang: r.fallback,
		file:         file,
		primary:      r.catalogs[catalogKey{lang: r.current, file: file}],
		fallback:     r.catalogs[catalogKey{lang: r.fallback, file: file}],
		missing:      r.missing,
	}
}
