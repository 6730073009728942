package intl

import (
	"slices"
	"testing"
)

func TestRegistry_New(t *testing.T) {
	t.Run("New_Defaults", func(t *testing.T) {
		r := New(Config{})
		if r.Lang() != "en" {
			t.Fatalf("Lang: %q", r.Lang())
		}
		if r.FallbackLang() != "en" {
			t.Fatalf("FallbackLang: %q", r.FallbackLang())
		}
	})

	t.Run("New_FallbackDefaultsToCurrent", func(t *testing.T) {
		r := New(Config{DefaultLang: "fr"})
		if r.FallbackLang() != "fr" {
			t.Fatalf("FallbackLang: %q", r.FallbackLang())
		}
	})
}

func TestRegistry_SetLang(t *testing.T) {
	t.Run("SetLang_Unconditional", func(t *testing.T) {
		r := New(Config{})
		// No catalogs for "xx" exist; the switch still happens and
		// resolution degrades later instead.
		r.SetLang("xx")
		if r.Lang() != "xx" {
			t.Fatalf("Lang: %q", r.Lang())
		}
		r.SetFallbackLang("yy")
		if r.FallbackLang() != "yy" {
			t.Fatalf("FallbackLang: %q", r.FallbackLang())
		}
	})
}

func TestRegistry_Translation(t *testing.T) {
	t.Run("Translation_ReflectsLanguageSwitch", func(t *testing.T) {
		r := newTestRegistry(t, nil)

		if got := r.Translation("common").T("greeting"); got != "Hello" {
			t.Fatalf("en: %q", got)
		}
		r.SetLang("fr")
		if got := r.Translation("common").T("greeting"); got != "Bonjour" {
			t.Fatalf("fr: %q", got)
		}
	})

	t.Run("Translation_HandleIsSnapshot", func(t *testing.T) {
		r := newTestRegistry(t, nil)
		before := r.Translation("common")
		r.SetLang("fr")
		// The old handle keeps its catalogs; only new handles see the switch.
		if got := before.T("greeting"); got != "Hello" {
			t.Fatalf("old handle: %q", got)
		}
	})

	t.Run("Translation_UnknownFile", func(t *testing.T) {
		r := newTestRegistry(t, nil)
		if got := r.Translation("nope").T("greeting"); got != MissingText {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRegistry_Languages(t *testing.T) {
	r := newTestRegistry(t, nil)
	langs := r.Languages()
	if !slices.Equal(langs, []string{"en", "fr"}) {
		t.Fatalf("Languages: %v", langs)
	}
}
