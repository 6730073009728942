package checker

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, root, lang, name, content string) {
	t.Helper()
	dir := filepath.Join(root, lang)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckLocales(t *testing.T) {
	t.Run("CheckLocales_Clean", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "en", "app.json", `{"greeting": "Hello", "bye": "Bye {{name}}"}`)
		writeFile(t, root, "fr", "app.json", `{"greeting": "Bonjour", "bye": "Salut {{name}}"}`)

		res, err := CheckLocales(root)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(res.Languages, []string{"en", "fr"}) {
			t.Fatalf("Languages: %v", res.Languages)
		}
		if !slices.Equal(res.Files, []string{"app"}) {
			t.Fatalf("Files: %v", res.Files)
		}
		if len(res.MissingFiles) != 0 || len(res.MissingKeys) != 0 ||
			len(res.SyntaxErrors) != 0 || len(res.EntryErrors) != 0 ||
			len(res.ParseErrors) != 0 || len(res.BadLocales) != 0 {
			t.Fatalf("unexpected findings: %+v", res)
		}
	})

	t.Run("CheckLocales_MissingKeyAndFile", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "en", "app.json", `{"greeting": "Hello", "bye": "Bye"}`)
		writeFile(t, root, "en", "menu.yaml", "title: Menu\n")
		writeFile(t, root, "fr", "app.json", `{"greeting": "Bonjour"}`)

		res, err := CheckLocales(root)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(res.MissingFiles["fr"], []string{"menu"}) {
			t.Fatalf("MissingFiles: %v", res.MissingFiles)
		}
		if !slices.Equal(res.MissingKeys["fr"], []string{"app:bye"}) {
			t.Fatalf("MissingKeys: %v", res.MissingKeys)
		}
	})

	t.Run("CheckLocales_SyntaxAndShapeErrors", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "en", "app.json",
			`{"bad": "Hello {{first name}}", "empty": {}, "ok": "fine"}`)

		res, err := CheckLocales(root)
		if err != nil {
			t.Fatal(err)
		}
		if res.SyntaxErrors["en"]["app:bad"] == nil {
			t.Fatalf("SyntaxErrors: %v", res.SyntaxErrors)
		}
		if res.EntryErrors["en"]["app:empty"] == nil {
			t.Fatalf("EntryErrors: %v", res.EntryErrors)
		}
	})

	t.Run("CheckLocales_ParseErrorAndBadLocale", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "en!", "app.json", `{"greeting":`)

		res, err := CheckLocales(root)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(res.BadLocales, []string{"en!"}) {
			t.Fatalf("BadLocales: %v", res.BadLocales)
		}
		if len(res.ParseErrors) != 1 {
			t.Fatalf("ParseErrors: %v", res.ParseErrors)
		}
	})

	t.Run("CheckLocales_MissingRoot_Fail", func(t *testing.T) {
		if _, err := CheckLocales(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Fatal("expected error")
		}
	})
}
