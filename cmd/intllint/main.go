package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lifei6671/intl/cmd/intllint/checker"
)

func main() {
	dir := flag.String("d", "./messages", "locale root (one directory per language)")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	res, err := checker.CheckLocales(*dir)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	printResult(res)

	if *failOnError && hasIssues(res) {
		os.Exit(1)
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== INTL CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)
	fmt.Println("Files:", res.Files)

	if len(res.BadLocales) > 0 {
		fmt.Println("Suspicious locale directories:")
		for _, lang := range res.BadLocales {
			fmt.Println("  -", lang)
		}
	}
	if len(res.ParseErrors) > 0 {
		fmt.Println("Parse errors:")
		for path, err := range res.ParseErrors {
			fmt.Printf("  - %s: %v\n", path, err)
		}
	}

	for _, lang := range res.Languages {
		fmt.Printf("\n--- [%s] ---\n", lang)

		if arr := res.MissingFiles[lang]; len(arr) > 0 {
			fmt.Println("Missing files:")
			for _, name := range arr {
				fmt.Println("  -", name)
			}
		} else {
			fmt.Println("Missing files: None")
		}

		if arr := res.MissingKeys[lang]; len(arr) > 0 {
			fmt.Println("Missing keys:")
			for _, key := range arr {
				fmt.Println("  -", key)
			}
		} else {
			fmt.Println("Missing keys: None")
		}

		if errs := res.EntryErrors[lang]; len(errs) > 0 {
			fmt.Println("Entry errors:")
			for ref, err := range errs {
				fmt.Printf("  - %s: %v\n", ref, err)
			}
		}
		if errs := res.SyntaxErrors[lang]; len(errs) > 0 {
			fmt.Println("Placeholder errors:")
			for ref, err := range errs {
				fmt.Printf("  - %s: %v\n", ref, err)
			}
		} else {
			fmt.Println("Placeholder errors: None")
		}
	}
}

func hasIssues(res *checker.Result) bool {
	if len(res.BadLocales) > 0 || len(res.ParseErrors) > 0 {
		return true
	}
	for _, arr := range res.MissingFiles {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, errs := range res.EntryErrors {
		if len(errs) > 0 {
			return true
		}
	}
	for _, errs := range res.SyntaxErrors {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}
