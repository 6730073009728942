package intl

import "fmt"

// Plural categories. The bucket is selected from the raw count:
// 0 -> "none", 1 -> "one", everything else (negatives included) -> "many".
const (
	PluralNone = "none"
	PluralOne  = "one"
	PluralMany = "many"
)

// Entry is one value stored under a catalog key. It is exactly one of
// Plain, Gendered or Plural; the resolver is the single place that
// interprets the shape.
type Entry interface {
	isEntry()
}

// Plain is a bare translated string.
type Plain struct {
	Text string
}

// Gendered maps a gender tag ("male", "female", "neutral", ...) to a string.
// The tag set is open: whatever keys the source document uses.
type Gendered struct {
	Variants map[string]string
}

// Plural maps the three count categories to a string. Categories may be
// partially filled; a lookup that hits a missing category is unresolved.
type Plural struct {
	Forms map[string]string
}

func (Plain) isEntry()    {}
func (Gendered) isEntry() {}
func (Plural) isEntry()   {}

// pluralForm buckets a count into one of the three categories.
func pluralForm(count int) string {
	switch count {
	case 0:
		return PluralNone
	case 1:
		return PluralOne
	default:
		return PluralMany
	}
}

// isPluralCategory reports whether key is one of the closed category names.
func isPluralCategory(key string) bool {
	return key == PluralNone || key == PluralOne || key == PluralMany
}

// ParseEntry converts one decoded document value into an Entry.
//
// A string becomes Plain. An object becomes Plural when every key is a
// plural category, otherwise Gendered. Empty objects, non-string variant
// values and any other value type are rejected so that a bad document is
// caught when the catalog is built, not at lookup time.
func ParseEntry(value any) (Entry, error) {
	switch v := value.(type) {
	case string:
		return Plain{Text: v}, nil
	case map[string]any:
		if len(v) == 0 {
			return nil, fmt.Errorf("entry has no variants")
		}
		variants := make(map[string]string, len(v))
		plural := true
		for key, raw := range v {
			text, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("variant %q is not a string (got %T)", key, raw)
			}
			if !isPluralCategory(key) {
				plural = false
			}
			variants[key] = text
		}
		if plural {
			return Plural{Forms: variants}, nil
		}
		return Gendered{Variants: variants}, nil
	default:
		return nil, fmt.Errorf("value must be a string or an object, got %T", value)
	}
}
