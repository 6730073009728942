package intl

// Shape is the resolution mode a lookup expects the Entry to have.
type Shape int

const (
	ShapePlain Shape = iota
	ShapePlural
	ShapeGendered
)

// Query is one lookup request against a Translation handle.
type Query struct {
	Key    string
	Shape  Shape
	Count  int    // plural lookups only
	Gender string // gendered lookups only; matched exactly, case-sensitive

	// Args are positional substitution arguments. A nil slice disables
	// substitution entirely; an empty one leaves every placeholder intact.
	Args []any
}

// Translation is an ephemeral handle bound to the catalogs for one file in
// the current and fallback languages. Obtain one per access via
// Registry.Translation; it is a snapshot and must not be stored across
// language switches.
type Translation struct {
	lang         string
	fallbackLang string
	file         string
	primary      *Catalog
	fallback     *Catalog
	missing      func(lang, file, key string)
}

// Resolve runs a lookup against the primary catalog and, when that fails
// for any reason (no catalog, key absent, shape mismatch, missing variant),
// retries the whole key against the fallback catalog. Data is never merged
// between the two: a phrase always comes wholesale from one language.
//
// The boolean reports a full miss for diagnostics; fallback success is the
// designed degraded path, not a miss. The string is always renderable.
func (t *Translation) Resolve(q Query) (string, bool) {
	if text, ok := lookupEntry(t.primary, q); ok {
		return text, false
	}
	if t.fallback != nil && t.fallback != t.primary {
		if text, ok := lookupEntry(t.fallback, q); ok {
			return text, false
		}
	}
	if t.missing != nil {
		t.missing(t.lang, t.file, q.Key)
	}
	return MissingText, true
}

// lookupEntry selects the display string for q from a single catalog.
// Any failure reports false; the caller decides whether to fall back.
func lookupEntry(c *Catalog, q Query) (string, bool) {
	entry, ok := c.Entry(q.Key)
	if !ok {
		return "", false
	}

	var text string
	switch e := entry.(type) {
	case Plain:
		if q.Shape != ShapePlain {
			return "", false
		}
		text = e.Text
	case Plural:
		if q.Shape != ShapePlural {
			return "", false
		}
		if text, ok = e.Forms[pluralForm(q.Count)]; !ok {
			return "", false
		}
	case Gendered:
		if q.Shape != ShapeGendered {
			return "", false
		}
		if text, ok = e.Variants[q.Gender]; !ok {
			return "", false
		}
	default:
		return "", false
	}

	if q.Args != nil {
		text = substitute(text, q.Args)
	}
	return text, true
}

// T returns the plain translation for key.
func (t *Translation) T(key string) string {
	text, _ := t.Resolve(Query{Key: key, Shape: ShapePlain})
	return text
}

// TWithArg returns the plain translation for key with {{name}} placeholders
// replaced by args in order of appearance.
func (t *Translation) TWithArg(key string, args ...any) string {
	text, _ := t.Resolve(Query{Key: key, Shape: ShapePlain, Args: args})
	return text
}

// TWithPlural returns the pluralized translation for key, bucketing count
// into none/one/many. The count is injected as the first positional
// argument, so "{{count}} apples" renders with the number inline.
func (t *Translation) TWithPlural(key string, count int) string {
	text, _ := t.Resolve(Query{
		Key:   key,
		Shape: ShapePlural,
		Count: count,
		Args:  []any{count},
	})
	return text
}

// TWithGender returns the variant of key for the given gender tag.
func (t *Translation) TWithGender(key, gender string) string {
	text, _ := t.Resolve(Query{Key: key, Shape: ShapeGendered, Gender: gender})
	return text
}

// TWithGenderAndArg combines TWithGender with positional substitution.
func (t *Translation) TWithGenderAndArg(key, gender string, args ...any) string {
	text, _ := t.Resolve(Query{
		Key:    key,
		Shape:  ShapeGendered,
		Gender: gender,
		Args:   args,
	})
	return text
}
