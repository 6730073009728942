package intl

import (
	"fmt"
	"strings"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE MODEL
///////////////////////////////////////////////////////////////////////////////

// segment is one piece of a parsed template: either literal text or a
// {{name}} placeholder (name may be empty, as in "{{}}").
type segment struct {
	text        string
	placeholder bool
}

// template is a parsed message string.
type template []segment

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE CACHE
///////////////////////////////////////////////////////////////////////////////

var (
	tplCache = map[string]template{}
	cacheMu  sync.RWMutex
)

// parsedTemplate returns the parsed form of s, parsing at most once per
// distinct message string.
func parsedTemplate(s string) template {
	cacheMu.RLock()
	tpl, ok := tplCache[s]
	cacheMu.RUnlock()
	if ok {
		return tpl
	}

	tpl = parseTemplate(s)
	cacheMu.Lock()
	tplCache[s] = tpl
	cacheMu.Unlock()
	return tpl
}

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE PARSER
///////////////////////////////////////////////////////////////////////////////

// parseTemplate splits s into text and placeholder segments. Placeholders
// are {{identifier}} with no nesting and no escaping; anything that does not
// form a complete marker stays literal text.
func parseTemplate(s string) template {
	var tpl template
	var buf strings.Builder

	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "{{")
		if open < 0 {
			buf.WriteString(s[i:])
			break
		}
		open += i

		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			buf.WriteString(s[i:])
			break
		}
		name := s[open+2 : open+2+end]

		if !isPlaceholderName(name) {
			// Not a marker. Emit one '{' and rescan from the next rune so
			// that "{{{n}}" still finds the "{{n}}" inside it.
			buf.WriteString(s[i : open+1])
			i = open + 1
			continue
		}

		buf.WriteString(s[i:open])
		if buf.Len() > 0 {
			tpl = append(tpl, segment{text: buf.String()})
			buf.Reset()
		}
		tpl = append(tpl, segment{text: name, placeholder: true})
		i = open + 2 + end + 2
	}

	if buf.Len() > 0 {
		tpl = append(tpl, segment{text: buf.String()})
	}
	return tpl
}

// isPlaceholderName reports whether name is a valid marker body:
// word characters only, possibly empty.
func isPlaceholderName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

///////////////////////////////////////////////////////////////////////////////
// SUBSTITUTION
///////////////////////////////////////////////////////////////////////////////

// substitute replaces placeholders in s with positional args, consumed left
// to right. Extra args are ignored; once args run out the remaining
// placeholders are emitted verbatim, so a missing argument never blocks a
// partial render.
func substitute(s string, args []any) string {
	tpl := parsedTemplate(s)

	var buf strings.Builder
	next := 0
	for _, seg := range tpl {
		if !seg.placeholder {
			buf.WriteString(seg.text)
			continue
		}
		if next < len(args) {
			buf.WriteString(fmt.Sprint(args[next]))
			next++
			continue
		}
		buf.WriteString("{{" + seg.text + "}}")
	}
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// VALIDATION
///////////////////////////////////////////////////////////////////////////////

// ValidatePlaceholders does a strict check for linting purpose: every "{{"
// must be closed by "}}" and contain only word characters. The resolver
// itself is tolerant; this catches typos before they ship.
func ValidatePlaceholders(s string) error {
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "{{")
		if open < 0 {
			return nil
		}
		open += i

		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			return fmt.Errorf("unclosed placeholder at position %d", open)
		}
		name := s[open+2 : open+2+end]
		if !isPlaceholderName(name) {
			return fmt.Errorf("invalid placeholder name %q at position %d", name, open)
		}
		i = open + 2 + end + 2
	}
	return nil
}
