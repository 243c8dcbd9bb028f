// Package mention recognizes @-prefixed integration references in free
// text. Rendering rewrites recognized tokens into inline styled fragments;
// the Composer tracks the Idle/Composing states of a mention being typed.
// Both operate on an explicit token scan rather than a single regex so
// malformed input degrades predictably.
package mention

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
)

// Render scans content for @Name tokens and replaces the ones that
// resolve against the registry with a styled fragment carrying a
// data-mention attribute. Unrecognized tokens are left verbatim; this is
// a best-effort highlighter, not a validator.
func Render(content string, reg *catalog.Registry) string {
	var b strings.Builder
	b.Grow(len(content))

	runes := []rune(content)
	i := 0
	for i < len(runes) {
		if runes[i] != '@' || !atTokenStart(runes, i) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		word := scanWord(runes, i+1)
		if word == "" {
			b.WriteRune(runes[i])
			i++
			continue
		}

		name := CanonicalName(word)
		integ, ok := reg.Lookup(name)
		if !ok {
			// Leave the raw token untouched.
			b.WriteString(string(runes[i : i+1+len([]rune(word))]))
			i += 1 + len([]rune(word))
			continue
		}

		b.WriteString(Fragment(integ))
		i += 1 + len([]rune(word))
	}
	return b.String()
}

// Fragment builds the inline styled markup for a recognized integration.
// The data-mention attribute is the structural marker tests and callers
// key on.
func Fragment(i catalog.Integration) string {
	return fmt.Sprintf(
		`<span class="mention" data-mention=%q><img class="mention-icon" src=%q alt="">%s</span>`,
		i.Name, i.Icon, i.Name,
	)
}

// Mentions returns the registry names of every recognized token in
// content, in first-appearance order without duplicates. Callers use it
// to auto-connect the integrations an instruction block references.
func Mentions(content string, reg *catalog.Registry) []string {
	var names []string
	seen := map[string]bool{}

	runes := []rune(content)
	i := 0
	for i < len(runes) {
		if runes[i] != '@' || !atTokenStart(runes, i) {
			i++
			continue
		}
		word := scanWord(runes, i+1)
		if word == "" {
			i++
			continue
		}
		name := CanonicalName(word)
		if integ, ok := reg.Lookup(name); ok && !seen[integ.Name] {
			seen[integ.Name] = true
			names = append(names, integ.Name)
		}
		i += 1 + len([]rune(word))
	}
	return names
}

// CanonicalName maps a typed token to the registry's display form:
// underscore-separated segments become space-separated words with the
// first letter of each segment upper-cased and the rest untouched, so
// "gitHub" resolves to "GitHub" and "google_drive" to "Google Drive".
// The registry lookup itself stays case-sensitive on this form.
func CanonicalName(token string) string {
	segments := strings.Split(token, "_")
	for i, seg := range segments {
		r := []rune(seg)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		segments[i] = string(r)
	}
	return strings.Join(segments, " ")
}

// atTokenStart reports whether position i starts a token: the '@' must be
// at the beginning of the text or preceded by whitespace.
func atTokenStart(runes []rune, i int) bool {
	return i == 0 || unicode.IsSpace(runes[i-1])
}

// scanWord collects the alphanumeric/underscore run starting at i.
func scanWord(runes []rune, i int) string {
	start := i
	for i < len(runes) && isWordRune(runes[i]) {
		i++
	}
	return string(runes[start:i])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
