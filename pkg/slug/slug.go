package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopwords are Spanish articles, prepositions and conjunctions that carry no
// meaning in a filename. They are dropped before joining the remaining words.
var stopwords = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "el": {}, "los": {}, "las": {},
	"a": {}, "al": {}, "en": {}, "y": {}, "o": {}, "un": {}, "una": {},
	"para": {}, "por": {}, "con": {}, "sin": {},
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
	htmlExt      = regexp.MustCompile(`(?i)\.html?$`)
	unsafeChars  = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
)

// foldDiacritics strips combining marks after canonical decomposition,
// so "Formación" becomes "Formacion".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a lowercase ASCII slug from a title. Diacritics are folded,
// Spanish stopwords dropped, and the remaining words joined with hyphens.
// Returns "" when nothing survives the filtering.
func Make(title string) string {
	normalized, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		normalized = title
	}
	normalized = strings.ToLower(normalized)

	var kept []string
	for _, word := range strings.Fields(normalized) {
		if _, skip := stopwords[word]; skip {
			continue
		}
		kept = append(kept, word)
	}

	s := nonSlugChars.ReplaceAllString(strings.Join(kept, "-"), "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Filename derives a ".html" filename from a title. When the title slugs to
// nothing (e.g. it consists only of stopwords), a timestamp-based name with
// the given prefix is used instead so the caller always gets a usable name.
func Filename(title, fallbackPrefix string) string {
	s := Make(title)
	if s == "" {
		s = fmt.Sprintf("%s-%d", fallbackPrefix, time.Now().Unix())
	}
	return s + ".html"
}

// SanitizeFilename normalizes a user-supplied filename: an existing
// ".html"/".htm" suffix is stripped, any run of characters outside
// [A-Za-z0-9_-] is replaced with a hyphen, and surrounding hyphens are
// trimmed. Case is preserved. Returns "" when nothing remains, otherwise the
// result with ".html" appended exactly once.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	name = htmlExt.ReplaceAllString(name, "")
	name = unsafeChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return ""
	}

	return name + ".html"
}
