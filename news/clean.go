package news

import (
	"strings"
	"unicode"
)

// fallbackSource authors posts whose source is blank after cleaning.
const fallbackSource = "WorldNews"

var sourcePrefixes = []struct{ prefix, name string }{
	{"AP", "AP News"},
	{"BBC", "BBC"},
	{"CNN", "CNN"},
}

// CleanSource turns a raw source name into a post author: " via X" suffixes
// are cut, wire services are collapsed to one name and an empty name becomes
// "WorldNews".
func CleanSource(source string) string {
	if i := strings.Index(source, " via "); i >= 0 {
		source = source[:i]
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return fallbackSource
	}
	for _, p := range sourcePrefixes {
		if strings.HasPrefix(source, p.prefix) {
			return p.name
		}
	}

	return source
}

var titleReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"–", "-",
	"—", "-",
	"…", "...",
)

// CleanTitle folds typographic punctuation to ASCII, drops the remaining
// non-ASCII runes and collapses whitespace runs to single spaces.
func CleanTitle(title string) string {
	title = titleReplacer.Replace(title)

	var b strings.Builder
	b.Grow(len(title))
	space := false
	for _, r := range title {
		switch {
		case unicode.IsSpace(r):
			space = b.Len() > 0
		case r > unicode.MaxASCII || unicode.IsControl(r):
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}
