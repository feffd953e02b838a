package services

import (
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxKeyNameLen = 64

// genStorageKey builds a fresh unique blob name: "<uuid>_<safe-name>".
// The uuid guarantees uniqueness; the sanitized client name keeps keys
// readable on disk. Thumbnail derivatives append "_<width>" to this key.
func genStorageKey(name string) string {
	return uuid.New().String() + "_" + sanitizeName(name)
}

// sanitizeName folds a client-supplied file name down to ASCII
// [a-z0-9._-] with no path meaning.
func sanitizeName(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)
	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r == '.', r == '_':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		default:
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-.")
	if out == "" {
		return "file"
	}
	if len(out) > maxKeyNameLen {
		out = out[:maxKeyNameLen]
	}

	return out
}
