package filevalue

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sanitize converts a logical value name into a filesystem-safe filename.
// Letters, digits, dots, dashes and underscores are kept; everything else is
// dropped. Whenever sanitization alters the name (or would leave a name that
// is only dots, which path joining could misread), a 16-hex xxHash64 digest
// of the original name is appended so distinct logical names cannot collide
// after cleanup. The result is deterministic for a given name.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if safeNameRune(r) {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	if clean == name && strings.Trim(clean, ".") != "" {
		return clean
	}

	sum := xxhash.Sum64String(name)
	if strings.Trim(clean, ".") == "" {
		return fmt.Sprintf("%016x", sum)
	}
	return fmt.Sprintf("%s-%016x", clean, sum)
}

func safeNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '_':
		return true
	}
	return false
}
