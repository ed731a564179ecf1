package font

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Describe returns an identifier safe name for c. ASCII letters and
// digits are returned as is. Other characters use their lower case
// Unicode name with every run of other characters replaced by an
// underscore, e.g. "exclamation_mark". Characters without a name become
// u<code>, e.g. "u0007".
func Describe(c rune) string {
	if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
		return string(c)
	}
	name := runenames.Name(c)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("u%04x", c)
	}
	var sb strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if underscore && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			underscore = false
			sb.WriteRune(r)
			continue
		}
		underscore = true
	}
	return sb.String()
}
