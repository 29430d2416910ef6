// Package macro resolves chat roll commands through global and
// per-character macro tables into literal dice expressions.
package macro

import (
	"fmt"
	"strings"

	"github.com/rollkeeper/roll-api/internal/errors"
)

// Expand substitutes {name} placeholders in template from ctx. A
// placeholder with no context entry is a hard error (fail-fast, no
// silent empty substitution). {{ and }} render literal braces, for
// compatibility with macro corpora written for the original bot.
func Expand(template string, ctx map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				out.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", errors.InvalidArgumentf("unterminated placeholder in template %q", template)
			}
			name := template[i+1 : i+end]
			value, ok := ctx[name]
			if !ok {
				return "", errors.InvalidArgumentf("unknown placeholder {%s}", name)
			}
			out.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				out.WriteByte('}')
				i += 2
				continue
			}
			return "", errors.InvalidArgumentf("unmatched '}' in template %q", template)
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), nil
}

// ProficiencyBonus derives the proficiency bonus from character
// level: floor((level-1)/4) + 2, rendered with an explicit sign.
func ProficiencyBonus(level int) string {
	return fmt.Sprintf("+%d", (level-1)/4+2)
}
