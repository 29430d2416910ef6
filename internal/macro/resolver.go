package macro

import (
	"regexp"

	"github.com/rollkeeper/roll-api/internal/entities"
	"github.com/rollkeeper/roll-api/internal/errors"
)

// Trailing advantage/disadvantage suffix: a single A or D preceded by
// whitespace, anchored at the end of the command.
var advSuffixRegex = regexp.MustCompile(`^(.*?)(\s+[AD])?$`)

// Resolution is the outcome of macro resolution
type Resolution struct {
	// Expression is the literal dice expression to evaluate
	Expression string

	// Macro is the matched macro name, empty on pass-through
	Macro string
}

// Resolve turns a roll command into a literal dice expression.
//
// The command (minus any trailing A/D suffix) is looked up in the
// global macro table first, then in the character's own macros.
// Global definitions win when both tables hold the same name. A
// command matching neither table is returned unchanged, suffix
// included, for the parser to judge.
func Resolve(command string, ch *entities.Character, globals map[string]string) (*Resolution, error) {
	groups := advSuffixRegex.FindStringSubmatch(command)
	name, suffix := groups[1], groups[2]

	template, ok := globals[name]
	if !ok && ch.Macros != nil {
		template, ok = ch.Macros[name]
	}
	if !ok {
		return &Resolution{Expression: command}, nil
	}

	bonus := ProficiencyBonus(ch.Level)

	ctx := ch.TemplateContext()
	ctx["proficiency"] = bonus
	// The suffix keeps its leading whitespace so templates can place
	// {adv_or_disadv} flush against the expression.
	ctx["adv_or_disadv"] = suffix
	ctx["is_proficient"] = ""
	if ch.IsProficient(name) {
		ctx["is_proficient"] = bonus
	}

	expression, err := Expand(template, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve command %q", command)
	}

	return &Resolution{
		Expression: expression,
		Macro:      name,
	}, nil
}
