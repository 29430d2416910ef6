// Package entities defines the character data model shared by the
// roll engine and the roster collaborators.
package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AbilityNames lists the six canonical abilities in display order.
var AbilityNames = []string{"str", "dex", "con", "int", "wis", "cha"}

const modifierSuffix = "mod"

// StatBlock maps ability-score names to integer values and keeps one
// derived modifier entry per ability. The modifier entries are never
// an independent source of truth: every write to an ability recomputes
// its modifier, and direct writes to modifier keys are dropped.
type StatBlock struct {
	scores    map[string]int
	modifiers map[string]string
}

// NewStatBlock creates an empty stat block
func NewStatBlock() *StatBlock {
	return &StatBlock{
		scores:    make(map[string]int),
		modifiers: make(map[string]string),
	}
}

// Set stores a value under key. Ability keys additionally recompute
// the "<ability>mod" entry; modifier keys are silently ignored; any
// other key is stored verbatim.
func (s *StatBlock) Set(key string, value int) {
	if isModifierKey(key) {
		return
	}
	if isAbility(key) {
		s.modifiers[key+modifierSuffix] = AbilityModifier(value)
	}
	s.scores[key] = value
}

// Value returns the stored value for key
func (s *StatBlock) Value(key string) (int, bool) {
	v, ok := s.scores[key]
	return v, ok
}

// Modifier returns the rendered modifier for an ability, e.g. "+2"
func (s *StatBlock) Modifier(ability string) (string, bool) {
	m, ok := s.modifiers[ability+modifierSuffix]
	return m, ok
}

// AbilityModifier derives the modifier for an ability score:
// floor(value/2) - 5, rendered with an explicit sign when >= 0.
func AbilityModifier(value int) string {
	mod := floorDiv(value, 2) - 5
	if mod < 0 {
		return strconv.Itoa(mod)
	}
	return fmt.Sprintf("+%d", mod)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func isAbility(key string) bool {
	for _, name := range AbilityNames {
		if key == name {
			return true
		}
	}
	return false
}

func isModifierKey(key string) bool {
	return strings.HasSuffix(key, modifierSuffix) && isAbility(strings.TrimSuffix(key, modifierSuffix))
}

// TemplateContext renders every score and derived modifier as strings
// for macro substitution.
func (s *StatBlock) TemplateContext() map[string]string {
	ctx := make(map[string]string, len(s.scores)+len(s.modifiers))
	for k, v := range s.scores {
		ctx[k] = strconv.Itoa(v)
	}
	for k, v := range s.modifiers {
		ctx[k] = v
	}
	return ctx
}

// MarshalJSON stores base values only; modifiers are derived on load
func (s *StatBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.scores)
}

// UnmarshalJSON rebuilds the block through Set so a stored record can
// never carry stale modifiers.
func (s *StatBlock) UnmarshalJSON(data []byte) error {
	var scores map[string]int
	if err := json.Unmarshal(data, &scores); err != nil {
		return err
	}
	s.scores = make(map[string]int, len(scores))
	s.modifiers = make(map[string]string)
	for k, v := range scores {
		s.Set(k, v)
	}
	return nil
}
