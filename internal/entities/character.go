package entities

import (
	"strconv"
	"strings"
)

// Character is a player character inside a game. Base values are set
// at creation by the roster service; the roll engine only reads them.
type Character struct {
	// Name identifies the character within its game
	Name string `json:"name"`

	// OwnerID is the chat user allowed to roll for this character
	OwnerID string `json:"owner_id"`

	// Level drives the proficiency bonus
	Level int `json:"level"`

	// HitDice is the character's hit-dice count
	HitDice int `json:"hitdice"`

	// ProficientRolls names the rolls that earn the proficiency bonus
	ProficientRolls []string `json:"proficient_rolls"`

	// Macros maps per-character macro names to template strings
	Macros map[string]string `json:"macros,omitempty"`

	// Stats holds ability scores and their derived modifiers
	Stats *StatBlock `json:"stats"`
}

// IsProficient reports whether name is in the proficient-roll set
func (c *Character) IsProficient(name string) bool {
	for _, roll := range c.ProficientRolls {
		if roll == name {
			return true
		}
	}
	return false
}

// TemplateContext builds the macro substitution context: every stat
// and modifier plus the character's descriptive fields.
func (c *Character) TemplateContext() map[string]string {
	ctx := map[string]string{
		"name":             c.Name,
		"level":            strconv.Itoa(c.Level),
		"hitdice":          strconv.Itoa(c.HitDice),
		"proficient_rolls": strings.Join(c.ProficientRolls, ","),
	}
	if c.Stats != nil {
		for k, v := range c.Stats.TemplateContext() {
			ctx[k] = v
		}
	}
	return ctx
}
