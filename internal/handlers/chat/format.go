package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rollkeeper/roll-api/internal/dice"
	"github.com/rollkeeper/roll-api/internal/repositories/rolllog"
)

// formatRoll renders a roll result the way players expect to read it:
// a header naming the expression and character, then a code block with
// the roll sets and the total. The reroll set only shows when a flag
// asked for it.
func formatRoll(userID, character string, expr *dice.Expression, outcome *dice.Outcome) string {
	header := fmt.Sprintf("<@%s> rolled `%s`", userID, expr.Raw)
	if character != "" {
		header += fmt.Sprintf(" for %s", character)
	}

	if expr.Flag == dice.FlagNone {
		return fmt.Sprintf("%s\n```%s\nTotal: %d```",
			header, formatSet(outcome.Rolls), outcome.Total)
	}

	label := "ADV"
	if expr.Flag == dice.FlagDisadvantage {
		label = "DISADV"
	}
	return fmt.Sprintf("%s\n```%s, %s\nTotal (%s): %d```",
		header, formatSet(outcome.Rolls), formatSet(outcome.Rerolls), label, outcome.Total)
}

// formatSet renders a roll set as "[3, 5]"
func formatSet(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatRecent renders the roll history, newest first
func formatRecent(userID string, records []rolllog.Record) string {
	if len(records) == 0 {
		return fmt.Sprintf("<@%s> has no recorded rolls.", userID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<@%s> recent rolls\n```", userID)
	for _, rec := range records {
		b.WriteString("\n")
		if rec.Character != "" {
			fmt.Fprintf(&b, "%s: ", rec.Character)
		}
		fmt.Fprintf(&b, "%s = %d", rec.Expression, rec.Total)
		if rec.Flag != "" {
			fmt.Fprintf(&b, " (%s)", rec.Flag)
		}
	}
	b.WriteString("\n```")
	return b.String()
}
