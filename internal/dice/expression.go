// Package dice parses and evaluates dice expressions of the form
// [count]d<sides>[±constant]...[ A|D].
package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rollkeeper/roll-api/internal/errors"
)

// Flag marks a roll for advantage or disadvantage re-rolling
type Flag int

// Advantage flags
const (
	FlagNone Flag = iota
	FlagAdvantage
	FlagDisadvantage
)

// String returns the single-letter notation for the flag
func (f Flag) String() string {
	switch f {
	case FlagAdvantage:
		return "A"
	case FlagDisadvantage:
		return "D"
	default:
		return ""
	}
}

var (
	// Fully anchored: trailing garbage fails the parse rather than
	// rolling whatever prefix happened to match.
	expressionRegex = regexp.MustCompile(`^([0-9]*)d([0-9]+)\s*((?:[+\-]\s*[0-9]+)*)(\s+[AD])?$`)

	// Constant terms are re-scanned individually so every term is
	// captured, not only the last one.
	constantRegex = regexp.MustCompile(`[+\-]\s*[0-9]+`)
)

// Expression is a parsed dice expression, immutable once parsed
type Expression struct {
	// Count is the number of dice, 1 when the text omitted it
	Count int

	// Sides is the die size
	Sides int

	// Constants are the signed modifier terms in source order
	Constants []int

	// Flag is the advantage/disadvantage marker, if any
	Flag Flag

	// Raw is the text the expression was parsed from
	Raw string
}

// Parse parses a literal dice expression. Text that does not match
// the grammar yields an unknown-command error carrying the input.
func Parse(text string) (*Expression, error) {
	matches := expressionRegex.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return nil, errors.InvalidArgumentf("unknown command: %s", text)
	}

	// Implicit leading 1: "d20" means "1d20"
	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, errors.InvalidArgumentf("unknown command: %s", text)
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.InvalidArgumentf("unknown command: %s", text)
	}
	if sides < 1 {
		return nil, errors.InvalidArgumentf("unknown command: %s", text)
	}

	var constants []int
	for _, term := range constantRegex.FindAllString(matches[3], -1) {
		// Whitespace between sign and digits is tolerated
		n, err := strconv.Atoi(strings.Join(strings.Fields(term), ""))
		if err != nil {
			return nil, errors.InvalidArgumentf("unknown command: %s", text)
		}
		constants = append(constants, n)
	}

	flag := FlagNone
	switch strings.TrimSpace(matches[4]) {
	case "A":
		flag = FlagAdvantage
	case "D":
		flag = FlagDisadvantage
	}

	return &Expression{
		Count:     count,
		Sides:     sides,
		Constants: constants,
		Flag:      flag,
		Raw:       text,
	}, nil
}

// ConstantTotal sums the constant terms
func (e *Expression) ConstantTotal() int {
	total := 0
	for _, c := range e.Constants {
		total += c
	}
	return total
}
