package dice

// Outcome is the result of evaluating an expression
type Outcome struct {
	// Rolls is the primary roll set, length Count
	Rolls []int

	// Rerolls is the second set. It is always drawn, but only decides
	// the total when an advantage/disadvantage flag was present.
	Rerolls []int

	// Chosen is whichever set the flag comparison selected
	Chosen []int

	// Total is sum(Chosen) plus all constants
	Total int
}

// Evaluate executes a parsed expression against the roller.
//
// The re-roll set is drawn unconditionally so flagged and plain rolls
// consume the random source identically; seeded rollers therefore
// produce the same sets for "2d6" and "2d6 A".
func Evaluate(expr *Expression, roller Roller) *Outcome {
	rolls := draw(expr.Count, expr.Sides, roller)
	rerolls := draw(expr.Count, expr.Sides, roller)

	chosen := rolls
	switch expr.Flag {
	case FlagAdvantage:
		if sum(rerolls) > sum(rolls) {
			chosen = rerolls
		}
	case FlagDisadvantage:
		if sum(rerolls) < sum(rolls) {
			chosen = rerolls
		}
	}

	return &Outcome{
		Rolls:   rolls,
		Rerolls: rerolls,
		Chosen:  chosen,
		Total:   sum(chosen) + expr.ConstantTotal(),
	}
}

func draw(count, sides int, roller Roller) []int {
	set := make([]int, count)
	for i := range set {
		set[i] = roller.Roll(sides)
	}
	return set
}

func sum(set []int) int {
	total := 0
	for _, v := range set {
		total += v
	}
	return total
}
