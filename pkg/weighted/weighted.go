package weighted

import "math/rand"

// Choice is one categorical value with its sampling weight.
type Choice struct {
	Value  string
	Weight float64
}

// Table samples from a fixed weighted categorical distribution. Tables
// are built once and read-only afterwards, safe to share.
type Table struct {
	choices []Choice
	total   float64
}

// NewTable builds a table from choices. Weights must be positive, they
// need not sum to one.
func NewTable(choices []Choice) Table {
	if len(choices) == 0 {
		panic("weighted: empty table")
	}
	t := Table{choices: choices}
	for _, c := range choices {
		if c.Weight <= 0 {
			panic("weighted: non-positive weight for " + c.Value)
		}
		t.total += c.Weight
	}
	return t
}

// Pick draws one value, consuming exactly one rng draw.
func (t Table) Pick(rng *rand.Rand) string {
	target := rng.Float64() * t.total
	for _, c := range t.choices {
		target -= c.Weight
		if target < 0 {
			return c.Value
		}
	}
	return t.choices[len(t.choices)-1].Value
}
