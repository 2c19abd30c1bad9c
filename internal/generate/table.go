package generate

import "math/rand"

type tableEntry struct {
	name   string
	weight int
}

// RandomTable picks names with probability proportional to their weight.
type RandomTable struct {
	entries []tableEntry
	total   int
}

// Add appends name with weight. Non-positive weights are ignored.
func (t *RandomTable) Add(name string, weight int) *RandomTable {
	if weight > 0 {
		t.entries = append(t.entries, tableEntry{name, weight})
		t.total += weight
	}
	return t
}

// Total is the sum of all weights.
func (t *RandomTable) Total() int { return t.total }

// Roll returns a weighted random name, or "" for an empty table.
func (t *RandomTable) Roll(rng *rand.Rand) string {
	if t.total == 0 {
		return ""
	}
	roll := rng.Intn(t.total)
	for _, e := range t.entries {
		if roll < e.weight {
			return e.name
		}
		roll -= e.weight
	}
	return ""
}
