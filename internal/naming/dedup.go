package naming

import "strconv"

// Deduper assigns final, pairwise-distinct names to a sequence of candidate
// constant names. Scope one Deduper per class per member category: fields
// and methods of the same class may legitimately share a base name.
//
// The first occurrence of a candidate keeps its name unchanged; later
// occurrences get "_2", "_3", ... appended, taking the first free slot.
// Callers must feed candidates in a deterministic order, since that order
// decides which member keeps the bare name.
type Deduper struct {
	assigned map[string]struct{}
}

// NewDeduper creates an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{assigned: make(map[string]struct{})}
}

// Assign claims and returns the final name for candidate.
func (d *Deduper) Assign(candidate string) string {
	if _, taken := d.assigned[candidate]; !taken {
		d.assigned[candidate] = struct{}{}

		return candidate
	}

	for n := 2; ; n++ {
		name := candidate + "_" + strconv.Itoa(n)
		if _, taken := d.assigned[name]; !taken {
			d.assigned[name] = struct{}{}

			return name
		}
	}
}
