package course

import (
	"cmp"
	"slices"
)

// Reorder applies the requested positions to one chapter's sections and
// renumbers the result to 0..n-1. Sections without a requested position sort
// by their current one. On equal positions a requested section goes first,
// otherwise the previous relative order is kept.
func Reorder(sections []Section, positions map[string]int) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)

	prev := make(map[string]int, len(out))
	for _, s := range out {
		prev[s.ID] = s.Position
	}

	key := func(s Section) (int, int) {
		if p, ok := positions[s.ID]; ok {
			return p, 0
		}
		return s.Position, 1
	}

	slices.SortStableFunc(out, func(a, b Section) int {
		ka, ra := key(a)
		kb, rb := key(b)
		if c := cmp.Compare(ka, kb); c != 0 {
			return c
		}
		if c := cmp.Compare(ra, rb); c != 0 {
			return c
		}
		return cmp.Compare(prev[a.ID], prev[b.ID])
	})

	for i := range out {
		out[i].Position = i
	}
	return out
}

