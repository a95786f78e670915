package stream

import (
	"math"

	"github.com/hbstools/hbstools/types"
)

// Assembler pulls one merged window at a time from a catalog of
// providers. Call Next until it reports false; a non-nil error from
// Next is an adapter failure and aborts the pull.
type Assembler struct {
	providers []DatasetProvider
	tolerance float64
	groups    [][]catalogEntry
	pos       int
	cache     map[int]types.EventTable
}

// NewAssembler builds an Assembler over providers, merging adjacent
// catalogue entries whose gap is within tolerance (see mergeGroups).
// An empty providers slice, or one where every provider reports zero
// GTIs, yields an Assembler whose Next immediately returns false.
func NewAssembler(providers []DatasetProvider, tolerance float64) (*Assembler, error) {
	entries, err := catalog(providers)
	if err != nil {
		return nil, err
	}
	return &Assembler{
		providers: providers,
		tolerance: tolerance,
		groups:    mergeGroups(entries, tolerance),
		cache:     make(map[int]types.EventTable),
	}, nil
}

// mergeGroups folds consecutive catalogue entries into groups whenever
// the gap between them is within tolerance, or they overlap outright.
func mergeGroups(entries []catalogEntry, tolerance float64) [][]catalogEntry {
	if len(entries) == 0 {
		return nil
	}
	groups := [][]catalogEntry{{entries[0]}}
	for _, next := range entries[1:] {
		last := &groups[len(groups)-1]
		prev := (*last)[len(*last)-1]
		gap := next.gti.Start - prev.gti.End
		if math.Abs(gap) <= tolerance || next.gti.Start < prev.gti.End {
			*last = append(*last, next)
		} else {
			groups = append(groups, []catalogEntry{next})
		}
	}
	return groups
}

// Next yields the next merged window, or ok == false once every group
// has been consumed. Each provider's event table is read at most once
// across the Assembler's lifetime.
func (a *Assembler) Next() (window MergedWindow, ok bool, err error) {
	if a.pos >= len(a.groups) {
		return MergedWindow{}, false, nil
	}
	group := a.groups[a.pos]
	a.pos++

	merged := types.GTI{Start: group[0].gti.Start, End: group[len(group)-1].gti.End}

	var events types.EventTable
	seam := merged.Start
	for _, entry := range group {
		table, err := a.eventsFor(entry.providerIdx)
		if err != nil {
			return MergedWindow{}, false, err
		}
		start := math.Max(seam, entry.gti.Start)
		events = append(events, table.Between(start, entry.gti.End)...)
		seam = entry.gti.End
	}

	return MergedWindow{GTI: merged, Events: events}, true, nil
}

func (a *Assembler) eventsFor(providerIdx int) (types.EventTable, error) {
	if table, ok := a.cache[providerIdx]; ok {
		return table, nil
	}
	table, err := a.providers[providerIdx].ReadEvents()
	if err != nil {
		return nil, err
	}
	a.cache[providerIdx] = table
	return table, nil
}
