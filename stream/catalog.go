package stream

import (
	"sort"

	"github.com/hbstools/hbstools/types"
)

// catalogEntry pairs one GTI with the index of the provider it came
// from, so the assembler can read that provider's events lazily.
type catalogEntry struct {
	gti         types.GTI
	providerIdx int
}

// catalog queries every provider for its GTIs, sorts providers by the
// start of their first GTI, and flattens the result. Providers that
// report zero GTIs contribute nothing. The invariant required by P1
// (strictly increasing starts and ends across the whole sequence)
// relies on the providers themselves never producing overlapping
// GTIs; catalog does not itself re-sort individual GTIs within a
// provider.
func catalog(providers []DatasetProvider) ([]catalogEntry, error) {
	type indexed struct {
		idx  int
		gtis []types.GTI
	}

	nonEmpty := make([]indexed, 0, len(providers))
	for i, p := range providers {
		gtis, err := p.ListGTIs()
		if err != nil {
			return nil, err
		}
		if len(gtis) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, indexed{idx: i, gtis: gtis})
	}

	sort.SliceStable(nonEmpty, func(i, j int) bool {
		return nonEmpty[i].gtis[0].Start < nonEmpty[j].gtis[0].Start
	})

	var entries []catalogEntry
	for _, ix := range nonEmpty {
		for _, gti := range ix.gtis {
			entries = append(entries, catalogEntry{gti: gti, providerIdx: ix.idx})
		}
	}
	return entries, nil
}
