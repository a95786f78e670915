package stream

import "github.com/hbstools/hbstools/types"

// DatasetProvider is one folder's worth of data: an ordered, non-empty
// list of GTIs and the event table covering them. Implementations are
// adapters; the core never constructs one itself.
type DatasetProvider interface {
	ListGTIs() ([]types.GTI, error)
	ReadEvents() (types.EventTable, error)
}

// MergedWindow is one (GTI, EventTable) pair yielded by an Assembler.
// GTI is the union of one or more consecutive catalogue entries within
// tolerance of each other; Events is the concatenation of the
// contributing providers' events restricted to GTI, de-duplicated at
// any internal seam.
type MergedWindow struct {
	GTI    types.GTI
	Events types.EventTable
}
