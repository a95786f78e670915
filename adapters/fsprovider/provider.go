package fsprovider

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/hbstools/hbstools/types"
)

// Provider reads one data folder's GTIs and events from CSV files. It
// satisfies stream.DatasetProvider structurally.
type Provider struct {
	dir string
}

// New builds a Provider rooted at dir, which must contain gti.csv and
// events.csv.
func New(dir string) *Provider {
	return &Provider{dir: dir}
}

// ListGTIs reads dir/gti.csv, a header-less two-column (start,end) CSV,
// and returns the GTIs sorted by start ascending.
func (p *Provider) ListGTIs() ([]types.GTI, error) {
	rows, err := readCSV(filepath.Join(p.dir, "gti.csv"))
	if err != nil {
		return nil, err
	}

	gtis := make([]types.GTI, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("fsprovider: gti.csv row %d: want 2 columns, got %d", i, len(row))
		}
		start, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("fsprovider: gti.csv row %d: %w", i, err)
		}
		end, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("fsprovider: gti.csv row %d: %w", i, err)
		}
		gtis = append(gtis, types.GTI{Start: start, End: end})
	}

	sort.Slice(gtis, func(i, j int) bool { return gtis[i].Start < gtis[j].Start })
	return gtis, nil
}

// ReadEvents reads dir/events.csv, a header-less three-column
// (time,energy,quadid) CSV, and returns the events sorted by time
// ascending.
func (p *Provider) ReadEvents() (types.EventTable, error) {
	rows, err := readCSV(filepath.Join(p.dir, "events.csv"))
	if err != nil {
		return nil, err
	}

	table := make(types.EventTable, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("fsprovider: events.csv row %d: want 3 columns, got %d", i, len(row))
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("fsprovider: events.csv row %d: %w", i, err)
		}
		energy, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("fsprovider: events.csv row %d: %w", i, err)
		}
		quad, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("fsprovider: events.csv row %d: %w", i, err)
		}
		table = append(table, types.Event{Time: t, Energy: energy, Quad: types.QuadID(quad)})
	}

	sort.Slice(table, func(i, j int) bool { return table[i].Time < table[j].Time })
	return table, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsprovider: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fsprovider: read %s: %w", path, err)
	}
	return rows, nil
}
