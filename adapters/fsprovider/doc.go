// Package fsprovider implements a stream.DatasetProvider over a
// simple two-file CSV layout: gti.csv (start,end rows) and events.csv
// (time,energy,quadid rows), one pair per data folder. It is a
// deliberately minimal stand-in for the FITS reader the original
// pipeline uses; the core never depends on it directly.
package fsprovider
