// Package binning implements the histogram binner (component E): it
// turns an event table restricted to a GTI into fixed-width count
// bins, either as a single row or as a four-row, quadrant-aware
// matrix for the BFT folder.
package binning
