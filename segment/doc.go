// Package segment implements the segment runner (component F): it
// drives a fresh detector instance over a binned array, emits a
// Changepoint whenever the detector's Change crosses significance,
// and restarts detection skip bins past the trigger, concatenating
// results across the whole segment. No state ever survives a
// restart — the detector is rebuilt from scratch every time.
package segment
