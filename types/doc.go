// Package types defines the shared data model for the hbstools
// transient-detection pipeline: Mission Elapsed Time, Good Time
// Intervals, event tables, and the changepoint/event records the
// detector stages pass between each other.
//
// Nothing in this package performs I/O or numerical work; it exists so
// that focus, des, detector, bft, binning, segment, stream, eventfmt
// and search share one vocabulary instead of redeclaring tuples.
package types
