// Package stream implements the stream assembler (component G): it
// catalogues GTIs across a set of dataset providers, orders them by
// start time, merges adjacent GTIs whose gap falls within a tolerance,
// and lazily yields one (GTI, EventTable) window at a time. Each
// provider's event table is read at most once and cached for the
// lifetime of the Assembler.
package stream
