// Package csvsink implements a search.EventSink that appends each
// formatted event to a CSV writer, as a minimal demonstration of the
// sink extension point — not a replacement for the catalog/library
// bookkeeping the core leaves out of scope.
package csvsink
