// Package search implements the search orchestrator (component I): it
// selects a detector variant from a flat Config, drives the stream
// assembler, energy filter, histogram binner and segment runner across
// every window the dataset yields, maps the resulting bin indices
// back to MET, and formats each trigger into a types.FormattedEvent.
package search
