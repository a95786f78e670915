// Package config loads the YAML configuration file an hbstools run is
// driven by and converts it into a search.Config. It also enforces the
// caller-side checks spec §6 assigns to the adapter rather than the
// core — e.g. rejecting a majority key without a positive alpha — before the
// orchestrator ever sees the record.
package config
