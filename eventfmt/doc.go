// Package eventfmt implements the event formatter (component H): it
// maps a (σ, cp_MET, tt_MET) changepoint plus its enclosing GTI to the
// six boundary MET values of a spectral event — a pre-trigger
// background window, the source interval itself, and a post-trigger
// background window — clamping the background windows to the GTI.
package eventfmt
