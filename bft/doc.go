// Package bft implements the Bft (component D): four independent
// single-channel detectors run in lock-step, one per instrument
// quadrant, folded by a majority vote. A quadrant whose detector
// raises ErrInvalidBackground is masked out for the remainder of the
// segment rather than aborting it; the segment itself only fails once
// too few quadrants remain alive to form a majority.
package bft
