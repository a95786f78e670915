// Package detector composes a focus.Focus curve stack with a
// background estimator into a single-channel changepoint detector:
// the "C" component of the pipeline (PF+DES), plus its PF+SES sibling
// (see SPEC_FULL.md §3.2).
//
// Each Step call feeds one bin count through the background
// estimator's collect/update/test schedule and, once steady state is
// reached, through the FOCuS update; it applies t_max quality control
// before reporting a Change.
package detector
