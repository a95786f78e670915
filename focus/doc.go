// Package focus implements Poisson-FOCuS (Functional Online CUSUM), a
// sequential changepoint detector over Poisson count data.
//
// The detector maintains a stack of candidate changepoint "curves" —
// each one the sufficient statistics (accumulated counts, accumulated
// background, a time index, and a running maximum) of a hypothetical
// changepoint at some past bin. Every Update call amortizes the stack
// in roughly constant time by discarding dominated curves (see Ward
// et al., 2023, and Dilillo et al., 2024) and reports the current
// global maximum log-likelihood-ratio together with how far back the
// best candidate changepoint lies.
//
//	stk, err := focus.New(focus.Params{ThresholdStd: 4.5, MuMin: 1.1})
//	err = stk.Update(x, b) // x = observed count, b = expected background
//	if stk.GlobalMax() > 0 {
//	    // a changepoint at TimeOffset() bins back crossed threshold
//	}
package focus
