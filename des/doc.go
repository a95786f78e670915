// Package des implements a Double Exponential Smoothing background
// forecaster with an m-step delay buffer, the "B" component of the
// pipeline. It forecasts lambda(t) = s_t + m*b_t from a smoothed level
// s and slope b, and runs a three-phase collect/update/test schedule
// so the forecast at each step is computed only from counts at least
// m bins old (the m-bin-delayed buffer guards against the
// background estimate absorbing the very excess it should flag).
package des
