package focus

import (
	"math"
)

// curve is a single hypothetical changepoint's sufficient statistics
// plus the stored local maximum up to that point: accumulated counts
// x, accumulated background b, a time index t, and a running maximum m.
type curve struct {
	x, b float64
	t    int
	m    float64
}

// ymax is the maximum of a curve supporting accumulator optimization:
// Δx·ln(Δx/Δb) − (Δx − Δb). The caller guarantees Δx > Δb.
func ymax(c, acc curve) float64 {
	dx := acc.x - c.x
	db := acc.b - c.b
	return dx*math.Log(dx/db) - (dx - db)
}

// dominate reports whether p dominates q with respect to acc: +1 if
// the signed area is positive, -1 otherwise.
func dominate(p, q, acc curve) int {
	area := (acc.x-p.x)*(acc.b-q.b) - (acc.x-q.x)*(acc.b-p.b)
	if area > 0 {
		return 1
	}
	return -1
}

// Focus is a Poisson-FOCuS curve stack: it maintains the argmax over
// all possible changepoint locations of the Poisson log-likelihood
// ratio and amortizes the stack by discarding dominated curves.
type Focus struct {
	abCrit      float64
	thresholdLL float64

	stack []curve

	globalMax  float64
	timeOffset int
}

// New constructs a Focus detector. It fails with ErrInvalidParameter
// if params does not satisfy Params.Validate.
func New(params Params) (*Focus, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	abCrit := 1.0
	if params.MuMin != 1.0 {
		abCrit = (params.MuMin - 1.0) / math.Log(params.MuMin)
	}

	hint := params.CapacityHint
	if hint <= 0 {
		hint = defaultCapacityHint
	}

	f := &Focus{
		abCrit:      abCrit,
		thresholdLL: params.ThresholdStd * params.ThresholdStd / 2,
	}
	f.stack = make([]curve, 0, hint)
	f.reset()
	return f, nil
}

// reset restores the stack to [sentinel, (0,0,0,0)].
func (f *Focus) reset() {
	f.stack = f.stack[:0]
	f.stack = append(f.stack, curve{x: math.Inf(1), b: 0, t: 0, m: 0})
	f.stack = append(f.stack, curve{x: 0, b: 0, t: 0, m: 0})
}

// GlobalMax is the current maximum log-likelihood-ratio. It is zero
// when no candidate crosses the significance threshold.
func (f *Focus) GlobalMax() float64 { return f.globalMax }

// TimeOffset is the changepoint offset such that cp_bin = currentBin -
// TimeOffset + 1. It is meaningful only when GlobalMax() > 0.
func (f *Focus) TimeOffset() int { return f.timeOffset }

// ThresholdLLR is threshold_std^2/2, the trigger threshold in
// log-likelihood-ratio units.
func (f *Focus) ThresholdLLR() float64 { return f.thresholdLL }

// Update folds one (count, background) observation into the curve
// stack. It fails with ErrInvalidBackground if b is not strictly
// positive.
func (f *Focus) Update(x, b float64) error {
	if b <= 0 {
		return ErrInvalidBackground
	}
	f.globalMax = 0.0
	f.timeOffset = 0

	n := len(f.stack)
	p := f.stack[n-1]
	f.stack = f.stack[:n-1]
	acc := curve{x: p.x + x, b: p.b + b, t: p.t + 1, m: p.m}

	for dominate(p, f.stack[len(f.stack)-1], acc) <= 0 {
		n = len(f.stack)
		p = f.stack[n-1]
		f.stack = f.stack[:n-1]
	}

	if (acc.x - p.x) > f.abCrit*(acc.b-p.b) {
		acc.m = p.m + ymax(p, acc)
		f.maximize(p, acc)
		f.stack = append(f.stack, p, acc)
	} else {
		f.reset()
	}
	return nil
}

// maximize walks the remaining stack from the top down, refreshing m,
// and sets GlobalMax/TimeOffset as soon as a candidate crosses
// threshold. It terminates once the running bound falls below
// threshold, since no older candidate could possibly cross it either.
func (f *Focus) maximize(p, acc curve) {
	m := acc.m - p.m
	i := len(f.stack)
	for m+p.m >= f.thresholdLL {
		if m >= f.thresholdLL {
			f.globalMax = m
			f.timeOffset = acc.t - p.t
			return
		}
		i--
		p = f.stack[i]
		m = ymax(p, acc)
	}
}
