package des

// schedule is the three-phase DES warm-up/steady-state state machine.
type schedule int

const (
	scheduleCollect schedule = iota
	scheduleUpdate
	scheduleTest
)

// DES is a Double Exponential Smoothing background estimator with an
// m-step delay buffer. Step admits one count at a time; it only
// returns a usable forecast once the warm-up (collect+update) phases
// have elapsed.
type DES struct {
	alpha, beta float64
	m           int
	sleep       int

	buffer []float64 // FIFO, capacity m

	sT, bT float64
	s0Set  bool
	s0     float64
	b0Set  bool
	b0     float64

	t        int
	schedule schedule
}

// New constructs a DES estimator. It fails with ErrInvalidParameter if
// params does not satisfy Params.Validate.
func New(params Params) (*DES, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	d := &DES{
		alpha:  params.Alpha,
		beta:   params.Beta,
		m:      params.M,
		sleep:  params.Sleep,
		buffer: make([]float64, 0, params.M),
		t:      params.M + params.Sleep,
	}
	if params.S0 != nil {
		d.s0Set = true
		d.s0 = *params.S0
	}
	if params.B0 != nil {
		d.b0Set = true
		d.b0 = *params.B0
	}
	return d, nil
}

// pushPop appends x to the FIFO and, once it is at capacity m, pops
// and returns the oldest entry together with true. Before the FIFO
// fills, it returns (0, false).
func (d *DES) pushPop(x float64) (float64, bool) {
	if len(d.buffer) < d.m {
		d.buffer = append(d.buffer, x)
		return 0, false
	}
	oldest := d.buffer[0]
	d.buffer = append(d.buffer[1:], x)
	return oldest, true
}

func (d *DES) initialize() {
	if d.s0Set {
		d.sT = d.s0
	} else {
		sum := 0.0
		for _, v := range d.buffer {
			sum += v
		}
		d.sT = sum / float64(d.m)
	}
	if d.b0Set {
		d.bT = d.b0
	} else {
		d.bT = 0.0
	}
}

// update applies one DES step given the delayed count x_{t-m} and
// returns the new forecast lambda(t) = s_t + m*b_t.
func (d *DES) update(xTM float64) float64 {
	sPrev, bPrev := d.sT, d.bT
	d.sT = d.alpha*xTM + (1-d.alpha)*(sPrev+bPrev)
	d.bT = d.beta*(d.sT-sPrev) + (1-d.beta)*bPrev
	return d.sT + float64(d.m)*d.bT
}

// Step advances the estimator by one bin count. ready is true only in
// the steady-state "test" phase, in which case lambda is the fresh
// forecast to pair with x in the detector's FOCuS update. During
// warm-up (collect/update phases) ready is false and lambda is zero.
//
// Step fails with ErrInvalidBackground if the computed forecast is
// not strictly positive.
func (d *DES) Step(x float64) (ready bool, lambda float64, err error) {
	switch d.schedule {
	case scheduleTest:
		xTM, _ := d.pushPop(x)
		lambda = d.update(xTM)
		if lambda <= 0 {
			return false, 0, ErrInvalidBackground
		}
		return true, lambda, nil

	case scheduleUpdate:
		xTM, _ := d.pushPop(x)
		d.update(xTM)
		d.t--
		if d.t == 0 {
			d.schedule = scheduleTest
		}
		return false, 0, nil

	case scheduleCollect:
		d.buffer = append(d.buffer, x)
		d.t--
		if d.t == d.sleep {
			d.initialize()
			if d.sleep > 0 {
				d.schedule = scheduleUpdate
			} else {
				d.schedule = scheduleTest
			}
		}
		return false, 0, nil
	}
	panic("des: unreachable schedule state")
}
