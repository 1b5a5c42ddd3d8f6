package sim

// SimTime is the simulation's absolute clock. Plain float64 loses
// precision after roughly 1e8 accumulated events (base spec §9); rather
// than escalate to a software extended-precision type (the reference
// implementation's ~80-bit long double), this keeps a Kahan-compensated
// running sum alongside the float64 value itself, which is enough to hold
// the error term that summation would otherwise drop.
type SimTime struct {
	value float64
	comp  float64 // running compensation (Kahan/Neumaier summation)
}

// NewSimTime returns a SimTime initialised to t.
func NewSimTime(t float64) SimTime {
	return SimTime{value: t}
}

// Value returns the current time as a float64.
func (s SimTime) Value() float64 { return s.value }

// Advance returns a new SimTime equal to s+dt, compensating for the
// rounding error accumulated so far (Neumaier's variant of Kahan
// summation, which also handles |dt| > |s|).
func (s SimTime) Advance(dt float64) SimTime {
	t := s.value + dt
	var comp float64
	if abs(s.value) >= abs(dt) {
		comp = (s.value - t) + dt
	} else {
		comp = (dt - t) + s.value
	}
	return SimTime{value: t, comp: s.comp + comp}
}

// Compensated returns value+comp, the best available estimate of the true
// accumulated time.
func (s SimTime) Compensated() float64 { return s.value + s.comp }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
