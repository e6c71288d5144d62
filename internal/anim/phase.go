package anim

import "math"

const (
	twoPi = 2 * math.Pi

	// AngleDigits is the number of significant digits kept after each step.
	AngleDigits = 4
)

// Phase is the shared oscillator parameter and the frame counters that go with it.
type Phase struct {
	Angle       float64
	Frame       uint64
	Revolutions uint64
}

// Step advances the angle by stepSize, rounded to AngleDigits significant
// digits so repeated addition does not drift. Past 2π the angle restarts at 0.
func (p Phase) Step(stepSize float64) Phase {
	p.Frame++
	p.Angle = RoundSignificant(p.Angle+stepSize, AngleDigits)
	if p.Angle > twoPi {
		p.Angle = 0
		p.Revolutions++
	}
	return p
}

// RoundSignificant rounds v to the given number of significant digits.
func RoundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	shift := digits - 1 - exp
	if shift < 0 {
		p := math.Pow(10, float64(-shift))
		return math.Round(v/p) * p
	}
	p := math.Pow(10, float64(shift))
	return math.Round(v*p) / p
}
