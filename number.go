package lcd

import "strconv"

// NumberField is an integer value a button or text node edits in place.
//
// While the node is in edit mode each step moves Value by Step. Without Wrap
// the value stops at Min and Max. With Wrap, stepping past one bound carries
// the overshoot over to the other bound: with Min 0, Max 10 and Step 3,
// stepping up from 9 gives 2.
type NumberField struct {
	Value int
	Min   int
	Max   int
	Step  int
	Wrap  bool

	// Format renders Value as the node label. Defaults to decimal.
	Format func(int) string

	// OnChange is called with the committed value when edit mode ends.
	OnChange func(int)
}

// Adjust moves Value by steps times Step and returns the new value.
func (f *NumberField) Adjust(steps int) int {
	step := f.Step
	if step == 0 {
		step = 1
	}
	f.Value = f.bound(f.Value + steps*step)
	return f.Value
}

// bound brings v into [Min, Max] by clamping or wrapping.
func (f *NumberField) bound(v int) int {
	lo, hi := f.Min, f.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if v >= lo && v <= hi {
		return v
	}
	if !f.Wrap {
		return min(max(v, lo), hi)
	}

	span := hi - lo
	if span <= 0 {
		return lo
	}
	if v > hi {
		over := ((v-hi)-1)%span + 1
		return lo + over
	}
	under := ((lo-v)-1)%span + 1
	return hi - under
}

// Label returns Value formatted for display.
func (f *NumberField) Label() string {
	if f.Format != nil {
		return f.Format(f.Value)
	}
	return strconv.Itoa(f.Value)
}
