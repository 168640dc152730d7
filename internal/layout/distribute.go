package layout

// Distribute splits slack pixels among the fill entries of fill.
//
// Each fill entry receives slack/n extra pixels (n = number of fill entries)
// and the last fill entry additionally receives the remainder, so the
// returned shares always sum to exactly slack. Non-fill entries get 0.
// Returns nil when no entry fills.
//
// Division truncates toward zero, so a negative slack shrinks fill entries
// by the same rule.
func Distribute(slack int, fill []bool) []int {
	n := 0
	last := -1
	for i, f := range fill {
		if f {
			n++
			last = i
		}
	}
	if n == 0 {
		return nil
	}

	share := slack / n
	extra := make([]int, len(fill))
	for i, f := range fill {
		if f {
			extra[i] = share
		}
	}
	extra[last] += slack - share*n
	return extra
}

// LeadingOffset returns the offset that centers content when nothing fills.
func LeadingOffset(slack int) int {
	return slack / 2
}

// AlignOffset positions an item inside free pixels of cross-axis space.
// align is -1 (start), 0 (center) or 1 (end). The result is
// ((1+align)*free)/2 with truncating integer division.
func AlignOffset(align, free int) int {
	return ((1 + align) * free) / 2
}
