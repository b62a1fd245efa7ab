package model

import "math"

// Adjustment is a requested quantity change: either an absolute target or
// a relative delta. Both resolve to a single non-negative target before
// reaching the ledger, so the write path only ever sees one shape.
type Adjustment struct {
	absolute bool
	value    float64
}

// Absolute returns an adjustment that sets the quantity to value.
func Absolute(value float64) Adjustment {
	return Adjustment{absolute: true, value: value}
}

// Relative returns an adjustment that shifts the quantity by delta.
func Relative(delta float64) Adjustment {
	return Adjustment{value: delta}
}

// Resolve computes the target quantity given the current one, clamped at
// zero so stock can never go negative.
func (a Adjustment) Resolve(current float64) float64 {
	target := a.value
	if !a.absolute {
		target = current + a.value
	}
	return math.Max(0, target)
}
