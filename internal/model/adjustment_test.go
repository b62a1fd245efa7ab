package model

import "testing"

func TestAbsoluteAdjustment(t *testing.T) {
	if got := Absolute(3).Resolve(10); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := Absolute(0).Resolve(10); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestRelativeAdjustment(t *testing.T) {
	if got := Relative(-4).Resolve(10); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
	if got := Relative(2.5).Resolve(10); got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
}

func TestAdjustmentClampsAtZero(t *testing.T) {
	if got := Relative(-20).Resolve(10); got != 0 {
		t.Errorf("expected clamp to 0, got %v", got)
	}
	if got := Absolute(-5).Resolve(10); got != 0 {
		t.Errorf("expected clamp to 0, got %v", got)
	}
}
