package model

import "testing"

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		min      float64
		expected string
	}{
		{"out of stock with threshold", 0, 5, StatusLow},
		{"exactly at threshold", 5, 5, StatusLow},
		{"just above threshold", 6, 5, StatusMedium},
		{"exactly at medium boundary", 7.5, 5, StatusMedium},
		{"above medium boundary", 8, 5, StatusGood},
		{"no threshold configured", 0, 0, StatusGood},
		{"plenty with no threshold", 100, 0, StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockStatus(tt.current, tt.min); got != tt.expected {
				t.Errorf("StockStatus(%v, %v) = %q, want %q", tt.current, tt.min, got, tt.expected)
			}
		})
	}
}
