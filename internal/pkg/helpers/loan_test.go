package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseEligibilityScore(t *testing.T) {
	tests := []struct {
		name               string
		creditScore        int
		incomeVerification bool
		cosigner           bool
		expected           float64
	}{
		{"no signals", 0, false, false, 50},
		{"credit 600 band", 600, false, false, 60},
		{"credit 650 band", 650, false, false, 65},
		{"credit 700 band", 700, false, false, 70},
		{"credit 750 band", 750, false, false, 75},
		{"below lowest band", 599, false, false, 50},
		{"income verification bonus", 620, true, false, 70},
		{"cosigner bonus", 620, false, true, 75},
		{"everything capped at 100", 800, true, true, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BaseEligibilityScore(tc.creditScore, tc.incomeVerification, tc.cosigner)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		termYears int
		expected  float64
	}{
		{"federal tier", 20000, 4.99, 10, 212.03},
		{"private tier", 25000, 6.5, 15, 217.78},
		{"scholarship backed tier", 15000, 3.75, 10, 150.09},
		{"zero rate pays principal over term", 12000, 0, 10, 100.00},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyPayment(tc.principal, tc.rate, tc.termYears)
			assert.InDelta(t, tc.expected, got, 0.005)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(120, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}
