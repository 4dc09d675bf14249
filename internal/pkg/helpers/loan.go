package helpers

import "math"

// BaseEligibilityScore computes the credit-signal portion of a loan
// eligibility score: base 50, banded credit-score bonus, income verification
// and cosigner bonuses, capped at 100. Academic adjustments are layered on
// top by the loan service.
func BaseEligibilityScore(creditScore int, incomeVerification, cosigner bool) float64 {
	score := 50.0

	switch {
	case creditScore >= 750:
		score += 25
	case creditScore >= 700:
		score += 20
	case creditScore >= 650:
		score += 15
	case creditScore >= 600:
		score += 10
	}

	if incomeVerification {
		score += 10
	}

	if cosigner {
		score += 15
	}

	return math.Min(100, score)
}

// MonthlyPayment computes the amortized monthly payment for a loan:
// P*r(1+r)^n / ((1+r)^n - 1), with the zero-rate case paying principal/n.
// rate is the annual interest rate in percent. The result is rounded to
// cents.
func MonthlyPayment(principal, rate float64, termYears int) float64 {
	monthlyRate := (rate / 100) / 12
	numPayments := float64(termYears * 12)

	if monthlyRate == 0 {
		return roundCents(principal / numPayments)
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	payment := principal * (monthlyRate * factor) / (factor - 1)
	return roundCents(payment)
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Clamp bounds a score to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, value))
}
