// Package deductions turns a raw deduction election into per-period
// dollar amounts and a taxable-income reduction. Inputs are clamped to
// valid ranges instead of rejected: this is a planning tool, and a
// slightly-off election should produce the nearest legal answer, not an
// error.
package deductions

import "truerate-engine/internal/model"

// Result is the processed deduction set for one pay period.
type Result struct {
	Retirement401k  float64
	HealthInsurance float64
	Dental          float64
	Vision          float64
	FSA             float64
	DependentCare   float64
	HSA             float64
	Other           float64

	TotalPreTax  float64
	TotalPostTax float64

	// TaxableIncome is the per-period gross after pre-tax deductions.
	TaxableIncome float64

	// Capped401k / CappedHSA report that the election exceeded the
	// statutory annual limit and was reduced.
	Capped401k bool
	CappedHSA  bool
}

type Limits struct {
	Limit401k float64
	LimitHSA  float64
}

// Apply processes a deduction election against one period's gross pay.
// periodsPerYear annualizes the capped categories; it must be positive.
func Apply(grossPerPeriod, periodsPerYear float64, spec model.DeductionSpec, limits Limits) Result {
	if grossPerPeriod < 0 {
		grossPerPeriod = 0
	}

	fraction := clamp01(spec.Retirement401k)
	retirement := grossPerPeriod * fraction

	var capped401k bool
	if cap401k := limits.Limit401k / periodsPerYear; retirement > cap401k {
		retirement = cap401k
		capped401k = true
	}

	hsa := clampNonNegative(spec.HSA)
	var cappedHSA bool
	if capHSA := limits.LimitHSA / periodsPerYear; hsa > capHSA {
		hsa = capHSA
		cappedHSA = true
	}

	r := Result{
		Retirement401k:  retirement,
		HealthInsurance: clampNonNegative(spec.HealthInsurance),
		Dental:          clampNonNegative(spec.Dental),
		Vision:          clampNonNegative(spec.Vision),
		FSA:             clampNonNegative(spec.FSA),
		DependentCare:   clampNonNegative(spec.DependentCare),
		HSA:             hsa,
		Other:           clampNonNegative(spec.Other),
		Capped401k:      capped401k,
		CappedHSA:       cappedHSA,
	}

	r.TotalPreTax = r.Retirement401k + r.HealthInsurance + r.Dental +
		r.Vision + r.FSA + r.DependentCare + r.HSA
	r.TotalPostTax = r.Other

	r.TaxableIncome = grossPerPeriod - r.TotalPreTax
	if r.TaxableIncome < 0 {
		r.TaxableIncome = 0
	}

	return r
}

// Breakdown converts the processed set into the result-facing shape.
func (r Result) Breakdown() model.DeductionBreakdown {
	return model.DeductionBreakdown{
		Retirement401k:  r.Retirement401k,
		HealthInsurance: r.HealthInsurance,
		Dental:          r.Dental,
		Vision:          r.Vision,
		FSA:             r.FSA,
		DependentCare:   r.DependentCare,
		HSA:             r.HSA,
		Other:           r.Other,
		TotalPreTax:     r.TotalPreTax,
		TotalPostTax:    r.TotalPostTax,
		Total:           r.TotalPreTax + r.TotalPostTax,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
