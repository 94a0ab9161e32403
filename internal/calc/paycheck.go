package calc

import (
	"fmt"

	"truerate-engine/internal/deductions"
	"truerate-engine/internal/model"
	"truerate-engine/internal/units"
)

// Paycheck produces one fully itemized paycheck from a standing salary.
// Taxes are computed on annualized taxable income and de-annualized
// back to the period.
func (e *Engine) Paycheck(in model.PaycheckInput) (model.PaycheckResult, Notes, error) {
	var notes Notes

	if in.GrossAnnualSalary < 0 {
		return model.PaycheckResult{}, notes, fmt.Errorf("%w: gross annual salary must be non-negative, got %v", ErrInvalidArgument, in.GrossAnnualSalary)
	}
	periodsPerYear, ok := in.PayPeriod.PeriodsPerYear()
	if !ok {
		return model.PaycheckResult{}, notes, fmt.Errorf("%w: unrecognized pay period %q", ErrInvalidArgument, in.PayPeriod)
	}

	periodicGross, err := units.Deannualize(in.GrossAnnualSalary, periodsPerYear)
	if err != nil {
		return model.PaycheckResult{}, notes, err
	}

	ded := deductions.Apply(periodicGross, periodsPerYear, in.Deductions, deductions.Limits{
		Limit401k: e.cfg.Limit401k,
		LimitHSA:  e.cfg.LimitHSA,
	})
	notes.Capped401k = ded.Capped401k
	notes.CappedHSA = ded.CappedHSA

	annualTaxable, err := units.Annualize(ded.TaxableIncome, periodsPerYear)
	if err != nil {
		return model.PaycheckResult{}, notes, err
	}

	federal, approximated, err := e.taxes.FederalDetail(annualTaxable, in.FilingStatus)
	if err != nil {
		return model.PaycheckResult{}, notes, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	notes.ApproximatedFilingStatus = approximated

	fica := e.taxes.CalculateFICA(annualTaxable)
	state, known := e.taxes.State(annualTaxable, in.State)
	notes.UnknownState = !known

	taxes := roundTaxes(model.TaxBreakdown{
		Federal:            federal / periodsPerYear,
		State:              state / periodsPerYear,
		SocialSecurity:     fica.SocialSecurity / periodsPerYear,
		Medicare:           fica.Medicare / periodsPerYear,
		AdditionalMedicare: fica.AdditionalMedicare / periodsPerYear,
	})
	breakdown := roundDeductions(ded.Breakdown())

	gross := roundCents(periodicGross)
	additional := roundCents(in.AdditionalWithholding)
	if additional < 0 {
		additional = 0
	}

	net := gross - taxes.Total - breakdown.Total - additional

	var effectiveRate float64
	if gross > 0 {
		effectiveRate = round4((gross - net) / gross)
	}

	return model.PaycheckResult{
		GrossPay:              gross,
		NetPay:                roundCents(net),
		Taxes:                 taxes,
		Deductions:            breakdown,
		AdditionalWithholding: additional,
		EffectiveTaxRate:      effectiveRate,
	}, notes, nil
}
