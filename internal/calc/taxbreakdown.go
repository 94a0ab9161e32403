package calc

import (
	"fmt"

	"truerate-engine/internal/model"
)

// TaxBreakdown itemizes the annual tax components on their own, for
// callers that want the split without a full paycheck or contract run.
func (e *Engine) TaxBreakdown(in model.TaxBreakdownInput) (model.TaxBreakdownResult, Notes, error) {
	var notes Notes

	if in.AnnualIncome < 0 {
		return model.TaxBreakdownResult{}, notes, fmt.Errorf("%w: annual income must be non-negative, got %v", ErrInvalidArgument, in.AnnualIncome)
	}

	status := in.FilingStatus
	if status == "" {
		status = model.FilingSingle
	}

	federal, approximated, err := e.taxes.FederalDetail(in.AnnualIncome, status)
	if err != nil {
		return model.TaxBreakdownResult{}, notes, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	notes.ApproximatedFilingStatus = approximated

	fica := e.taxes.CalculateFICA(in.AnnualIncome)
	state, known := e.taxes.State(in.AnnualIncome, in.State)
	notes.UnknownState = !known

	taxes := roundTaxes(model.TaxBreakdown{
		Federal:            federal,
		State:              state,
		SocialSecurity:     fica.SocialSecurity,
		Medicare:           fica.Medicare,
		AdditionalMedicare: fica.AdditionalMedicare,
	})

	var effectiveRate float64
	if in.AnnualIncome > 0 {
		effectiveRate = round4(taxes.Total / in.AnnualIncome)
	}

	return model.TaxBreakdownResult{
		AnnualIncome:     roundCents(in.AnnualIncome),
		Taxes:            taxes,
		EffectiveTaxRate: effectiveRate,
	}, notes, nil
}
