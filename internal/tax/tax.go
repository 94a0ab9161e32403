// Package tax computes the statutory tax components on annualized
// taxable income. All methods are pure functions of the income and the
// injected tax-year tables.
package tax

import (
	"errors"
	"fmt"

	"truerate-engine/internal/model"
	"truerate-engine/internal/taxconfig"
)

var ErrUnknownFilingStatus = errors.New("unknown filing status")

// Calculator evaluates federal, FICA, and state taxes against one tax
// year's tables.
type Calculator struct {
	cfg *taxconfig.Config
}

func New(cfg *taxconfig.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// FICA is the Social Security and Medicare split of payroll tax.
type FICA struct {
	SocialSecurity     float64
	Medicare           float64
	AdditionalMedicare float64
}

// bracketsFor resolves the bracket table for a filing status.
// MARRIED_FILING_SEPARATELY and HEAD_OF_HOUSEHOLD reuse the SINGLE
// table; approximated reports when that substitution happened so
// callers can surface it.
func (c *Calculator) bracketsFor(status model.FilingStatus) (brackets []taxconfig.Bracket, approximated bool, err error) {
	switch status {
	case model.FilingSingle, model.FilingMarriedJointly:
		return c.cfg.FederalBrackets[status], false, nil
	case model.FilingMarriedSeparately, model.FilingHeadOfHousehold:
		return c.cfg.FederalBrackets[model.FilingSingle], true, nil
	}
	return nil, false, fmt.Errorf("%w: %q", ErrUnknownFilingStatus, status)
}

// Federal computes progressive federal tax on annual taxable income.
func (c *Calculator) Federal(annualIncome float64, status model.FilingStatus) (float64, error) {
	amount, _, err := c.FederalDetail(annualIncome, status)
	return amount, err
}

// FederalDetail additionally reports whether the filing status was
// approximated with the SINGLE bracket table.
func (c *Calculator) FederalDetail(annualIncome float64, status model.FilingStatus) (float64, bool, error) {
	brackets, approximated, err := c.bracketsFor(status)
	if err != nil {
		return 0, false, err
	}

	var total float64
	for _, b := range brackets {
		upper := b.Max
		if upper == 0 || upper > annualIncome {
			upper = annualIncome
		}
		if span := upper - b.Min; span > 0 {
			total += span * b.Rate
		}
	}
	return total, approximated, nil
}

// CalculateFICA computes Social Security (capped at the wage base),
// Medicare, and the additional-Medicare surtax above the threshold.
func (c *Calculator) CalculateFICA(annualIncome float64) FICA {
	if annualIncome < 0 {
		annualIncome = 0
	}

	ssBase := annualIncome
	if ssBase > c.cfg.SocialSecurityWageBase {
		ssBase = c.cfg.SocialSecurityWageBase
	}

	var surtax float64
	if over := annualIncome - c.cfg.AdditionalMedicareThreshold; over > 0 {
		surtax = over * c.cfg.AdditionalMedicareRate
	}

	return FICA{
		SocialSecurity:     ssBase * c.cfg.SocialSecurityRate,
		Medicare:           annualIncome * c.cfg.MedicareRate,
		AdditionalMedicare: surtax,
	}
}

// State computes flat state tax. The second return reports whether the
// code was present in the table; unknown codes are charged the default
// flat rate rather than rejected, so new jurisdictions degrade
// gracefully.
func (c *Calculator) State(annualIncome float64, stateCode string) (float64, bool) {
	if annualIncome < 0 {
		annualIncome = 0
	}
	rate, known := c.cfg.StateRates[stateCode]
	if !known {
		rate = c.cfg.DefaultStateRate
	}
	return annualIncome * rate, known
}
