// Package calc contains the paycheck and contract calculation engines.
// Both are stateless: an Engine wraps one tax year's tables and every
// calculation is a pure function of its input.
package calc

import (
	"errors"
	"math"

	"truerate-engine/internal/model"
	"truerate-engine/internal/tax"
	"truerate-engine/internal/taxconfig"
)

var ErrInvalidArgument = errors.New("invalid argument")

type Engine struct {
	cfg   *taxconfig.Config
	taxes *tax.Calculator
}

func New(cfg *taxconfig.Config) *Engine {
	return &Engine{cfg: cfg, taxes: tax.New(cfg)}
}

// Notes reports the non-fatal adjustments made during a calculation so
// the caller can surface them as warnings.
type Notes struct {
	Capped401k               bool
	CappedHSA                bool
	UnknownState             bool
	ApproximatedFilingStatus bool
}

func (n *Notes) merge(other Notes) {
	n.Capped401k = n.Capped401k || other.Capped401k
	n.CappedHSA = n.CappedHSA || other.CappedHSA
	n.UnknownState = n.UnknownState || other.UnknownState
	n.ApproximatedFilingStatus = n.ApproximatedFilingStatus || other.ApproximatedFilingStatus
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// roundTaxes rounds each component to cents and recomputes the total
// from the rounded parts, keeping the net-pay identity exact.
func roundTaxes(t model.TaxBreakdown) model.TaxBreakdown {
	t.Federal = roundCents(t.Federal)
	t.State = roundCents(t.State)
	t.SocialSecurity = roundCents(t.SocialSecurity)
	t.Medicare = roundCents(t.Medicare)
	t.AdditionalMedicare = roundCents(t.AdditionalMedicare)
	t.Total = t.Federal + t.State + t.SocialSecurity + t.Medicare + t.AdditionalMedicare
	return t
}

func roundDeductions(d model.DeductionBreakdown) model.DeductionBreakdown {
	d.Retirement401k = roundCents(d.Retirement401k)
	d.HealthInsurance = roundCents(d.HealthInsurance)
	d.Dental = roundCents(d.Dental)
	d.Vision = roundCents(d.Vision)
	d.FSA = roundCents(d.FSA)
	d.DependentCare = roundCents(d.DependentCare)
	d.HSA = roundCents(d.HSA)
	d.Other = roundCents(d.Other)
	d.TotalPreTax = d.Retirement401k + d.HealthInsurance + d.Dental +
		d.Vision + d.FSA + d.DependentCare + d.HSA
	d.TotalPostTax = d.Other
	d.Total = d.TotalPreTax + d.TotalPostTax
	return d
}
