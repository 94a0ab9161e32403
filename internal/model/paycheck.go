package model

// PayPeriod is the paycheck cadence.
type PayPeriod string

const (
	PayWeekly      PayPeriod = "WEEKLY"
	PayBiweekly    PayPeriod = "BIWEEKLY"
	PaySemimonthly PayPeriod = "SEMIMONTHLY"
	PayMonthly     PayPeriod = "MONTHLY"
)

// PeriodsPerYear returns how many paychecks a year holds for the period,
// or false for an unrecognized period.
func (p PayPeriod) PeriodsPerYear() (float64, bool) {
	switch p {
	case PayWeekly:
		return 52, true
	case PayBiweekly:
		return 26, true
	case PaySemimonthly:
		return 24, true
	case PayMonthly:
		return 12, true
	}
	return 0, false
}

// FilingStatus is the federal tax filing status.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "SINGLE"
	FilingMarriedJointly    FilingStatus = "MARRIED_FILING_JOINTLY"
	FilingMarriedSeparately FilingStatus = "MARRIED_FILING_SEPARATELY"
	FilingHeadOfHousehold   FilingStatus = "HEAD_OF_HOUSEHOLD"
)

// DeductionSpec lists per-paycheck deduction elections. All amounts are
// dollars per paycheck except Retirement401k, which is a fraction of
// gross pay. Other is applied after tax.
type DeductionSpec struct {
	Retirement401k  float64 `json:"retirement_401k,omitempty"`
	HealthInsurance float64 `json:"health_insurance,omitempty"`
	Dental          float64 `json:"dental,omitempty"`
	Vision          float64 `json:"vision,omitempty"`
	FSA             float64 `json:"fsa,omitempty"`
	DependentCare   float64 `json:"dependent_care,omitempty"`
	HSA             float64 `json:"hsa,omitempty"`
	Other           float64 `json:"other,omitempty"`
}

// PaycheckInput describes a standing salary to break into one paycheck.
type PaycheckInput struct {
	GrossAnnualSalary     float64       `json:"gross_annual_salary"`
	PayPeriod             PayPeriod     `json:"pay_period"`
	FilingStatus          FilingStatus  `json:"filing_status"`
	State                 string        `json:"state"`
	Allowances            int           `json:"allowances,omitempty"`
	Deductions            DeductionSpec `json:"deductions,omitempty"`
	AdditionalWithholding float64       `json:"additional_withholding,omitempty"`
}
