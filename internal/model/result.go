package model

// TaxBreakdown itemizes tax withholding for the period being evaluated.
type TaxBreakdown struct {
	Federal            float64 `json:"federal"`
	State              float64 `json:"state"`
	SocialSecurity     float64 `json:"social_security"`
	Medicare           float64 `json:"medicare"`
	AdditionalMedicare float64 `json:"additional_medicare"`
	Total              float64 `json:"total"`
}

// DeductionBreakdown itemizes pre- and post-tax deductions for the
// period being evaluated.
type DeductionBreakdown struct {
	Retirement401k  float64 `json:"retirement_401k"`
	HealthInsurance float64 `json:"health_insurance"`
	Dental          float64 `json:"dental"`
	Vision          float64 `json:"vision"`
	FSA             float64 `json:"fsa"`
	DependentCare   float64 `json:"dependent_care"`
	HSA             float64 `json:"hsa"`
	Other           float64 `json:"other"`
	TotalPreTax     float64 `json:"total_pre_tax"`
	TotalPostTax    float64 `json:"total_post_tax"`
	Total           float64 `json:"total"`
}

// BenefitBreakdown reports non-wage value attached to a contract.
// ExpenseReimbursements is a non-taxable pass-through added to net pay;
// the employer-paid values are informational only.
type BenefitBreakdown struct {
	ExpenseReimbursements float64 `json:"expense_reimbursements"`
	Housing               float64 `json:"housing"`
	Travel                float64 `json:"travel"`
	Licensure             float64 `json:"licensure"`
	Other                 float64 `json:"other"`
	MalpracticeInsurance  float64 `json:"malpractice_insurance"`
	CME                   float64 `json:"cme"`
}

// PayBreakdown splits gross pay into its regular and overtime parts.
type PayBreakdown struct {
	RegularPay  float64 `json:"regular_pay"`
	OvertimePay float64 `json:"overtime_pay"`
}

// PaycheckResult is one paycheck, fully itemized.
type PaycheckResult struct {
	GrossPay              float64            `json:"gross_pay"`
	NetPay                float64            `json:"net_pay"`
	Taxes                 TaxBreakdown       `json:"taxes"`
	Deductions            DeductionBreakdown `json:"deductions"`
	AdditionalWithholding float64            `json:"additional_withholding"`
	EffectiveTaxRate      float64            `json:"effective_tax_rate"`
}

// ContractResult is a contract evaluated over its full duration.
type ContractResult struct {
	GrossPay         float64            `json:"gross_pay"`
	NetPay           float64            `json:"net_pay"`
	Taxes            TaxBreakdown       `json:"taxes"`
	Deductions       DeductionBreakdown `json:"deductions"`
	Benefits         BenefitBreakdown   `json:"benefits"`
	Breakdown        PayBreakdown       `json:"breakdown"`
	TotalHours       float64            `json:"total_hours"`
	AnnualEquivalent float64            `json:"annual_equivalent"`
	TrueHourlyRate   float64            `json:"true_hourly_rate"`
	EffectiveTaxRate float64            `json:"effective_tax_rate"`
}

// ComparedOffer is one contract inside a comparison, ranked by true
// hourly rate (rank 1 is best).
type ComparedOffer struct {
	Label              string         `json:"label,omitempty"`
	Rank               int            `json:"rank"`
	Result             ContractResult `json:"result"`
	TrueRateDelta      float64        `json:"true_rate_delta"`
	NetPayDelta        float64        `json:"net_pay_delta"`
	GrossPayDelta      float64        `json:"gross_pay_delta"`
	EffectiveRateDelta float64        `json:"effective_rate_delta"`
}

// ComparisonResult ranks a set of offers against the best one.
type ComparisonResult struct {
	BestOffer int             `json:"best_offer"`
	Offers    []ComparedOffer `json:"offers"`
}

// TaxBreakdownInput is the payload of a tax_breakdown operation.
type TaxBreakdownInput struct {
	AnnualIncome float64      `json:"annual_income"`
	FilingStatus FilingStatus `json:"filing_status"`
	State        string       `json:"state"`
}

// TaxBreakdownResult is the standalone itemized-tax view exposed for
// callers that do not need a full paycheck or contract calculation.
type TaxBreakdownResult struct {
	AnnualIncome     float64      `json:"annual_income"`
	Taxes            TaxBreakdown `json:"taxes"`
	EffectiveTaxRate float64      `json:"effective_tax_rate"`
}
