package model

// ContractType identifies how a contract's base rate is quoted.
type ContractType string

const (
	ContractHourly ContractType = "HOURLY"
	ContractDaily  ContractType = "DAILY"
	ContractSalary ContractType = "SALARY"
)

// OvertimePolicy describes when hours above a weekly threshold are paid
// at a multiplier of the base rate. Only meaningful for HOURLY contracts.
type OvertimePolicy struct {
	Enabled             bool    `json:"enabled"`
	Multiplier          float64 `json:"multiplier"`
	WeeklyHourThreshold float64 `json:"weekly_hour_threshold"`
}

// ExpenseReimbursements are monthly non-taxable stipends passed through
// to net pay. Amounts are dollars per month.
type ExpenseReimbursements struct {
	Housing   float64 `json:"housing,omitempty"`
	Travel    float64 `json:"travel,omitempty"`
	Licensure float64 `json:"licensure,omitempty"`
	Other     float64 `json:"other,omitempty"`
}

// Total returns the combined monthly stipend amount.
func (e ExpenseReimbursements) Total() float64 {
	return e.Housing + e.Travel + e.Licensure + e.Other
}

// ContractBenefits describes the benefit package attached to a contract.
// Retirement401k is a fraction of gross pay; HealthInsurance is a
// monthly pre-tax premium. MalpracticeInsurance and CME are monthly
// employer-paid values reported informationally.
type ContractBenefits struct {
	HealthInsurance      float64 `json:"health_insurance,omitempty"`
	MalpracticeInsurance float64 `json:"malpractice_insurance,omitempty"`
	Retirement401k       float64 `json:"retirement_401k,omitempty"`
	CME                  float64 `json:"cme,omitempty"`
}

// ContractOffer is a labeled contract inside a comparison request.
type ContractOffer struct {
	Label string `json:"label,omitempty"`
	ContractInput
}

// ComparisonInput is the payload of a compare_offers operation.
type ComparisonInput struct {
	Offers []ContractOffer `json:"offers"`
}

// ContractInput is the full compensation structure of a single offer.
type ContractInput struct {
	ContractType  ContractType           `json:"contract_type"`
	Rate          float64                `json:"rate"`
	HoursPerWeek  float64                `json:"hours_per_week,omitempty"`
	DaysPerWeek   float64                `json:"days_per_week,omitempty"`
	DurationWeeks float64                `json:"duration_weeks"`
	Location      string                 `json:"location"`
	FilingStatus  FilingStatus           `json:"filing_status,omitempty"`
	Overtime      *OvertimePolicy        `json:"overtime,omitempty"`
	Expenses      *ExpenseReimbursements `json:"expenses,omitempty"`
	Benefits      *ContractBenefits      `json:"benefits,omitempty"`
}
