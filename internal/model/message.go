package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes emitted during validation and execution.
const (
	CodeInvalidRate              = "INVALID_RATE"
	CodeInvalidHours             = "INVALID_HOURS"
	CodeInvalidDuration          = "INVALID_DURATION"
	CodeInvalidOvertimePolicy    = "INVALID_OVERTIME_POLICY"
	CodeInvalidSalary            = "INVALID_SALARY"
	CodeUnknownPayPeriod         = "UNKNOWN_PAY_PERIOD"
	CodeUnknownFilingStatus      = "UNKNOWN_FILING_STATUS"
	CodeUnknownContractType      = "UNKNOWN_CONTRACT_TYPE"
	CodeUnknownOperation         = "UNKNOWN_OPERATION"
	CodeInvalidProperties        = "INVALID_PROPERTIES"
	CodeEmptyComparison          = "EMPTY_COMPARISON"
	CodeUnknownStateDefaultRate  = "UNKNOWN_STATE_DEFAULT_RATE"
	CodeFilingStatusApproximated = "FILING_STATUS_APPROXIMATED"
	CodeContribution401kCapped   = "CONTRIBUTION_401K_CAPPED"
	CodeContributionHSACapped    = "CONTRIBUTION_HSA_CAPPED"
)
