package model

import "encoding/json"

// CalculationRequest is the envelope for a single calculation. The
// operation name selects a registered handler; Properties carries the
// operation-specific payload.
type CalculationRequest struct {
	RequestID  string          `json:"request_id,omitempty"`
	TaxYear    int             `json:"tax_year,omitempty"`
	Operation  string          `json:"operation"`
	Properties json.RawMessage `json:"properties"`
}

// Operation names accepted by the engine.
const (
	OpContractCalculation = "contract_calculation"
	OpPaycheckCalculation = "paycheck_calculation"
	OpTaxBreakdown        = "tax_breakdown"
	OpCompareOffers       = "compare_offers"
)
