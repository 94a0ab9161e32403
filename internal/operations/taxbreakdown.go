package operations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
)

type TaxBreakdown struct{}

func (o *TaxBreakdown) Validate(props json.RawMessage) []model.CalculationMessage {
	var in model.TaxBreakdownInput
	if err := json.Unmarshal(props, &in); err != nil {
		return []model.CalculationMessage{critical(model.CodeInvalidProperties, "Invalid tax breakdown properties: "+err.Error())}
	}

	var msgs []model.CalculationMessage
	if in.AnnualIncome < 0 {
		msgs = append(msgs, critical(model.CodeInvalidSalary,
			fmt.Sprintf("Annual income must be non-negative, got %v", in.AnnualIncome)))
	}
	if !validFilingStatus(in.FilingStatus) {
		msgs = append(msgs, critical(model.CodeUnknownFilingStatus,
			fmt.Sprintf("Unknown filing status: %q", in.FilingStatus)))
	}
	return msgs
}

func (o *TaxBreakdown) Execute(engine *calc.Engine, props json.RawMessage) (any, []model.CalculationMessage) {
	var in model.TaxBreakdownInput
	json.Unmarshal(props, &in)

	result, notes, err := engine.TaxBreakdown(in)
	if err != nil {
		return nil, []model.CalculationMessage{critical(model.CodeInvalidProperties, err.Error())}
	}
	return result, noteWarnings(notes, in.State)
}
