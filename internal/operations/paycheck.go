package operations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
)

type PaycheckCalculation struct{}

func (o *PaycheckCalculation) Validate(props json.RawMessage) []model.CalculationMessage {
	var in model.PaycheckInput
	if err := json.Unmarshal(props, &in); err != nil {
		return []model.CalculationMessage{critical(model.CodeInvalidProperties, "Invalid paycheck properties: "+err.Error())}
	}

	var msgs []model.CalculationMessage

	if in.GrossAnnualSalary < 0 {
		msgs = append(msgs, critical(model.CodeInvalidSalary,
			fmt.Sprintf("Gross annual salary must be non-negative, got %v", in.GrossAnnualSalary)))
	}
	if _, ok := in.PayPeriod.PeriodsPerYear(); !ok {
		msgs = append(msgs, critical(model.CodeUnknownPayPeriod,
			fmt.Sprintf("Unknown pay period: %q", in.PayPeriod)))
	}
	if in.FilingStatus == "" || !validFilingStatus(in.FilingStatus) {
		msgs = append(msgs, critical(model.CodeUnknownFilingStatus,
			fmt.Sprintf("Unknown filing status: %q", in.FilingStatus)))
	}

	return msgs
}

func (o *PaycheckCalculation) Execute(engine *calc.Engine, props json.RawMessage) (any, []model.CalculationMessage) {
	var in model.PaycheckInput
	json.Unmarshal(props, &in)

	result, notes, err := engine.Paycheck(in)
	if err != nil {
		return nil, []model.CalculationMessage{critical(model.CodeInvalidProperties, err.Error())}
	}
	return result, noteWarnings(notes, in.State)
}
