package operations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
)

type ContractCalculation struct{}

func (o *ContractCalculation) Validate(props json.RawMessage) []model.CalculationMessage {
	var in model.ContractInput
	if err := json.Unmarshal(props, &in); err != nil {
		return []model.CalculationMessage{critical(model.CodeInvalidProperties, "Invalid contract properties: "+err.Error())}
	}
	return validateContractInput(in)
}

func (o *ContractCalculation) Execute(engine *calc.Engine, props json.RawMessage) (any, []model.CalculationMessage) {
	var in model.ContractInput
	json.Unmarshal(props, &in)

	result, notes, err := engine.Contract(in)
	if err != nil {
		return nil, []model.CalculationMessage{critical(model.CodeInvalidProperties, err.Error())}
	}
	return result, noteWarnings(notes, in.Location)
}

// validateContractInput enumerates every invariant of a contract input
// with a precise message code per violation.
func validateContractInput(in model.ContractInput) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	switch in.ContractType {
	case model.ContractHourly, model.ContractDaily, model.ContractSalary:
	default:
		msgs = append(msgs, critical(model.CodeUnknownContractType,
			fmt.Sprintf("Unknown contract type: %q", in.ContractType)))
		return msgs
	}

	if in.Rate <= 0 {
		msgs = append(msgs, critical(model.CodeInvalidRate,
			fmt.Sprintf("Rate must be positive, got %v", in.Rate)))
	}
	if in.HoursPerWeek < 0 {
		msgs = append(msgs, critical(model.CodeInvalidHours,
			fmt.Sprintf("Hours per week must be non-negative, got %v", in.HoursPerWeek)))
	}
	if in.DaysPerWeek < 0 {
		msgs = append(msgs, critical(model.CodeInvalidHours,
			fmt.Sprintf("Days per week must be non-negative, got %v", in.DaysPerWeek)))
	}
	if in.DurationWeeks < 1 {
		msgs = append(msgs, critical(model.CodeInvalidDuration,
			fmt.Sprintf("Duration must be at least one week, got %v", in.DurationWeeks)))
	}
	if in.Overtime != nil && in.Overtime.Enabled {
		if in.Overtime.Multiplier < 1 {
			msgs = append(msgs, critical(model.CodeInvalidOvertimePolicy,
				fmt.Sprintf("Overtime multiplier must be at least 1, got %v", in.Overtime.Multiplier)))
		}
		if in.Overtime.WeeklyHourThreshold <= 0 {
			msgs = append(msgs, critical(model.CodeInvalidOvertimePolicy,
				fmt.Sprintf("Overtime threshold must be positive, got %v", in.Overtime.WeeklyHourThreshold)))
		}
	}
	if !validFilingStatus(in.FilingStatus) {
		msgs = append(msgs, critical(model.CodeUnknownFilingStatus,
			fmt.Sprintf("Unknown filing status: %q", in.FilingStatus)))
	}

	return msgs
}
