package operations

import (
	json "github.com/goccy/go-json"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
)

// Operation defines the contract for all calculation operations. Each
// operation validates its payload, then executes against an engine
// bound to one tax year.
type Operation interface {
	Validate(props json.RawMessage) []model.CalculationMessage
	Execute(engine *calc.Engine, props json.RawMessage) (any, []model.CalculationMessage)
}

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelCritical, Code: code, Message: message}
}

func warning(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelWarning, Code: code, Message: message}
}

// noteWarnings translates the engine's non-fatal adjustments into
// WARNING messages.
func noteWarnings(notes calc.Notes, state string) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	if notes.UnknownState {
		msgs = append(msgs, warning(model.CodeUnknownStateDefaultRate,
			"State "+state+" is not in the rate table; the default flat rate was applied"))
	}
	if notes.ApproximatedFilingStatus {
		msgs = append(msgs, warning(model.CodeFilingStatusApproximated,
			"Filing status was approximated with the SINGLE bracket table"))
	}
	if notes.Capped401k {
		msgs = append(msgs, warning(model.CodeContribution401kCapped,
			"401k contribution was capped at the statutory elective-deferral limit"))
	}
	if notes.CappedHSA {
		msgs = append(msgs, warning(model.CodeContributionHSACapped,
			"HSA contribution was capped at the statutory individual limit"))
	}
	return msgs
}

func validFilingStatus(s model.FilingStatus) bool {
	switch s {
	case "", model.FilingSingle, model.FilingMarriedJointly,
		model.FilingMarriedSeparately, model.FilingHeadOfHousehold:
		return true
	}
	return false
}
