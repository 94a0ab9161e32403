package operations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
)

type CompareOffers struct{}

func (o *CompareOffers) Validate(props json.RawMessage) []model.CalculationMessage {
	var in model.ComparisonInput
	if err := json.Unmarshal(props, &in); err != nil {
		return []model.CalculationMessage{critical(model.CodeInvalidProperties, "Invalid comparison properties: "+err.Error())}
	}

	if len(in.Offers) == 0 {
		return []model.CalculationMessage{critical(model.CodeEmptyComparison, "At least one offer is required")}
	}

	var msgs []model.CalculationMessage
	for i, offer := range in.Offers {
		for _, m := range validateContractInput(offer.ContractInput) {
			m.Message = fmt.Sprintf("Offer %d: %s", i, m.Message)
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func (o *CompareOffers) Execute(engine *calc.Engine, props json.RawMessage) (any, []model.CalculationMessage) {
	var in model.ComparisonInput
	json.Unmarshal(props, &in)

	result, notes, err := engine.Compare(in.Offers)
	if err != nil {
		return nil, []model.CalculationMessage{critical(model.CodeInvalidProperties, err.Error())}
	}

	// Location only matters for the unknown-state warning text; use the
	// first offer's.
	return result, noteWarnings(notes, in.Offers[0].Location)
}
