package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"truerate-engine/internal/calc"
	"truerate-engine/internal/model"
	"truerate-engine/internal/operations"
	"truerate-engine/internal/taxconfig"
)

// Process runs one calculation request end to end: resolve the tax
// year, dispatch to the registered operation, and wrap the outcome in
// the response envelope. A request either yields a complete result or
// a FAILURE outcome with critical messages; there is no partial result.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	cfg := taxconfig.ForYear(req.TaxYear)
	eng := calc.New(cfg)

	var allMessages []model.CalculationMessage
	var result any
	outcome := model.OutcomeSuccess

	op, ok := operations.Get(req.Operation)
	if !ok {
		allMessages = append(allMessages, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownOperation,
			Message: fmt.Sprintf("Unknown operation: %s", req.Operation),
		})
		outcome = model.OutcomeFailure
	} else {
		hasCritical := false
		for _, vm := range op.Validate(req.Properties) {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if !hasCritical {
			var execMsgs []model.CalculationMessage
			result, execMsgs = op.Execute(eng, req.Properties)
			for _, em := range execMsgs {
				em.ID = len(allMessages)
				allMessages = append(allMessages, em)
				if em.Level == model.LevelCritical {
					hasCritical = true
				}
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			result = nil
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			RequestID:              req.RequestID,
			TaxYear:                cfg.Year,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: allMessages,
			Result:   result,
		},
	}
}
