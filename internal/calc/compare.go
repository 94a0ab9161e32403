package calc

import (
	"fmt"
	"sort"

	"truerate-engine/internal/model"
)

// Compare evaluates a set of contract offers and ranks them by true
// hourly rate, reporting each offer's deltas against the best one. Any
// invalid offer fails the whole comparison.
func (e *Engine) Compare(offers []model.ContractOffer) (model.ComparisonResult, Notes, error) {
	var notes Notes

	if len(offers) == 0 {
		return model.ComparisonResult{}, notes, fmt.Errorf("%w: no offers to compare", ErrInvalidArgument)
	}

	compared := make([]model.ComparedOffer, len(offers))
	for i, offer := range offers {
		result, offerNotes, err := e.Contract(offer.ContractInput)
		if err != nil {
			return model.ComparisonResult{}, notes, fmt.Errorf("offer %d: %w", i, err)
		}
		notes.merge(offerNotes)
		compared[i] = model.ComparedOffer{
			Label:  offer.Label,
			Result: result,
		}
	}

	// Rank by true hourly rate, net pay breaking ties.
	order := make([]int, len(compared))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := compared[order[a]].Result, compared[order[b]].Result
		if ra.TrueHourlyRate != rb.TrueHourlyRate {
			return ra.TrueHourlyRate > rb.TrueHourlyRate
		}
		return ra.NetPay > rb.NetPay
	})

	best := compared[order[0]].Result
	for rank, idx := range order {
		compared[idx].Rank = rank + 1
		compared[idx].TrueRateDelta = roundCents(compared[idx].Result.TrueHourlyRate - best.TrueHourlyRate)
		compared[idx].NetPayDelta = roundCents(compared[idx].Result.NetPay - best.NetPay)
		compared[idx].GrossPayDelta = roundCents(compared[idx].Result.GrossPay - best.GrossPay)
		compared[idx].EffectiveRateDelta = round4(compared[idx].Result.EffectiveTaxRate - best.EffectiveTaxRate)
	}

	return model.ComparisonResult{
		BestOffer: order[0],
		Offers:    compared,
	}, notes, nil
}
