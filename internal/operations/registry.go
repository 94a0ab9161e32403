package operations

import "truerate-engine/internal/model"

var registry = map[string]Operation{
	model.OpContractCalculation: &ContractCalculation{},
	model.OpPaycheckCalculation: &PaycheckCalculation{},
	model.OpTaxBreakdown:        &TaxBreakdown{},
	model.OpCompareOffers:       &CompareOffers{},
}

func Get(name string) (Operation, bool) {
	op, ok := registry[name]
	return op, ok
}
