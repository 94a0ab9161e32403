package calc

import (
	"fmt"

	"truerate-engine/internal/deductions"
	"truerate-engine/internal/model"
	"truerate-engine/internal/units"
)

// Contract evaluates a contract over its full duration and normalizes
// it to a true hourly rate. Tax is modeled against the annualized
// equivalent income, assuming the contract is the worker's sole income
// for the year, then scaled back to the contract period.
func (e *Engine) Contract(in model.ContractInput) (model.ContractResult, Notes, error) {
	var notes Notes

	if err := validateContract(in); err != nil {
		return model.ContractResult{}, notes, err
	}

	status := in.FilingStatus
	if status == "" {
		status = model.FilingSingle
	}

	regularPay, overtimePay, totalHours := contractPay(in)
	gross := regularPay + overtimePay

	var reimbursements float64
	benefits := model.BenefitBreakdown{}
	if in.Expenses != nil {
		months := in.DurationWeeks / units.WeeksPerMonth
		benefits.Housing = roundCents(in.Expenses.Housing * months)
		benefits.Travel = roundCents(in.Expenses.Travel * months)
		benefits.Licensure = roundCents(in.Expenses.Licensure * months)
		benefits.Other = roundCents(in.Expenses.Other * months)
		reimbursements = benefits.Housing + benefits.Travel + benefits.Licensure + benefits.Other
		benefits.ExpenseReimbursements = reimbursements
	}

	// Annualized equivalent drives bracket lookup: a 13-week contract is
	// taxed at the marginal rate its full-time-equivalent income implies.
	annualEquivalent := gross * units.WeeksPerYear / in.DurationWeeks
	scale := in.DurationWeeks / units.WeeksPerYear

	var spec model.DeductionSpec
	if in.Benefits != nil {
		spec.Retirement401k = in.Benefits.Retirement401k
		spec.HealthInsurance = in.Benefits.HealthInsurance * units.MonthsPerYear
		benefits.MalpracticeInsurance = roundCents(in.Benefits.MalpracticeInsurance * in.DurationWeeks / units.WeeksPerMonth)
		benefits.CME = roundCents(in.Benefits.CME * in.DurationWeeks / units.WeeksPerMonth)
	}

	// Benefit deductions are applied on the annual equivalent (one
	// period per year), then scaled to the contract like the taxes.
	ded := deductions.Apply(annualEquivalent, 1, spec, deductions.Limits{
		Limit401k: e.cfg.Limit401k,
		LimitHSA:  e.cfg.LimitHSA,
	})
	notes.Capped401k = ded.Capped401k
	notes.CappedHSA = ded.CappedHSA

	federal, approximated, err := e.taxes.FederalDetail(ded.TaxableIncome, status)
	if err != nil {
		return model.ContractResult{}, notes, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	notes.ApproximatedFilingStatus = approximated

	fica := e.taxes.CalculateFICA(ded.TaxableIncome)
	state, known := e.taxes.State(ded.TaxableIncome, in.Location)
	notes.UnknownState = !known

	taxes := roundTaxes(model.TaxBreakdown{
		Federal:            federal * scale,
		State:              state * scale,
		SocialSecurity:     fica.SocialSecurity * scale,
		Medicare:           fica.Medicare * scale,
		AdditionalMedicare: fica.AdditionalMedicare * scale,
	})

	annualDeductions := ded.Breakdown()
	breakdown := roundDeductions(model.DeductionBreakdown{
		Retirement401k:  annualDeductions.Retirement401k * scale,
		HealthInsurance: annualDeductions.HealthInsurance * scale,
	})

	gross = roundCents(gross)
	net := gross - taxes.Total - breakdown.Total + reimbursements

	var trueHourlyRate float64
	if totalHours > 0 {
		trueHourlyRate = roundCents(net / totalHours)
	}
	var effectiveRate float64
	if gross > 0 {
		effectiveRate = round4((gross - net) / gross)
	}

	return model.ContractResult{
		GrossPay:         gross,
		NetPay:           roundCents(net),
		Taxes:            taxes,
		Deductions:       breakdown,
		Benefits:         benefits,
		Breakdown:        model.PayBreakdown{RegularPay: roundCents(regularPay), OvertimePay: roundCents(overtimePay)},
		TotalHours:       totalHours,
		AnnualEquivalent: roundCents(annualEquivalent),
		TrueHourlyRate:   trueHourlyRate,
		EffectiveTaxRate: effectiveRate,
	}, notes, nil
}

// contractPay computes regular pay, overtime pay, and total hours
// worked for a validated input. DAILY contracts use the convention of
// an 8-hour day; SALARY contracts assume the stated (or a 40-hour)
// week.
func contractPay(in model.ContractInput) (regular, overtime, totalHours float64) {
	switch in.ContractType {
	case model.ContractHourly:
		regularHours := in.HoursPerWeek
		if in.Overtime != nil && in.Overtime.Enabled && in.Overtime.WeeklyHourThreshold < regularHours {
			regularHours = in.Overtime.WeeklyHourThreshold
			overtimeHours := in.HoursPerWeek - in.Overtime.WeeklyHourThreshold
			overtime = overtimeHours * in.Rate * in.Overtime.Multiplier * in.DurationWeeks
		}
		regular = regularHours * in.Rate * in.DurationWeeks
		totalHours = in.HoursPerWeek * in.DurationWeeks

	case model.ContractDaily:
		daysPerWeek := in.DaysPerWeek
		if daysPerWeek == 0 {
			daysPerWeek = units.DefaultDaysPerWeek
		}
		regular = in.Rate * daysPerWeek * in.DurationWeeks
		totalHours = daysPerWeek * 8 * in.DurationWeeks

	case model.ContractSalary:
		regular = in.Rate * in.DurationWeeks / units.WeeksPerYear
		hoursPerWeek := in.HoursPerWeek
		if hoursPerWeek == 0 {
			hoursPerWeek = units.DefaultHoursPerWeek
		}
		totalHours = hoursPerWeek * in.DurationWeeks
	}
	return regular, overtime, totalHours
}

func validateContract(in model.ContractInput) error {
	switch in.ContractType {
	case model.ContractHourly, model.ContractDaily, model.ContractSalary:
	default:
		return fmt.Errorf("%w: unrecognized contract type %q", ErrInvalidArgument, in.ContractType)
	}
	if in.Rate <= 0 {
		return fmt.Errorf("%w: rate must be positive, got %v", ErrInvalidArgument, in.Rate)
	}
	if in.HoursPerWeek < 0 {
		return fmt.Errorf("%w: hours per week must be non-negative, got %v", ErrInvalidArgument, in.HoursPerWeek)
	}
	if in.DaysPerWeek < 0 {
		return fmt.Errorf("%w: days per week must be non-negative, got %v", ErrInvalidArgument, in.DaysPerWeek)
	}
	if in.DurationWeeks < 1 {
		return fmt.Errorf("%w: duration must be at least one week, got %v", ErrInvalidArgument, in.DurationWeeks)
	}
	if in.Overtime != nil && in.Overtime.Enabled {
		if in.Overtime.Multiplier < 1 {
			return fmt.Errorf("%w: overtime multiplier must be at least 1, got %v", ErrInvalidArgument, in.Overtime.Multiplier)
		}
		if in.Overtime.WeeklyHourThreshold <= 0 {
			return fmt.Errorf("%w: overtime threshold must be positive, got %v", ErrInvalidArgument, in.Overtime.WeeklyHourThreshold)
		}
	}
	return nil
}
