package calc

import (
	"errors"
	"reflect"
	"testing"

	"truerate-engine/internal/model"
)

// Validated scenario: 13-week Emergency Medicine contract in CA with
// housing and travel stipends.
func TestContractEmergencyMedicineScenario(t *testing.T) {
	e := testEngine()

	result, notes, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          275,
		HoursPerWeek:  36,
		DurationWeeks: 13,
		Location:      "CA",
		Expenses: &model.ExpenseReimbursements{
			Housing: 3500,
			Travel:  500,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "gross", result.GrossPay, 128700)
	if result.GrossPay < 125000 || result.GrossPay > 135000 {
		t.Fatalf("gross %v outside expected range", result.GrossPay)
	}
	if result.NetPay < 85000 || result.NetPay > 95000 {
		t.Fatalf("net %v outside expected range", result.NetPay)
	}
	if result.EffectiveTaxRate < 0.28 || result.EffectiveTaxRate > 0.32 {
		t.Fatalf("effective rate %v outside expected range", result.EffectiveTaxRate)
	}

	nearlyEqual(t, "reimbursements", result.Benefits.ExpenseReimbursements, 12000)
	nearlyEqual(t, "housing", result.Benefits.Housing, 10500)
	nearlyEqual(t, "travel", result.Benefits.Travel, 1500)
	nearlyEqual(t, "annual equivalent", result.AnnualEquivalent, 514800)
	nearlyEqual(t, "total hours", result.TotalHours, 468)

	if notes.UnknownState {
		t.Fatal("CA should be in the state table")
	}
}

func TestContractHighRateSanityCheck(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          500,
		HoursPerWeek:  40,
		DurationWeeks: 52,
		Location:      "CA",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.GrossPay != 1040000 {
		t.Fatalf("gross = %v, want exactly 1040000", result.GrossPay)
	}
	if result.Taxes.AdditionalMedicare <= 0 {
		t.Fatalf("additional medicare should be positive, got %v", result.Taxes.AdditionalMedicare)
	}
}

func TestContractDoubleTimeOvertime(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          150,
		HoursPerWeek:  80,
		DurationWeeks: 13,
		Location:      "TX",
		Overtime: &model.OvertimePolicy{
			Enabled:             true,
			Multiplier:          2.0,
			WeeklyHourThreshold: 40,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRegular := 150.0 * 40 * 13
	wantOvertime := 150.0 * 2.0 * 40 * 13
	if result.Breakdown.RegularPay != wantRegular {
		t.Fatalf("regular = %v, want exactly %v", result.Breakdown.RegularPay, wantRegular)
	}
	if result.Breakdown.OvertimePay != wantOvertime {
		t.Fatalf("overtime = %v, want exactly %v", result.Breakdown.OvertimePay, wantOvertime)
	}
	if result.GrossPay != wantRegular+wantOvertime {
		t.Fatalf("gross = %v, want exactly %v", result.GrossPay, wantRegular+wantOvertime)
	}
}

func TestContractOvertimeDisabledIgnoresThreshold(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          100,
		HoursPerWeek:  60,
		DurationWeeks: 10,
		Location:      "TX",
		Overtime: &model.OvertimePolicy{
			Enabled:             false,
			Multiplier:          1.5,
			WeeklyHourThreshold: 40,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "gross", result.GrossPay, 100*60*10)
	nearlyEqual(t, "overtime", result.Breakdown.OvertimePay, 0)
}

func TestContractDaily(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractDaily,
		Rate:          2000,
		DaysPerWeek:   4,
		DurationWeeks: 26,
		Location:      "FL",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "gross", result.GrossPay, 2000*4*26)
	// Daily contracts assume 8-hour days for the hour normalization.
	nearlyEqual(t, "total hours", result.TotalHours, 4*8*26)
	nearlyEqual(t, "state", result.Taxes.State, 0)
}

func TestContractSalaryProrated(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractSalary,
		Rate:          312000,
		HoursPerWeek:  40,
		DurationWeeks: 13,
		Location:      "TX",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "gross", result.GrossPay, 78000)
	nearlyEqual(t, "annual equivalent", result.AnnualEquivalent, 312000)
}

func TestContractNetPayIdentity(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          180,
		HoursPerWeek:  44,
		DurationWeeks: 26,
		Location:      "NY",
		Expenses:      &model.ExpenseReimbursements{Housing: 2800, Other: 300},
		Benefits:      &model.ContractBenefits{Retirement401k: 0.05, HealthInsurance: 450},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity := result.GrossPay - result.Taxes.Total - result.Deductions.Total + result.Benefits.ExpenseReimbursements
	nearlyEqual(t, "net pay identity", result.NetPay, identity)
	if result.Deductions.Retirement401k <= 0 {
		t.Fatal("401k deduction should be positive")
	}
}

func TestContractInvalidInput(t *testing.T) {
	e := testEngine()

	cases := []model.ContractInput{
		{ContractType: model.ContractHourly, Rate: 0, HoursPerWeek: 40, DurationWeeks: 13},
		{ContractType: model.ContractHourly, Rate: -10, HoursPerWeek: 40, DurationWeeks: 13},
		{ContractType: model.ContractHourly, Rate: 100, HoursPerWeek: 40, DurationWeeks: 0},
		{ContractType: model.ContractHourly, Rate: 100, HoursPerWeek: -1, DurationWeeks: 13},
		{ContractType: "PER_DIEM", Rate: 100, HoursPerWeek: 40, DurationWeeks: 13},
		{ContractType: model.ContractHourly, Rate: 100, HoursPerWeek: 50, DurationWeeks: 13,
			Overtime: &model.OvertimePolicy{Enabled: true, Multiplier: 0.5, WeeklyHourThreshold: 40}},
		{ContractType: model.ContractHourly, Rate: 100, HoursPerWeek: 50, DurationWeeks: 13,
			Overtime: &model.OvertimePolicy{Enabled: true, Multiplier: 1.5, WeeklyHourThreshold: 0}},
	}
	for i, in := range cases {
		if _, _, err := e.Contract(in); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestContractZeroHoursTrueRate(t *testing.T) {
	e := testEngine()

	result, _, err := e.Contract(model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          100,
		HoursPerWeek:  0,
		DurationWeeks: 13,
		Location:      "TX",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "true rate", result.TrueHourlyRate, 0)
	nearlyEqual(t, "gross", result.GrossPay, 0)
}

func TestContractIdempotence(t *testing.T) {
	e := testEngine()

	in := model.ContractInput{
		ContractType:  model.ContractHourly,
		Rate:          275.50,
		HoursPerWeek:  36,
		DurationWeeks: 13,
		Location:      "CA",
		Expenses:      &model.ExpenseReimbursements{Housing: 3500, Travel: 500, Licensure: 75.25},
	}

	first, _, err := e.Contract(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := e.Contract(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must produce identical results")
	}
}
