package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"truerate-engine/internal/model"
	"truerate-engine/internal/taxconfig"
)

func testEngine() *Engine {
	return New(taxconfig.ForYear(2024))
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestPaycheckKnownValue(t *testing.T) {
	e := testEngine()

	result, notes, err := e.Paycheck(model.PaycheckInput{
		GrossAnnualSalary: 104000,
		PayPeriod:         model.PayBiweekly,
		FilingStatus:      model.FilingSingle,
		State:             "TX",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "gross", result.GrossPay, 4000)
	nearlyEqual(t, "federal", result.Taxes.Federal, 692.40)
	nearlyEqual(t, "state", result.Taxes.State, 0)
	nearlyEqual(t, "social security", result.Taxes.SocialSecurity, 248.00)
	nearlyEqual(t, "medicare", result.Taxes.Medicare, 58.00)
	nearlyEqual(t, "additional medicare", result.Taxes.AdditionalMedicare, 0)
	nearlyEqual(t, "net", result.NetPay, 3001.60)
	nearlyEqual(t, "effective rate", result.EffectiveTaxRate, 0.2496)

	if notes.UnknownState || notes.ApproximatedFilingStatus {
		t.Fatal("expected no notes for single filer in TX")
	}
}

func TestPaycheckConsistencyIdentity(t *testing.T) {
	e := testEngine()

	inputs := []model.PaycheckInput{
		{GrossAnnualSalary: 60000, PayPeriod: model.PayWeekly, FilingStatus: model.FilingSingle, State: "CA"},
		{GrossAnnualSalary: 185000, PayPeriod: model.PaySemimonthly, FilingStatus: model.FilingMarriedJointly, State: "NY",
			Deductions: model.DeductionSpec{Retirement401k: 0.06, HealthInsurance: 220, HSA: 150, Other: 40}},
		{GrossAnnualSalary: 350000, PayPeriod: model.PayMonthly, FilingStatus: model.FilingHeadOfHousehold, State: "FL",
			Deductions:            model.DeductionSpec{Retirement401k: 0.15, Dental: 25, Vision: 12, FSA: 80, DependentCare: 200},
			AdditionalWithholding: 100},
	}

	for _, in := range inputs {
		result, _, err := e.Paycheck(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		identity := result.GrossPay - result.Taxes.Total - result.Deductions.Total - result.AdditionalWithholding
		nearlyEqual(t, "net pay identity", result.NetPay, identity)
		if result.Taxes.Federal < 0 || result.Taxes.SocialSecurity < 0 || result.Taxes.Medicare < 0 {
			t.Fatal("tax components must never be negative")
		}
	}
}

func TestPaycheckZeroSalary(t *testing.T) {
	e := testEngine()

	result, _, err := e.Paycheck(model.PaycheckInput{
		PayPeriod:    model.PayWeekly,
		FilingStatus: model.FilingSingle,
		State:        "WA",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "gross", result.GrossPay, 0)
	nearlyEqual(t, "net", result.NetPay, 0)
	nearlyEqual(t, "effective rate", result.EffectiveTaxRate, 0)
}

func TestPaycheckInvalidInput(t *testing.T) {
	e := testEngine()

	if _, _, err := e.Paycheck(model.PaycheckInput{GrossAnnualSalary: -1, PayPeriod: model.PayWeekly, FilingStatus: model.FilingSingle}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative salary, got %v", err)
	}
	if _, _, err := e.Paycheck(model.PaycheckInput{GrossAnnualSalary: 50000, PayPeriod: "FORTNIGHTLY", FilingStatus: model.FilingSingle}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown pay period, got %v", err)
	}
	if _, _, err := e.Paycheck(model.PaycheckInput{GrossAnnualSalary: 50000, PayPeriod: model.PayWeekly, FilingStatus: "WIDOW"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown filing status, got %v", err)
	}
}

func TestPaycheck401kCapNote(t *testing.T) {
	e := testEngine()

	result, notes, err := e.Paycheck(model.PaycheckInput{
		GrossAnnualSalary: 500000,
		PayPeriod:         model.PayBiweekly,
		FilingStatus:      model.FilingSingle,
		State:             "TX",
		Deductions:        model.DeductionSpec{Retirement401k: 1.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !notes.Capped401k {
		t.Fatal("expected 401k cap note")
	}
	nearlyEqual(t, "annualized 401k", result.Deductions.Retirement401k*26, 23000)
}

func TestPaycheckIdempotence(t *testing.T) {
	e := testEngine()

	in := model.PaycheckInput{
		GrossAnnualSalary: 123456.78,
		PayPeriod:         model.PaySemimonthly,
		FilingStatus:      model.FilingMarriedJointly,
		State:             "CA",
		Deductions:        model.DeductionSpec{Retirement401k: 0.08, HealthInsurance: 310.55},
	}

	first, _, err := e.Paycheck(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := e.Paycheck(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must produce identical results")
	}
}
