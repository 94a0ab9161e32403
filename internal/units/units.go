// Package units provides deterministic conversions between the pay-rate
// representations used across the engine. Every function is pure; the
// only failure modes are argument validation.
package units

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownPeriod   = errors.New("unknown period")
)

// Shared calendar constants. WeeksPerMonth (52/12 ≈ 4.33) is the single
// source for every monthly↔weekly conversion in the engine; defining it
// once keeps the stipend math and the MONTHLY period metadata from
// drifting apart.
const (
	DefaultHoursPerWeek = 40.0
	DefaultDaysPerWeek  = 5.0
	WeeksPerYear        = 52.0
	MonthsPerYear       = 12.0
	WeeksPerMonth       = WeeksPerYear / MonthsPerYear
	DaysPerYear         = 365.25
)

// Annualize multiplies a periodic amount out to a full year.
func Annualize(amount, periodsPerYear float64) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("%w: periods per year must be positive, got %v", ErrInvalidArgument, periodsPerYear)
	}
	return amount * periodsPerYear, nil
}

// Deannualize divides an annual amount back into one period.
func Deannualize(amount, periodsPerYear float64) (float64, error) {
	if periodsPerYear == 0 {
		return 0, fmt.Errorf("%w: periods per year is zero", ErrDivisionByZero)
	}
	return amount / periodsPerYear, nil
}

// HourlyToAnnual converts an hourly rate to annual pay.
func HourlyToAnnual(rate, hoursPerWeek, weeksPerYear float64) float64 {
	return rate * hoursPerWeek * weeksPerYear
}

// AnnualToHourly is the inverse of HourlyToAnnual.
func AnnualToHourly(annual, hoursPerWeek, weeksPerYear float64) (float64, error) {
	hoursPerYear := hoursPerWeek * weeksPerYear
	if hoursPerYear == 0 {
		return 0, fmt.Errorf("%w: zero hours per year", ErrDivisionByZero)
	}
	return annual / hoursPerYear, nil
}

// DailyToAnnual converts a daily rate to annual pay.
func DailyToAnnual(rate, daysPerWeek, weeksPerYear float64) float64 {
	return rate * daysPerWeek * weeksPerYear
}

// MonthlyToAnnual converts a monthly amount given how many months of the
// year it applies to.
func MonthlyToAnnual(rate, monthsActive float64) float64 {
	return rate * monthsActive
}

// Period is a symbolic pay period used for metadata lookups.
type Period string

const (
	Weekly   Period = "WEEKLY"
	Biweekly Period = "BIWEEKLY"
	Monthly  Period = "MONTHLY"
	Annual   Period = "ANNUAL"
)

// DaysInPeriod returns calendar days for the symbolic period. MONTHLY
// uses the 365.25/12 average day count.
func DaysInPeriod(p Period) (float64, error) {
	switch p {
	case Weekly:
		return 7, nil
	case Biweekly:
		return 14, nil
	case Monthly:
		return DaysPerYear / MonthsPerYear, nil
	case Annual:
		return DaysPerYear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
}

// HoursInPeriod returns worked hours in the period for a given weekly
// schedule.
func HoursInPeriod(p Period, hoursPerWeek float64) (float64, error) {
	weeks, err := WeeksInPeriod(p)
	if err != nil {
		return 0, err
	}
	return hoursPerWeek * weeks, nil
}

// WeeksInPeriod returns weeks in the symbolic period.
func WeeksInPeriod(p Period) (float64, error) {
	switch p {
	case Weekly:
		return 1, nil
	case Biweekly:
		return 2, nil
	case Monthly:
		return WeeksPerMonth, nil
	case Annual:
		return WeeksPerYear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
}
