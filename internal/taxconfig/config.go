// Package taxconfig holds the versioned statutory tables the engine
// computes against: federal brackets, FICA parameters, flat state
// rates, and contribution limits. Calculation code receives a *Config
// and never reads these values from anywhere else, so adding a tax year
// is a data change only.
package taxconfig

import "truerate-engine/internal/model"

// Bracket is one progressive tax bracket. Max 0 means the bracket has
// no upper bound.
type Bracket struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Rate float64 `json:"rate"`
}

type Config struct {
	Year int `json:"year"`

	FederalBrackets map[model.FilingStatus][]Bracket `json:"federal_brackets"`

	SocialSecurityRate          float64 `json:"social_security_rate"`
	SocialSecurityWageBase      float64 `json:"social_security_wage_base"`
	MedicareRate                float64 `json:"medicare_rate"`
	AdditionalMedicareRate      float64 `json:"additional_medicare_rate"`
	AdditionalMedicareThreshold float64 `json:"additional_medicare_threshold"`

	// StateRates maps 2-letter codes to flat rates. No-income-tax states
	// carry an explicit 0 entry; codes absent from the map fall back to
	// DefaultStateRate.
	StateRates       map[string]float64 `json:"state_rates"`
	DefaultStateRate float64            `json:"default_state_rate"`

	Limit401k float64 `json:"limit_401k"`
	LimitHSA  float64 `json:"limit_hsa"`
}

// year2024 is the built-in table. The additional-Medicare threshold is
// a single value across filing statuses, a documented simplification.
var year2024 = &Config{
	Year: 2024,

	FederalBrackets: map[model.FilingStatus][]Bracket{
		model.FilingSingle: {
			{Min: 0, Max: 11600, Rate: 0.10},
			{Min: 11600, Max: 47150, Rate: 0.12},
			{Min: 47150, Max: 100525, Rate: 0.22},
			{Min: 100525, Max: 191950, Rate: 0.24},
			{Min: 191950, Max: 243725, Rate: 0.32},
			{Min: 243725, Max: 609350, Rate: 0.35},
			{Min: 609350, Max: 0, Rate: 0.37},
		},
		model.FilingMarriedJointly: {
			{Min: 0, Max: 23200, Rate: 0.10},
			{Min: 23200, Max: 94300, Rate: 0.12},
			{Min: 94300, Max: 201050, Rate: 0.22},
			{Min: 201050, Max: 383900, Rate: 0.24},
			{Min: 383900, Max: 487450, Rate: 0.32},
			{Min: 487450, Max: 731200, Rate: 0.35},
			{Min: 731200, Max: 0, Rate: 0.37},
		},
	},

	SocialSecurityRate:          0.062,
	SocialSecurityWageBase:      168600,
	MedicareRate:                0.0145,
	AdditionalMedicareRate:      0.009,
	AdditionalMedicareThreshold: 200000,

	StateRates: map[string]float64{
		// No-income-tax states.
		"AK": 0, "FL": 0, "NV": 0, "SD": 0, "TN": 0, "TX": 0, "WA": 0, "WY": 0,

		// Flat approximations of states with their own income tax.
		"AZ": 0.025,
		"CA": 0.06,
		"CO": 0.044,
		"CT": 0.055,
		"GA": 0.0549,
		"IL": 0.0495,
		"IN": 0.0305,
		"KY": 0.04,
		"MA": 0.05,
		"MI": 0.0425,
		"MN": 0.0685,
		"NC": 0.045,
		"NJ": 0.0637,
		"NY": 0.0585,
		"OH": 0.035,
		"OR": 0.0875,
		"PA": 0.0307,
		"UT": 0.0465,
		"VA": 0.0575,
		"WI": 0.053,
	},
	DefaultStateRate: 0.05,

	Limit401k: 23000,
	LimitHSA:  4150,
}
