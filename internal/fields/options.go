package fields

// Option is the single shape for dropdown and radio choices, replacing the
// arrays-or-model duality the templates used to juggle.
type Option struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Default bool   `json:"default"`
}

var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// stateOrder keeps the dropdown alphabetical by state name.
var stateOrder = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var optionSets = map[string][]Option{
	"country": {
		{Label: "United States", Value: "unitedStates", Default: true},
		{Label: "International", Value: "international"},
	},
	"duration": {
		{Label: "6 months", Value: "6"},
		{Label: "12 months", Value: "12", Default: true},
	},
	"paymentMethod": {
		{Label: "Credit card", Value: "credit", Default: true},
		{Label: "Invoice", Value: "invoice"},
	},
	"jobState": stateOptions(),
}

func stateOptions() []Option {
	opts := make([]Option, 0, len(stateOrder))
	for _, code := range stateOrder {
		opts = append(opts, Option{Label: stateNames[code], Value: code})
	}
	return opts
}

// Options returns the option set for a field handle. Unknown handles return
// ok == false rather than an empty list so callers can 404.
func Options(handle string) ([]Option, bool) {
	opts, ok := optionSets[handle]
	return opts, ok
}
