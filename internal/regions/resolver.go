package regions

// Slug identifies a region category.
type Slug string

// International covers every posting outside the United States.
const International Slug = "international"

// Region is static reference data: a named category and the US state codes
// it covers. The ten US regions partition the 50 states plus DC.
type Region struct {
	Slug   Slug
	Title  string
	States []string
}

var All = []Region{
	{
		Slug:   "pacific-ca-or-wa-ak-hi",
		Title:  "Pacific (CA, OR, WA, AK, HI)",
		States: []string{"CA", "OR", "WA", "AK", "HI"},
	},
	{
		Slug:   "mid-atlantic-dc-de-md-va-wv",
		Title:  "Mid-Atlantic (DC, DE, MD, VA, WV)",
		States: []string{"DC", "DE", "MD", "VA", "WV"},
	},
	{
		Slug:   "southeast-fl-ga-al-nc-sc-ky-ms-tn",
		Title:  "Southeast (FL, GA, AL, NC, SC, KY, MS, TN)",
		States: []string{"FL", "GA", "AL", "NC", "SC", "KY", "MS", "TN"},
	},
	{
		Slug:   "south-central-west-ar-la-ok-tx",
		Title:  "South Central West (AR, LA, OK, TX)",
		States: []string{"AR", "LA", "OK", "TX"},
	},
	{
		Slug:   "great-lakes-il-in-mi-oh-wi",
		Title:  "Great Lakes (IL, IN, MI, OH, WI)",
		States: []string{"IL", "IN", "MI", "OH", "WI"},
	},
	{
		Slug:   "new-england-ct-me-ma-nh-ri-vt",
		Title:  "New England (CT, ME, MA, NH, RI, VT)",
		States: []string{"CT", "ME", "MA", "NH", "RI", "VT"},
	},
	{
		Slug:   "tri-state-ny-nj-pa",
		Title:  "Tri-State (NY, NJ, PA)",
		States: []string{"NY", "NJ", "PA"},
	},
	{
		Slug:   "central-ia-ks-mn-mo-ne-nd-sd",
		Title:  "Central (IA, KS, MN, MO, NE, ND, SD)",
		States: []string{"IA", "KS", "MN", "MO", "NE", "ND", "SD"},
	},
	{
		Slug:   "mountain-co-id-mt-ut-wy",
		Title:  "Mountain (CO, ID, MT, UT, WY)",
		States: []string{"CO", "ID", "MT", "UT", "WY"},
	},
	{
		Slug:   "southwest-az-nm-nv",
		Title:  "Southwest (AZ, NM, NV)",
		States: []string{"AZ", "NM", "NV"},
	},
	{
		Slug:  International,
		Title: "International",
	},
}

var stateToRegion = func() map[string]Slug {
	m := make(map[string]Slug)
	for _, r := range All {
		for _, st := range r.States {
			m[st] = r.Slug
		}
	}
	return m
}()

// Resolve maps (country, state) to a region slug. Pure and total: unknown
// input yields ok == false, never an error.
func Resolve(country, state string) (Slug, bool) {
	if country == "international" {
		return International, true
	}
	if country == "unitedStates" && state != "" {
		slug, ok := stateToRegion[state]
		return slug, ok
	}
	return "", false
}

// StateCodes returns every mapped US state code.
func StateCodes() []string {
	codes := make([]string, 0, len(stateToRegion))
	for code := range stateToRegion {
		codes = append(codes, code)
	}
	return codes
}
