package hafas

import "time"

var bartProducts = []Product{
	UnknownProduct,
	UnknownProduct,
	{Mode: ModeCablecar, Name: "Cable car", Short: "Cable car"},
	{Mode: ModeRegionalTrain, Name: "Regional trains (Caltrain, Capitol Corridor, ACE)", Short: "regional trains"},
	UnknownProduct,
	{Mode: ModeBus, Name: "Bus", Short: "Bus"},
	{Mode: ModeFerry, Name: "Ferry", Short: "Ferry"},
	{Mode: ModeSuburbanTrain, Name: "BART", Short: "BART"},
	{Mode: ModeTram, Name: "Tram", Short: "Tram"},
}

var americaLosAngeles = mustLoadLocation("America/Los_Angeles")

// bartProfile is the Bay Area Rapid Transit deployment. Unlike DB it signs
// nothing -- ChecksumSalt inherits DefaultProfile's (none, false).
type bartProfile struct{ DefaultProfile }

// BART is the San Francisco Bay Area Rapid Transit district.
var BART Profile = bartProfile{}

func (bartProfile) URL() string            { return "https://planner.bart.gov/bin/mgate.exe" }
func (bartProfile) Language() string        { return "en" }
func (bartProfile) Timezone() *time.Location { return americaLosAngeles }
func (bartProfile) PriceCurrency() string    { return "USD" }
func (bartProfile) Products() []Product      { return bartProducts }
func (bartProfile) RefreshJourneyUseOutReconL() bool { return true }

func (bartProfile) PrepareBody(body map[string]any) {
	body["client"] = map[string]any{
		"type": "WEB",
		"id":   "BART",
		"name": "webapp",
	}
	body["ver"] = "1.40"
	body["auth"] = map[string]any{
		"type": "AID",
		"aid":  "kEwHkFUCIL500dym",
	}
}

func (bartProfile) PrepareHeaders(headers map[string]string) {
	headers["User-Agent"] = "my-awesome-e5f276d8fe6cprogram"
}
