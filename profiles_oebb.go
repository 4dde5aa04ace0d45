package hafas

import "time"

var oebbProducts = []Product{
	{Mode: ModeHighSpeedTrain, Name: "InterCityExpress & RailJet", Short: "ICE/RJ"},
	{Mode: ModeHighSpeedTrain, Name: "InterCity & EuroCity", Short: "IC/EC"},
	{Mode: ModeHighSpeedTrain, Name: "InterCity & EuroCity", Short: "IC/EC"},
	{Mode: ModeHighSpeedTrain, Name: "Durchgangszug & EuroNight", Short: "D/EN"},
	{Mode: ModeRegionalTrain, Name: "Regional & RegionalExpress", Short: "R/REX"},
	{Mode: ModeSuburbanTrain, Name: "S-Bahn", Short: "S"},
	{Mode: ModeBus, Name: "Bus", Short: "B"},
	{Mode: ModeFerry, Name: "Ferry", Short: "F"},
	{Mode: ModeSubway, Name: "U-Bahn", Short: "U"},
	{Mode: ModeTram, Name: "Tram", Short: "T"},
	UnknownProduct,
	{Mode: ModeOnDemand, Name: "on-call transit, lifts, etc", Short: "on-call/lift"},
	{Mode: ModeHighSpeedTrain, Name: "Durchgangszug & EuroNight", Short: "D/EN"},
}

var europeVienna = mustLoadLocation("Europe/Vienna")

// oebbProfile is the Austrian Federal Railways deployment.
type oebbProfile struct{ DefaultProfile }

// OEBB is the Austrian Federal Railways (Österreichische Bundesbahnen).
var OEBB Profile = oebbProfile{}

func (oebbProfile) URL() string                    { return "https://fahrplan.oebb.at/bin/mgate.exe" }
func (oebbProfile) Language() string                { return "de" }
func (oebbProfile) Timezone() *time.Location         { return europeVienna }
func (oebbProfile) PriceCurrency() string            { return "EUR" }
func (oebbProfile) Products() []Product              { return oebbProducts }
func (oebbProfile) RefreshJourneyUseOutReconL() bool { return true }

func (oebbProfile) PrepareBody(body map[string]any) {
	body["client"] = map[string]any{
		"type": "IPH",
		"id":   "OEBB",
		"v":    "6030600",
		"name": "oebbPROD-ADHOC",
	}
	body["ver"] = "1.41"
	body["auth"] = map[string]any{
		"type": "AID",
		"aid":  "OWDL4fE4ixNiPBBm",
	}
}

func (oebbProfile) PrepareHeaders(headers map[string]string) {
	headers["User-Agent"] = "my-awesome-e5f276d8fe6cprogram"
}
