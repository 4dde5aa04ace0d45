package hafas

import "time"

var kvbProducts = []Product{
	{Mode: ModeSuburbanTrain, Name: "S-Bahn", Short: "S"},
	// TODO: Maybe suburban?
	{Mode: ModeRegionalTrain, Name: "Stadtbahn", Short: "Stadtbahn"},
	UnknownProduct,
	{Mode: ModeBus, Name: "Bus", Short: "Bus"},
	UnknownProduct,
	{Mode: ModeHighSpeedTrain, Name: "Fernverkehr", Short: "Fernverkehr"},
	UnknownProduct,
	UnknownProduct,
	{Mode: ModeOnDemand, Name: "Taxibus", Short: "Taxibus"},
}

// kvbProfile is the Kölner Verkehrs-Betriebe deployment.
type kvbProfile struct{ DefaultProfile }

// KVB is Cologne's Kölner Verkehrs-Betriebe.
var KVB Profile = kvbProfile{}

func (kvbProfile) URL() string                    { return "https://auskunft.kvb.koeln/gate" }
func (kvbProfile) Language() string                { return "de" }
func (kvbProfile) Timezone() *time.Location         { return europeBerlin }
func (kvbProfile) PriceCurrency() string            { return "EUR" }
func (kvbProfile) Products() []Product              { return kvbProducts }
func (kvbProfile) RefreshJourneyUseOutReconL() bool { return true }

func (kvbProfile) PrepareBody(body map[string]any) {
	body["client"] = map[string]any{
		"type": "WEB",
		"id":   "HAFAS",
		"name": "webapp",
		"l":    "vs_webapp",
	}
	body["ver"] = "1.42"
	body["auth"] = map[string]any{
		"type": "AID",
		"aid":  "Rt6foY5zcTTRXMQs",
	}
}

func (kvbProfile) PrepareHeaders(headers map[string]string) {
	headers["User-Agent"] = "my-awesome-e5f276d8fe6cprogram"
}
