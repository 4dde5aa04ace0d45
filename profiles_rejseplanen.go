package hafas

import "time"

var rejseplanenProducts = []Product{
	{Mode: ModeHighSpeedTrain, Name: "InterCity", Short: "IC"},
	{Mode: ModeHighSpeedTrain, Name: "ICL", Short: "ICL"},
	{Mode: ModeRegionalTrain, Name: "Regional", Short: "RE"},
	UnknownProduct,
	{Mode: ModeSuburbanTrain, Name: "S-Tog A/B/Bx/C/E/F/H", Short: "S"},
	{Mode: ModeBus, Name: "Bus", Short: "B"},
}

var europeCopenhagen = mustLoadLocation("Europe/Copenhagen")

// rejseplanenProfile is Denmark's national journey planner deployment.
type rejseplanenProfile struct{ DefaultProfile }

// Rejseplanen is Denmark's national journey planner.
var Rejseplanen Profile = rejseplanenProfile{}

func (rejseplanenProfile) URL() string            { return "https://mobilapps.rejseplanen.dk/bin/iphone.exe" }
func (rejseplanenProfile) Language() string        { return "dk" }
func (rejseplanenProfile) Timezone() *time.Location { return europeCopenhagen }
func (rejseplanenProfile) PriceCurrency() string    { return "EUR" }
func (rejseplanenProfile) Products() []Product      { return rejseplanenProducts }
func (rejseplanenProfile) RefreshJourneyUseOutReconL() bool { return true }

func (rejseplanenProfile) PrepareBody(body map[string]any) {
	body["client"] = map[string]any{"type": "AND", "id": "DK", "v": "", "name": ""}
	body["ver"] = "1.43"
	body["ext"] = "DK.9"
	body["auth"] = map[string]any{"type": "AID", "aid": "irkmpm9mdznstenr-android"}
}

func (rejseplanenProfile) PrepareHeaders(headers map[string]string) {
	headers["User-Agent"] = "my-awesome-e5f276d8fe6cprogram"
}

// ParseLoadFactor: Rejseplanen remaps the common 1..4 range to 5, 11..13.
// Kept as a TODO upstream ("Load factors correct?"); any other raw value is
// a parse error rather than a silent fallback, as in DefaultProfile.
func (rejseplanenProfile) ParseLoadFactor(raw int) (LoadFactor, error) {
	switch raw {
	case 5:
		return LoadFactorLowToMedium, nil
	case 11:
		return LoadFactorHigh, nil
	case 12:
		return LoadFactorVeryHigh, nil
	case 13:
		return LoadFactorExceptionallyHigh, nil
	default:
		return 0, parseErrorf("invalid load factor: %d", raw)
	}
}
