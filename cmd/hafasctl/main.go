// Command hafasctl is a manual smoke-test harness for the hafas package. It
// is not part of the module's public contract.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nobina/go-hafas"
)

var profiles = map[string]hafas.Profile{
	"db":          hafas.DB,
	"bart":        hafas.BART,
	"kvb":         hafas.KVB,
	"oebb":        hafas.OEBB,
	"rejseplanen": hafas.Rejseplanen,
}

func main() {
	profileName := flag.String("profile", "db", "one of: db, bart, kvb, oebb, rejseplanen")
	mode := flag.String("mode", "locations", "one of: locations, journeys")
	query := flag.String("query", "", "query text for -mode=locations")
	from := flag.String("from", "", "origin station id for -mode=journeys")
	to := flag.String("to", "", "destination station id for -mode=journeys")
	flag.Parse()

	profile, ok := profiles[*profileName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown profile %q\n", *profileName)
		os.Exit(1)
	}

	client, err := hafas.NewClient(profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building client:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch *mode {
	case "locations":
		places, err := client.Locations(ctx, *query, hafas.LocationsOptions{})
		exitOn(err)
		printJSON(places)
	case "journeys":
		fromPlace := hafas.PlaceFromStation(hafas.Station{ID: *from})
		toPlace := hafas.PlaceFromStation(hafas.Station{ID: *to})
		resp, err := client.Journeys(ctx, fromPlace, toPlace, hafas.JourneysOptions{})
		exitOn(err)
		printJSON(resp.Journeys)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
