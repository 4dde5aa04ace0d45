package hafas

import (
	"context"
	"encoding/json"
	"time"
)

// TransferLimit selects how many transfers a journey search allows.
// Use NewTransferLimit(n) for a specific cap or TransferUnlimited for none.
type TransferLimit struct {
	limited bool
	n       int
}

var TransferUnlimited = TransferLimit{}

func NewTransferLimit(n int) TransferLimit { return TransferLimit{limited: true, n: n} }

func (t TransferLimit) hafasValue() int64 {
	if !t.limited {
		return -1
	}
	return int64(t.n)
}

// JourneysOptions configures Client.Journeys. The zero value resolves to the
// documented defaults (Results=5, TariffClass=Second, Tickets=true,
// StartWithWalking=true, Transfers=Unlimited) once passed through
// withDefaults.
type JourneysOptions struct {
	Via               []Place
	EarlierThan       *string
	LaterThan         *string
	Results           int
	Stopovers         bool
	Polylines         bool
	BikeFriendly      bool
	Tickets           *bool
	StartWithWalking  *bool
	Accessibility     Accessibility
	Transfers         *TransferLimit
	TransferTime      time.Duration
	Departure         *time.Time
	Arrival           *time.Time
	Products          *ProductsSelection
	TariffClass       TariffClass
	PassengerAge      *Age
	LoyaltyCard       *LoyaltyCard
	Language          string
}

func (o JourneysOptions) withDefaults(c *Client) JourneysOptions {
	if o.Results == 0 {
		o.Results = c.defaultResult.journeys
	}
	if o.Tickets == nil {
		t := true
		o.Tickets = &t
	}
	if o.StartWithWalking == nil {
		t := true
		o.StartWithWalking = &t
	}
	if o.Transfers == nil {
		o.Transfers = &TransferUnlimited
	}
	if o.Products == nil {
		all := AllProducts()
		o.Products = &all
	}
	if o.Language == "" {
		o.Language = c.profile.Language()
	}
	return o
}

// JourneysResponse wraps the resolved journeys plus the pagination
// references the vendor surfaces for "earlier"/"later" requests.
type JourneysResponse struct {
	EarlierRef *string
	LaterRef   *string
	Journeys   []Journey
}

type hafasJourneysResponse struct {
	Common     *hafasCommon      `json:"common"`
	OutConL    []json.RawMessage `json:"outConL"`
	OutCtxScrF *string           `json:"outCtxScrF"`
	OutCtxScrB *string           `json:"outCtxScrB"`
}

// Journeys searches for trips between from and to, per SPEC_FULL.md §4.9.
func (c *Client) Journeys(ctx context.Context, from, to Place, opts JourneysOptions) (*JourneysResponse, error) {
	opts = opts.withDefaults(c)

	if opts.Departure != nil && opts.Arrival != nil {
		return nil, &InvalidInputError{Reason: "departure and arrival are mutually exclusive"}
	}

	timezone := c.profile.Timezone()
	var when time.Time
	isDeparture := true
	switch {
	case opts.Departure != nil:
		when = opts.Departure.In(timezone)
	case opts.Arrival != nil:
		when = opts.Arrival.In(timezone)
		isDeparture = false
	default:
		when = time.Now().In(timezone)
	}

	depHafas, err := toHafasPlace(from)
	if err != nil {
		return nil, err
	}
	arrHafas, err := toHafasPlace(to)
	if err != nil {
		return nil, err
	}

	var viaL []any
	for _, v := range opts.Via {
		vh, err := toHafasPlace(v)
		if err != nil {
			return nil, err
		}
		viaL = append(viaL, map[string]any{"loc": vh})
	}

	ageCode := "E"
	if opts.PassengerAge != nil {
		ageCode = c.profile.AgeToHafas(*opts.PassengerAge)
	}
	var redtnCard *int
	if opts.LoyaltyCard != nil {
		id := opts.LoyaltyCard.ID()
		redtnCard = &id
	}

	jnyFltrL := []any{
		map[string]any{"type": "PROD", "mode": "INC", "value": opts.Products.Bitmask(c.profile.Products())},
		map[string]any{"type": "META", "mode": "INC", "meta": accessibilityToHafas(opts.Accessibility)},
	}
	if opts.BikeFriendly {
		jnyFltrL = append(jnyFltrL, map[string]any{"type": "BC", "mode": "INC"})
	}

	req := map[string]any{
		"ctxScr":      nil,
		"getPasslist": opts.Stopovers,
		"maxChg":      opts.Transfers.hafasValue(),
		"minChgTime":  int64(opts.TransferTime.Minutes()),
		"numF":        opts.Results,
		"depLocL":     []any{depHafas},
		"viaLocL":     viaL,
		"arrLocL":     []any{arrHafas},
		"jnyFltrL":    jnyFltrL,
		"gisFltrL":    []any{},
		"getTariff":   *opts.Tickets,
		"ushrp":       *opts.StartWithWalking,
		"getPT":       true,
		"getIV":       false,
		"outFrwd":     isDeparture,
		"outDate":     when.Format("20060102"),
		"outTime":     when.Format("150405"),
		"trfReq": map[string]any{
			"jnyCl": opts.TariffClass.hafasJnyCl(),
			"tvlrProf": []any{
				map[string]any{"type": ageCode, "redtnCard": redtnCard},
			},
			"cType": "PK",
		},
		"getPolyline": opts.Polylines,
	}
	if opts.LaterThan != nil {
		req["ctxScr"] = *opts.LaterThan
	} else if opts.EarlierThan != nil {
		req["ctxScr"] = *opts.EarlierThan
	}
	cfg := map[string]any{"polyEnc": "GPA"}

	res, err := c.call(ctx, "TripSearch", cfg, req)
	if err != nil {
		return nil, err
	}

	return c.decodeJourneysResponse(res, opts.TariffClass, opts.Polylines)
}

func (c *Client) decodeJourneysResponse(res json.RawMessage, tariffClass TariffClass, withPolylines bool) (*JourneysResponse, error) {
	data, err := decodeTyped[hafasJourneysResponse](res)
	if err != nil {
		return nil, err
	}

	tables, err := resolveCommon(c.profile, data.Common, tariffClass, withPolylines)
	if err != nil {
		return nil, err
	}

	var journeys []Journey
	var totalSkipped SkipCounts
	for _, raw := range data.OutConL {
		journey, skips, err := parseJourney(c.profile, tables, raw, withPolylines)
		if err != nil {
			return nil, err
		}
		totalSkipped.ZeroMinuteWalks += skips.ZeroMinuteWalks
		journeys = append(journeys, *journey)
	}
	if totalSkipped.ZeroMinuteWalks > 0 && c.log != nil {
		c.log.WithField("count", totalSkipped.ZeroMinuteWalks).Debug("hafas: dropped zero-minute walk legs")
	}

	return &JourneysResponse{
		EarlierRef: data.OutCtxScrB,
		LaterRef:   data.OutCtxScrF,
		Journeys:   journeys,
	}, nil
}

func accessibilityToHafas(a Accessibility) string {
	switch a {
	case AccessibilityPartial:
		return "limitedBarrierfree"
	case AccessibilityComplete:
		return "completeBarrierfree"
	default:
		return "notBarrierfree"
	}
}
