package hafas

import "context"

// RefreshJourneyOptions configures Client.RefreshJourney.
type RefreshJourneyOptions struct {
	Stopovers   bool
	Polylines   bool
	Tickets     bool
	TariffClass TariffClass
	Language    string
}

// RefreshJourney re-fetches up-to-date realtime data for a previously
// returned Journey, using its ID as the reconstruction token.
func (c *Client) RefreshJourney(ctx context.Context, journey Journey, opts RefreshJourneyOptions) (*Journey, error) {
	req := map[string]any{
		"getIST":      true,
		"getPasslist": opts.Stopovers,
		"getTariff":   opts.Tickets,
		"getPolyline": opts.Polylines,
	}
	if c.profile.RefreshJourneyUseOutReconL() {
		req["outReconL"] = []any{map[string]any{"ctx": journey.ID}}
	} else {
		req["ctxRecon"] = journey.ID
	}

	res, err := c.call(ctx, "Reconstruction", map[string]any{}, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.decodeJourneysResponse(res, opts.TariffClass, opts.Polylines)
	if err != nil {
		return nil, err
	}
	if len(resp.Journeys) == 0 {
		return nil, parseErrorf("reconstruction returned no journeys")
	}
	return &resp.Journeys[0], nil
}
