package hafas

import (
	"strconv"
	"time"
)

// parseHafasDate decodes a HAFAS time string -- six characters (`HHMMSS`) or
// eight (`DDHHMMSS`, with `DD` a day offset added to the reference date) --
// into a time anchored to the given reference date. When tzOffsetMin is
// nil, the offset is resolved from the profile's timezone at the computed
// local datetime (base UTC offset plus any DST offset), per SPEC_FULL.md
// §4.7. A nil time string yields a nil result, not an error.
func parseHafasDate(profile Profile, raw *string, tzOffsetMin *int, date time.Time) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	s := *raw

	var dayOffset int
	var clock string
	switch len(s) {
	case 8:
		d, err := strconv.Atoi(s[:2])
		if err != nil {
			return nil, wrapIntError(err)
		}
		dayOffset = d
		clock = s[2:]
	case 6:
		clock = s
	default:
		return nil, parseErrorf("invalid time length: expected 6 or 8, got %d", len(s))
	}

	tm, err := time.Parse("150405", clock)
	if err != nil {
		return nil, wrapTimeError(err)
	}

	naive := time.Date(date.Year(), date.Month(), date.Day(),
		tm.Hour(), tm.Minute(), tm.Second(), 0, time.UTC).AddDate(0, 0, dayOffset)

	var offsetSeconds int
	if tzOffsetMin != nil {
		offsetSeconds = *tzOffsetMin * 60
	} else {
		resolved, err := resolveLocalOffset(profile.Timezone(), naive)
		if err != nil {
			return nil, err
		}
		offsetSeconds = resolved
	}
	loc := time.FixedZone("", offsetSeconds)

	result := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0, loc)
	return &result, nil
}

// resolveLocalOffset resolves the UTC offset in effect for a wall-clock
// reading (naive, stamped in time.UTC so its digits are the wall clock
// itself rather than a real instant) at loc. Unlike a bare time.Date/Zone
// lookup, it rejects a naive time that falls in the repeated hour created by
// a backward (fall-back) DST transition: the wire format carries no fold
// indicator, so such a reading is genuinely ambiguous rather than
// resolvable by picking one of Go's two valid interpretations silently.
func resolveLocalOffset(loc *time.Location, naive time.Time) (int, error) {
	resolved := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0, loc)
	_, offset := resolved.Zone()
	start, end := resolved.ZoneBounds()

	if !end.IsZero() {
		_, afterOffset := end.Zone()
		if wallClockRepeats(end, offset, afterOffset, naive) {
			return 0, ambiguousLocalError(naive)
		}
	}
	if !start.IsZero() {
		_, beforeOffset := start.Add(-time.Second).Zone()
		if wallClockRepeats(start, beforeOffset, offset, naive) {
			return 0, ambiguousLocalError(naive)
		}
	}
	return offset, nil
}

// wallClockRepeats reports whether naive falls within the overlap a
// transition at boundary creates when the UTC offset decreases (a
// fall-back transition repeats one hour of wall-clock readings). A rising
// offset (spring-forward) only skips wall-clock readings and never repeats
// one, so it is not flagged here.
func wallClockRepeats(boundary time.Time, offsetBefore, offsetAfter int, naive time.Time) bool {
	if offsetBefore <= offsetAfter {
		return false
	}
	wallUnderOldOffset := wallEquivalent(boundary, offsetBefore)
	wallUnderNewOffset := wallEquivalent(boundary, offsetAfter)
	return !naive.Before(wallUnderNewOffset) && naive.Before(wallUnderOldOffset)
}

// wallEquivalent stamps the wall-clock digits a given UTC offset would show
// at instant t, as a time.Time in time.UTC so it can be compared directly
// against a naive (offset-less) wall-clock reading.
func wallEquivalent(t time.Time, offsetSeconds int) time.Time {
	return t.UTC().Add(time.Duration(offsetSeconds) * time.Second)
}

func ambiguousLocalError(naive time.Time) error {
	return parseErrorf("ambiguous local datetime %s: occurs twice across a DST transition", naive.Format("2006-01-02T15:04:05"))
}

// arrivalOrDeparture is the normalized time/platform view shared by both
// sides of a leg and by every stopover, after the fallback rules in
// SPEC_FULL.md §4.7 have been applied.
type arrivalOrDeparture struct {
	Platform        *string
	PlannedPlatform *string
	Time            *time.Time
	PlannedTime     *time.Time
	Delay           *int64
	Cancelled       bool
}

// hafasSide is the raw shape shared by dep/arr blocks (and stopover
// counterparts), already normalized to side-agnostic field names by the
// caller.
type hafasSide struct {
	TZOffset *int
	TimeS    *string
	TimeR    *string
	PlatfS   *string
	PlatfR   *string
	PltfSTxt *string
	PltfRTxt *string
	Cancel   bool
	LocX     int
}

func parseArrivalOrDeparture(profile Profile, side hafasSide, date time.Time) (arrivalOrDeparture, error) {
	plannedTime, err := parseHafasDate(profile, side.TimeS, side.TZOffset, date)
	if err != nil {
		return arrivalOrDeparture{}, err
	}
	rtTime, err := parseHafasDate(profile, side.TimeR, side.TZOffset, date)
	if err != nil {
		return arrivalOrDeparture{}, err
	}

	platformR := side.PlatfR
	if platformR == nil {
		platformR = side.PltfRTxt
	}
	platformS := side.PlatfS
	if platformS == nil {
		platformS = side.PltfSTxt
	}

	platform := platformR
	if platform == nil {
		platform = platformS
	}

	result := arrivalOrDeparture{
		Platform:        platform,
		PlannedPlatform: platformS,
		PlannedTime:     plannedTime,
		Cancelled:       side.Cancel,
	}
	if rtTime != nil {
		result.Time = rtTime
	} else {
		result.Time = plannedTime
	}
	if plannedTime != nil && rtTime != nil {
		delay := int64(rtTime.Sub(*plannedTime).Seconds())
		result.Delay = &delay
	}
	return result, nil
}
