package hafas

import (
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Mode is the kind of vehicle serving a Line.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeHighSpeedTrain
	ModeRegionalTrain
	ModeSuburbanTrain
	ModeSubway
	ModeTram
	ModeBus
	ModeFerry
	ModeCablecar
	ModeOnDemand
)

// Product pairs a Mode with the human-readable names a profile's product
// table carries for it. Position within a profile's product list is the bit
// used for that product in the vendor's product bitmask (see ProductsSelection).
type Product struct {
	Mode  Mode
	Name  string
	Short string
}

func (p Product) Unknown() bool { return p.Mode == ModeUnknown }

var UnknownProduct = Product{Mode: ModeUnknown, Name: "Unknown", Short: "Unknown"}

// ProductsSelection is a set of modes used to filter journey search results.
// The zero value is empty; use AllProducts() for "every known mode".
type ProductsSelection struct {
	modes map[Mode]struct{}
}

func NewProductsSelection(modes ...Mode) ProductsSelection {
	s := ProductsSelection{modes: make(map[Mode]struct{}, len(modes))}
	for _, m := range modes {
		s.modes[m] = struct{}{}
	}
	return s
}

// AllProducts mirrors the original's ProductsSelection::all(), including its
// Ferry duplicate -- harmless here since the backing set dedupes automatically.
func AllProducts() ProductsSelection {
	return NewProductsSelection(
		ModeHighSpeedTrain, ModeRegionalTrain, ModeSuburbanTrain, ModeSubway,
		ModeTram, ModeBus, ModeFerry, ModeFerry, ModeCablecar, ModeOnDemand, ModeUnknown,
	)
}

func (s ProductsSelection) Contains(m Mode) bool {
	_, ok := s.modes[m]
	return ok
}

// Bitmask encodes the selection against a profile's ordered product list.
// Bit i is set iff the selection contains products[i].Mode.
func (s ProductsSelection) Bitmask(products []Product) uint16 {
	var mask uint16
	for i, p := range products {
		if i >= 16 {
			break
		}
		if s.Contains(p.Mode) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// ProductsSelectionFromBitmask is the inverse of Bitmask.
func ProductsSelectionFromBitmask(mask uint16, products []Product) ProductsSelection {
	s := ProductsSelection{modes: map[Mode]struct{}{}}
	for i, p := range products {
		if i >= 16 {
			break
		}
		if mask&(1<<uint(i)) != 0 {
			s.modes[p.Mode] = struct{}{}
		}
	}
	return s
}

// Location is an address or an otherwise-unspecified point.
type Location struct {
	// Address fields; Address == "" means this is a Point instead.
	Address string

	// Point fields.
	ID   *string
	Name *string
	POI  bool

	Latitude  float64
	Longitude float64
}

func (l Location) IsAddress() bool { return l.Address != "" }

func (l Location) Equal(o Location) bool {
	if l.IsAddress() || o.IsAddress() {
		return l.IsAddress() && o.IsAddress() && l.Address == o.Address
	}
	if l.ID != nil && o.ID != nil {
		return *l.ID == *o.ID
	}
	return false
}

// Station is a provider-scoped stop or station.
type Station struct {
	ID       string
	Name     *string
	Location *Location
	Products []Product
}

func (s Station) Equal(o Station) bool { return s.ID == o.ID }

// Place is a tagged union of Station and Location.
type Place struct {
	Station  *Station
	Location *Location
}

func PlaceFromStation(s Station) Place   { return Place{Station: &s} }
func PlaceFromLocation(l Location) Place { return Place{Location: &l} }

func (p Place) Equal(o Place) bool {
	if p.Station != nil && o.Station != nil {
		return p.Station.Equal(*o.Station)
	}
	if p.Location != nil && o.Location != nil {
		return p.Location.Equal(*o.Location)
	}
	return false
}

// Operator serves one or more Lines. Its id is synthesized from the name --
// a known limitation inherited from upstream, see Open Questions in SPEC_FULL.md.
type Operator struct {
	ID   string
	Name string
}

func NewOperator(name string) Operator { return Operator{ID: name, Name: name} }

// Line describes the service running a Leg.
type Line struct {
	Name        *string
	FahrtNr     *string
	Mode        Mode
	Product     Product
	Operator    *Operator
	ProductName *string
}

// Frequency describes how often a Line repeats when no specific departure is given.
type Frequency struct {
	Minimum    *time.Duration
	Maximum    *time.Duration
	Iterations *uint64
}

// LoadFactor is a coarse occupancy estimate for a given tariff class.
type LoadFactor int

const (
	LoadFactorLowToMedium LoadFactor = iota
	LoadFactorHigh
	LoadFactorVeryHigh
	LoadFactorExceptionallyHigh
)

// TariffClass selects first or second class fares and load factors.
type TariffClass int

const (
	TariffClassSecond TariffClass = iota
	TariffClassFirst
)

// hafasJnyCl is the numeric class code the `trfReq.jnyCl` field expects:
// 1 for first class, 2 for second.
func (c TariffClass) hafasJnyCl() int {
	if c == TariffClassFirst {
		return 1
	}
	return 2
}

// hafasClassName is the string tag used in tcoc_l entries to mark which
// class a load-factor reading applies to.
func (c TariffClass) hafasClassName() string {
	if c == TariffClassFirst {
		return "FIRST"
	}
	return "SECOND"
}

// Accessibility is how wheelchair-accessible a requested trip must be.
type Accessibility int

const (
	AccessibilityNone Accessibility = iota
	AccessibilityPartial
	AccessibilityComplete
)

// Age is a passenger's age in years, used by Profile.AgeToHafas.
type Age uint64

// LoyaltyCard is a discount-card identity carried in the tariff request.
type LoyaltyCard int

const (
	LoyaltyCardBahnCard25Class1 LoyaltyCard = iota + 1
	LoyaltyCardBahnCard25Class2
	LoyaltyCardBahnCard50Class1
	LoyaltyCardBahnCard50Class2
)

const (
	LoyaltyCardVorteilscard LoyaltyCard = iota + 9
	LoyaltyCardHalbtaxaboRailplus
	LoyaltyCardHalbtaxabo
	LoyaltyCardVoordeelurenaboRailplus
	LoyaltyCardVoordeelurenabo
	LoyaltyCardSHCard
	LoyaltyCardGeneralabonnement
)

func LoyaltyCardFromID(v int) (LoyaltyCard, bool) {
	switch v {
	case 1, 2, 3, 4, 9, 10, 11, 12, 13, 14, 15:
		return LoyaltyCard(v), true
	default:
		return 0, false
	}
}

func (c LoyaltyCard) ID() int { return int(c) }

// RemarkType distinguishes informational hints from status announcements.
type RemarkType int

const (
	RemarkTypeHint RemarkType = iota
	RemarkTypeStatus
)

// RemarkAssociation categorizes a Remark's subject.
type RemarkAssociation int

const (
	RemarkAssociationUnknown RemarkAssociation = iota
	RemarkAssociationBike
	RemarkAssociationAccessibility
	RemarkAssociationTicket
	RemarkAssociationPower
	RemarkAssociationAirConditioning
	RemarkAssociationWiFi
	RemarkAssociationOnlySecondClass
	RemarkAssociationNone
)

// Remark is a hint or status attached to a Leg or Stop.
type Remark struct {
	Code        string
	Text        string
	Type        RemarkType
	Association RemarkAssociation
	Summary     *string
	TripID      *string
}

// Stop is an intermediate stopover within a Leg.
type Stop struct {
	Place Place

	Departure          *time.Time
	PlannedDeparture   *time.Time
	Arrival            *time.Time
	PlannedArrival     *time.Time
	ArrivalPlatform    *string
	PlannedArrivalPlat *string
	DeparturePlatform  *string
	PlannedDepartPlat  *string

	Cancelled bool
	Remarks   []Remark
}

// IntermediateLocation is either a Stop or a pass-through named railway track.
type IntermediateLocation struct {
	Stop    *Stop
	Railway *Place
}

// Leg is one contiguous segment of a Journey.
type Leg struct {
	Origin      Place
	Destination Place

	Departure        *time.Time
	PlannedDeparture *time.Time
	Arrival          *time.Time
	PlannedArrival   *time.Time

	ArrivalPlatform           *string
	PlannedArrivalPlatform    *string
	DeparturePlatform         *string
	PlannedDeparturePlatform  *string

	Reachable bool
	TripID    *string
	Line      *Line
	Direction *string
	Frequency *Frequency

	Cancelled             bool
	IntermediateLocations []IntermediateLocation
	LoadFactor            *LoadFactor
	Remarks               []Remark
	Polyline              *geojson.FeatureCollection
	Walking               bool
	Transfer              bool
	Distance              *uint64
}

// ID is a stable identifier derived from attributes that should not change
// across a refresh call.
func (l Leg) ID() string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	t := func(tm *time.Time) string {
		if tm == nil {
			return ""
		}
		return tm.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%s;%s;%s;%s;%s",
		deref(l.TripID),
		t(l.PlannedDeparture),
		t(l.PlannedArrival),
		deref(l.PlannedDeparturePlatform),
		deref(l.PlannedArrivalPlatform),
	)
}

// Price is the minimum listed fare for a Journey.
type Price struct {
	Amount   float64
	Currency string
}

// Journey is a complete trip from one Place to another.
type Journey struct {
	ID    string
	Legs  []Leg
	Price *Price
}
