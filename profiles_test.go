package hafas

import "testing"

func TestRejseplanenParseLoadFactorKnownCodes(t *testing.T) {
	cases := map[int]LoadFactor{
		5:  LoadFactorLowToMedium,
		11: LoadFactorHigh,
		12: LoadFactorVeryHigh,
		13: LoadFactorExceptionallyHigh,
	}
	for raw, want := range cases {
		got, err := Rejseplanen.ParseLoadFactor(raw)
		if err != nil {
			t.Fatalf("raw=%d: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("raw=%d: got %v, want %v", raw, got, want)
		}
	}
}

func TestRejseplanenParseLoadFactorInvalidCode(t *testing.T) {
	if _, err := Rejseplanen.ParseLoadFactor(99); err == nil {
		t.Fatalf("expected an error for an out-of-range load factor code")
	}
}

func TestDefaultProfileParseLoadFactorInvalidCode(t *testing.T) {
	if _, err := DB.ParseLoadFactor(0); err == nil {
		t.Fatalf("expected an error for load factor code 0")
	}
}

func TestDBAgeToHafas(t *testing.T) {
	cases := map[Age]string{
		0:  "B",
		5:  "B",
		6:  "K",
		14: "K",
		15: "E",
		40: "E",
	}
	for age, want := range cases {
		if got := DB.AgeToHafas(age); got != want {
			t.Fatalf("age=%d: got %q, want %q", age, got, want)
		}
	}
}

func TestDBRemarkAssociation(t *testing.T) {
	cases := map[string]RemarkAssociation{
		"FB": RemarkAssociationBike,
		"RO": RemarkAssociationAccessibility,
		"FM": RemarkAssociationTicket,
		"KL": RemarkAssociationAirConditioning,
		"WV": RemarkAssociationWiFi,
		"K2": RemarkAssociationOnlySecondClass,
		"HM": RemarkAssociationNone,
		"":   RemarkAssociationNone,
		"ZZ": RemarkAssociationUnknown,
	}
	for code, want := range cases {
		if got := DB.RemarkAssociation(code); got != want {
			t.Fatalf("code=%q: got %v, want %v", code, got, want)
		}
	}
}
