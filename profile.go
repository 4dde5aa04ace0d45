package hafas

import "time"

// Profile is the per-vendor configuration for a HAFAS deployment: constant
// accessors plus the handful of parse hooks vendors are known to need to
// override. Every concrete profile embeds DefaultProfile to inherit sane
// defaults for AgeToHafas, ParseLoadFactor and RemarkAssociation, and
// implements PrepareBody/PrepareHeaders itself since those have no
// reasonable vendor-agnostic default.
type Profile interface {
	// URL is the vendor's mgate/gate endpoint.
	URL() string
	// Language is the default `lang` field sent with every request.
	Language() string
	// Timezone is the zone every surfaced timestamp is re-zoned into.
	Timezone() *time.Location
	// PriceCurrency is the ISO-like currency code fares are reported in.
	PriceCurrency() string
	// Products is the vendor's ordered product table; index is the bitmask bit.
	Products() []Product

	// ChecksumSalt is the signing salt, if this vendor signs requests.
	ChecksumSalt() (salt string, ok bool)
	// Salt reports whether the plain `checksum` query param should be sent.
	Salt() bool
	// MicMac reports whether the `mic`/`mac` query params should be sent.
	MicMac() bool
	// RefreshJourneyUseOutReconL selects where a Reconstruction token goes.
	RefreshJourneyUseOutReconL() bool
	// CustomPEMBundle is an embedded root certificate bundle, if any.
	CustomPEMBundle() []byte

	// PrepareBody adds vendor-specific client/ver/ext/auth fields.
	PrepareBody(body map[string]any)
	// PrepareHeaders sets the vendor's User-Agent and similar.
	PrepareHeaders(headers map[string]string)

	AgeToHafas(age Age) string
	ParseLoadFactor(raw int) (LoadFactor, error)
	RemarkAssociation(code string) RemarkAssociation
}

// DefaultProfile supplies the shared-default bodies for Profile's semantic
// override hooks. Embed it in a concrete profile and override only what
// differs for that vendor.
type DefaultProfile struct{}

func (DefaultProfile) ChecksumSalt() (string, bool) { return "", false }
func (DefaultProfile) Salt() bool                   { return false }
func (DefaultProfile) MicMac() bool                 { return false }
func (DefaultProfile) RefreshJourneyUseOutReconL() bool { return false }
func (DefaultProfile) CustomPEMBundle() []byte      { return nil }
func (DefaultProfile) Language() string             { return "en" }

func (DefaultProfile) AgeToHafas(Age) string { return "E" }

// ParseLoadFactor maps the common vendor encoding of 1..4 to the four
// severity levels. Several vendors remap this range (e.g. 10..13) or add a
// fifth raw value; those profiles override this method.
func (DefaultProfile) ParseLoadFactor(raw int) (LoadFactor, error) {
	switch raw {
	case 1:
		return LoadFactorLowToMedium, nil
	case 2:
		return LoadFactorHigh, nil
	case 3:
		return LoadFactorVeryHigh, nil
	case 4:
		return LoadFactorExceptionallyHigh, nil
	default:
		return 0, parseErrorf("invalid load factor: %d", raw)
	}
}

// RemarkAssociation is empty-code-to-None, otherwise Unknown, matching the
// original's conservative default; DB overrides this with the full table
// from SPEC_FULL.md §6.
func (DefaultProfile) RemarkAssociation(code string) RemarkAssociation {
	if code == "" {
		return RemarkAssociationNone
	}
	return RemarkAssociationUnknown
}

// parseProductClass decodes a mandatory product-class bitmask entry into the
// single matching product; missing/out-of-range bits are a parse error since
// the caller (line parsing) requires exactly one.
func parseProductClass(pCls int, products []Product) (Product, *ParseError) {
	for i, p := range products {
		if pCls&(1<<uint(i)) != 0 {
			return p, nil
		}
	}
	return Product{}, parseErrorf("invalid product class: %d", pCls)
}

// parseProducts expands a station's product bitmask into the subset of the
// profile's product list it selects, skipping Unknown placeholder entries.
func parseProducts(pCls int, products []Product) []Product {
	var out []Product
	for i, p := range products {
		if i >= 16 {
			break
		}
		if pCls&(1<<uint(i)) == 0 {
			continue
		}
		if p.Unknown() {
			continue
		}
		out = append(out, p)
	}
	return out
}
