package hafas

import "encoding/json"

// outerEnvelope is the status-only shape of a HAFAS response, decoded first
// so a protocol-level failure never has to survive a typed parse of a
// possibly-malformed payload.
type outerEnvelope struct {
	Err     string            `json:"err"`
	ErrTxt  string            `json:"errTxt"`
	SvcResL []json.RawMessage `json:"svcResL"`
}

// innerResult is the status-only shape of svcResL[0].
type innerResult struct {
	Err    string          `json:"err"`
	ErrTxt string          `json:"errTxt"`
	Res    json.RawMessage `json:"res"`
}

// unpackEnvelope runs the two-level status inspection from SPEC_FULL.md §4.4
// and returns the raw `res` payload of the single service response, ready
// for a second, typed json.Unmarshal pass.
func unpackEnvelope(raw []byte) (json.RawMessage, error) {
	var outer outerEnvelope
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, &ParseError{Info: "decoding outer envelope", Err: err}
	}
	if outer.Err != "" && outer.Err != "OK" {
		text := outer.ErrTxt
		if text == "" {
			text = "Code " + outer.Err
		}
		return nil, &ProtocolError{Code: outer.Err, Text: text}
	}
	if len(outer.SvcResL) == 0 {
		return nil, parseErrorf("response carries no svcResL entries")
	}

	var inner innerResult
	if err := json.Unmarshal(outer.SvcResL[0], &inner); err != nil {
		return nil, &ParseError{Info: "decoding inner service response", Err: err}
	}
	if inner.Err != "" && inner.Err != "OK" {
		text := inner.ErrTxt
		if text == "" {
			text = "Code " + inner.Err
		}
		return nil, &ProtocolError{Code: inner.Err, Text: text}
	}

	return inner.Res, nil
}

// decodeTyped is a small generic helper used by every facade operation to
// unmarshal the res payload into its method-specific shape once the
// envelope has been validated.
func decodeTyped[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &ParseError{Info: "decoding typed payload", Err: err}
	}
	return v, nil
}
