package hafas

import "encoding/json"

// hafasRemark is the raw shape of one remL entry.
type hafasRemark struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Txt     string `json:"txtN"`
	TxtS    string `json:"txtS"`
	Jid     string `json:"jid"`
}

// parseRemark decodes one common.remL entry, branching by `type` per
// SPEC_FULL.md §4.6.
func parseRemark(profile Profile, raw json.RawMessage) (*Remark, error) {
	var hr hafasRemark
	if err := json.Unmarshal(raw, &hr); err != nil {
		return nil, &ParseError{Info: "decoding remark", Err: err}
	}

	rem := &Remark{
		Association: profile.RemarkAssociation(hr.Code),
	}

	switch hr.Type {
	case "M", "P":
		rem.Type = RemarkTypeStatus
		rem.Code = hr.Code
		rem.Text = hr.Txt
		if hr.TxtS != "" {
			rem.Summary = &hr.TxtS
		}
	case "L":
		rem.Type = RemarkTypeStatus
		rem.Code = "alternative-trip"
		if hr.Jid != "" {
			rem.TripID = &hr.Jid
		}
	case "A", "I", "H":
		rem.Type = RemarkTypeHint
		rem.Code = hr.Code
		rem.Text = hr.Txt
	default:
		rem.Type = RemarkTypeStatus
		rem.Code = hr.Code
		rem.Text = hr.Txt
	}

	return rem, nil
}
