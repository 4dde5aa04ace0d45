package hafas

import (
	"encoding/json"
	"strings"
)

// hafasLine is the raw shape of one prodL entry.
type hafasLine struct {
	Name    string `json:"name"`
	AddName string `json:"addName"`
	Line    string `json:"line"`
	Number  string `json:"number"`
	PCls    int    `json:"cls"`
	OpX     *int   `json:"opX"`
	ProdCtx *struct {
		CatOutL string `json:"catOutL"`
	} `json:"prodCtx"`
}

// parseLine decodes one common.prodL entry. The product class is mandatory:
// a missing or out-of-range bit is a parse error for the whole line, per
// SPEC_FULL.md §4.6.
func parseLine(profile Profile, raw json.RawMessage, operators []Operator) (*Line, error) {
	var hl hafasLine
	if err := json.Unmarshal(raw, &hl); err != nil {
		return nil, &ParseError{Info: "decoding line", Err: err}
	}

	product, perr := parseProductClass(hl.PCls, profile.Products())
	if perr != nil {
		return nil, perr
	}

	display := firstNonEmpty(hl.Line, hl.AddName, hl.Name)
	line := &Line{
		Mode:    product.Mode,
		Product: product,
	}
	if display != "" {
		line.Name = &display
	}
	if hl.Number != "" {
		line.FahrtNr = &hl.Number
	}
	if hl.OpX != nil && *hl.OpX >= 0 && *hl.OpX < len(operators) {
		op := operators[*hl.OpX]
		line.Operator = &op
	}
	if hl.ProdCtx != nil {
		cat := strings.TrimSpace(hl.ProdCtx.CatOutL)
		if cat != "" {
			line.ProductName = &cat
		}
	}

	return line, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// hafasOperator is the raw shape of one opL entry.
type hafasOperator struct {
	Name string `json:"name"`
}

// parseOperator decodes one common.opL entry. Operators must all succeed;
// there is no per-entry fallback since downstream line parsing indexes into
// this table unconditionally.
func parseOperator(raw json.RawMessage) (Operator, error) {
	var ho hafasOperator
	if err := json.Unmarshal(raw, &ho); err != nil {
		return Operator{}, &ParseError{Info: "decoding operator", Err: err}
	}
	if ho.Name == "" {
		return Operator{}, parseErrorf("operator entry missing name")
	}
	return NewOperator(ho.Name), nil
}
