package ucd

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RemiKalbe/unicode-explorer/consts"
	"github.com/RemiKalbe/unicode-explorer/names"
)

// Char is one named code point extracted from the UCD.
type Char struct {
	CP   rune
	Name string
}

// ParseChars scans the flat UCD XML and calls fn for every code point
// a name can be determined for. Name precedence: the primary attribute
// (na), then the legacy one (na1), then algorithmic derivation; points
// with none of the three are skipped, as are the range elements the
// flat format uses for unassigned and ideograph spans (the backfill
// pass covers the latter). A '#' in an attribute name is the UCD
// template convention and expands to the code point's hex digits.
func ParseChars(r io.Reader, fn func(Char)) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scanning ucd xml: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "char" {
			continue
		}

		var cpAttr, na, na1 string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "cp":
				cpAttr = attr.Value
			case "na":
				na = attr.Value
			case "na1":
				na1 = attr.Value
			}
		}
		if cpAttr == "" {
			// first-cp/last-cp range element
			continue
		}

		v, err := strconv.ParseUint(cpAttr, 16, 32)
		if err != nil || v > consts.MaxCodePoint {
			continue
		}
		cp := rune(v)

		name := na
		if name == "" {
			name = na1
		}
		switch {
		case strings.Contains(name, "#"):
			name = names.ExpandTemplate(name, cp)
		case name == "":
			derived, ok := names.Derive(cp)
			if !ok {
				continue
			}
			name = derived
		}

		fn(Char{CP: cp, Name: name})
	}
}
