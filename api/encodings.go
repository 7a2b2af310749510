package api

import (
	"fmt"
	"net/url"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/RemiKalbe/unicode-explorer/names"
)

// Encodings are the copyable representations shown in the character
// detail view.
type Encodings struct {
	UTF8       []string `json:"utf8"`
	UTF16      []string `json:"utf16"`
	HTMLEntity string   `json:"htmlEntity"`
	URLEscape  string   `json:"urlEscape"`
}

func encode(cp rune) Encodings {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, cp)

	utf8Bytes := make([]string, 0, n)
	for _, b := range buf[:n] {
		utf8Bytes = append(utf8Bytes, fmt.Sprintf("0x%02X", b))
	}

	units := utf16.Encode([]rune{cp})
	utf16Units := make([]string, 0, len(units))
	for _, u := range units {
		utf16Units = append(utf16Units, fmt.Sprintf("0x%04X", u))
	}

	return Encodings{
		UTF8:       utf8Bytes,
		UTF16:      utf16Units,
		HTMLEntity: "&#x" + names.Hex(cp) + ";",
		URLEscape:  url.QueryEscape(string(cp)),
	}
}
