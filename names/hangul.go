package names

import (
	"github.com/RemiKalbe/unicode-explorer/consts"
)

// Jamo short names from the standard's Jamo.txt. A syllable name is
// the concatenation of its lead, vowel and trail short names; the
// "no trailing consonant" slot and the null lead (ieung) are empty.
var (
	hangulLeads = [consts.HangulLeadCount]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB",
		"S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	hangulVowels = [consts.HangulVowelCount]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O",
		"WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU",
		"EU", "YI", "I",
	}
	hangulTrails = [consts.HangulTrailCount]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS",
		"S", "SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// HangulSyllableName derives the name of a precomposed Hangul syllable
// via the standard decomposition (Unicode ch. 3.12): the offset from
// the syllable base splits into lead/vowel/trail indices.
func HangulSyllableName(cp rune) (string, bool) {
	if cp < consts.HangulBase || cp > consts.HangulEnd {
		return "", false
	}
	offset := int(cp - consts.HangulBase)
	lead := offset / (consts.HangulVowelCount * consts.HangulTrailCount)
	vowel := (offset / consts.HangulTrailCount) % consts.HangulVowelCount
	trail := offset % consts.HangulTrailCount
	return "HANGUL SYLLABLE " + hangulLeads[lead] + hangulVowels[vowel] + hangulTrails[trail], true
}
