package names

// The nine CJK Unified Ideograph ranges: the base block and
// Extensions A through H. Ideographs in these ranges are named by
// rule, not listed in the UCD.
var cjkRanges = [][2]rune{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // Extension A
	{0x20000, 0x2A6DF}, // Extension B
	{0x2A700, 0x2B73F}, // Extension C
	{0x2B740, 0x2B81F}, // Extension D
	{0x2B820, 0x2CEAF}, // Extension E
	{0x2CEB0, 0x2EBEF}, // Extension F
	{0x30000, 0x3134F}, // Extension G
	{0x31350, 0x323AF}, // Extension H
}

// CJKIdeographName derives the name of a CJK unified ideograph:
// "CJK UNIFIED IDEOGRAPH-" plus unpadded uppercase hex.
func CJKIdeographName(cp rune) (string, bool) {
	for _, r := range cjkRanges {
		if cp >= r[0] && cp <= r[1] {
			return "CJK UNIFIED IDEOGRAPH-" + Hex(cp), true
		}
	}
	return "", false
}
