package blocks

// Category labels for sidebar grouping. Blocks below are listed in
// sidebar order: grouped by category, code point order within a group.
const (
	catLatin       = "Latin"
	catEuropean    = "European Scripts"
	catCombining   = "Combining Marks"
	catMiddleEast  = "Middle Eastern Scripts"
	catAfrican     = "African Scripts"
	catSouthAsian  = "South Asian Scripts"
	catSEAsian     = "Southeast Asian Scripts"
	catIndonesia   = "Indonesia & Oceania"
	catCentralAsia = "Central Asian Scripts"
	catEastAsian   = "East Asian Scripts"
	catAmerican    = "American Scripts"
	catAncient     = "Ancient Scripts"
	catSymbols     = "Symbols & Punctuation"
	catEmoji       = "Emoji & Pictographs"
	catMath        = "Mathematical & Technical"
	catSpecial     = "Private Use & Special"
)

// Ranges follow the standard's Blocks.txt. The catalog intentionally
// does not cover every assigned block; gaps simply resolve to no block.
var table = []UnicodeBlock{
	{Name: "Basic Latin", Start: 0x0000, End: 0x007F, Category: catLatin},
	{Name: "Latin-1 Supplement", Start: 0x0080, End: 0x00FF, Category: catLatin},
	{Name: "Latin Extended-A", Start: 0x0100, End: 0x017F, Category: catLatin},
	{Name: "Latin Extended-B", Start: 0x0180, End: 0x024F, Category: catLatin},
	{Name: "Latin Extended Additional", Start: 0x1E00, End: 0x1EFF, Category: catLatin},
	{Name: "Latin Extended-C", Start: 0x2C60, End: 0x2C7F, Category: catLatin},
	{Name: "Latin Extended-D", Start: 0xA720, End: 0xA7FF, Category: catLatin},
	{Name: "Latin Extended-E", Start: 0xAB30, End: 0xAB6F, Category: catLatin},

	{Name: "Greek and Coptic", Start: 0x0370, End: 0x03FF, Category: catEuropean},
	{Name: "Cyrillic", Start: 0x0400, End: 0x04FF, Category: catEuropean},
	{Name: "Cyrillic Supplement", Start: 0x0500, End: 0x052F, Category: catEuropean},
	{Name: "Armenian", Start: 0x0530, End: 0x058F, Category: catEuropean},
	{Name: "Georgian", Start: 0x10A0, End: 0x10FF, Category: catEuropean},
	{Name: "Ogham", Start: 0x1680, End: 0x169F, Category: catEuropean},
	{Name: "Runic", Start: 0x16A0, End: 0x16FF, Category: catEuropean},
	{Name: "Cyrillic Extended-C", Start: 0x1C80, End: 0x1C8F, Category: catEuropean},
	{Name: "Georgian Extended", Start: 0x1C90, End: 0x1CBF, Category: catEuropean},
	{Name: "Greek Extended", Start: 0x1F00, End: 0x1FFF, Category: catEuropean},
	{Name: "Glagolitic", Start: 0x2C00, End: 0x2C5F, Category: catEuropean},
	{Name: "Coptic", Start: 0x2C80, End: 0x2CFF, Category: catEuropean},
	{Name: "Georgian Supplement", Start: 0x2D00, End: 0x2D2F, Category: catEuropean},
	{Name: "Cyrillic Extended-A", Start: 0x2DE0, End: 0x2DFF, Category: catEuropean},
	{Name: "Cyrillic Extended-B", Start: 0xA640, End: 0xA69F, Category: catEuropean},

	{Name: "Combining Diacritical Marks", Start: 0x0300, End: 0x036F, Category: catCombining},
	{Name: "Combining Diacritical Marks Extended", Start: 0x1AB0, End: 0x1AFF, Category: catCombining},
	{Name: "Combining Diacritical Marks Supplement", Start: 0x1DC0, End: 0x1DFF, Category: catCombining},
	{Name: "Combining Diacritical Marks for Symbols", Start: 0x20D0, End: 0x20FF, Category: catCombining},
	{Name: "Combining Half Marks", Start: 0xFE20, End: 0xFE2F, Category: catCombining},

	{Name: "Hebrew", Start: 0x0590, End: 0x05FF, Category: catMiddleEast},
	{Name: "Arabic", Start: 0x0600, End: 0x06FF, Category: catMiddleEast},
	{Name: "Syriac", Start: 0x0700, End: 0x074F, Category: catMiddleEast},
	{Name: "Arabic Supplement", Start: 0x0750, End: 0x077F, Category: catMiddleEast},
	{Name: "Thaana", Start: 0x0780, End: 0x07BF, Category: catMiddleEast},
	{Name: "Samaritan", Start: 0x0800, End: 0x083F, Category: catMiddleEast},
	{Name: "Mandaic", Start: 0x0840, End: 0x085F, Category: catMiddleEast},
	{Name: "Syriac Supplement", Start: 0x0860, End: 0x086F, Category: catMiddleEast},
	{Name: "Arabic Extended-B", Start: 0x0870, End: 0x089F, Category: catMiddleEast},
	{Name: "Arabic Extended-A", Start: 0x08A0, End: 0x08FF, Category: catMiddleEast},
	{Name: "Arabic Presentation Forms-A", Start: 0xFB50, End: 0xFDFF, Category: catMiddleEast},
	{Name: "Arabic Presentation Forms-B", Start: 0xFE70, End: 0xFEFF, Category: catMiddleEast},

	{Name: "NKo", Start: 0x07C0, End: 0x07FF, Category: catAfrican},
	{Name: "Ethiopic", Start: 0x1200, End: 0x137F, Category: catAfrican},
	{Name: "Ethiopic Supplement", Start: 0x1380, End: 0x139F, Category: catAfrican},
	{Name: "Tifinagh", Start: 0x2D30, End: 0x2D7F, Category: catAfrican},
	{Name: "Ethiopic Extended", Start: 0x2D80, End: 0x2DDF, Category: catAfrican},
	{Name: "Vai", Start: 0xA500, End: 0xA63F, Category: catAfrican},
	{Name: "Bamum", Start: 0xA6A0, End: 0xA6FF, Category: catAfrican},
	{Name: "Ethiopic Extended-A", Start: 0xAB00, End: 0xAB2F, Category: catAfrican},
	{Name: "Osmanya", Start: 0x10480, End: 0x104AF, Category: catAfrican},
	{Name: "Adlam", Start: 0x1E900, End: 0x1E95F, Category: catAfrican},

	{Name: "Devanagari", Start: 0x0900, End: 0x097F, Category: catSouthAsian},
	{Name: "Bengali", Start: 0x0980, End: 0x09FF, Category: catSouthAsian},
	{Name: "Gurmukhi", Start: 0x0A00, End: 0x0A7F, Category: catSouthAsian},
	{Name: "Gujarati", Start: 0x0A80, End: 0x0AFF, Category: catSouthAsian},
	{Name: "Oriya", Start: 0x0B00, End: 0x0B7F, Category: catSouthAsian},
	{Name: "Tamil", Start: 0x0B80, End: 0x0BFF, Category: catSouthAsian},
	{Name: "Telugu", Start: 0x0C00, End: 0x0C7F, Category: catSouthAsian},
	{Name: "Kannada", Start: 0x0C80, End: 0x0CFF, Category: catSouthAsian},
	{Name: "Malayalam", Start: 0x0D00, End: 0x0D7F, Category: catSouthAsian},
	{Name: "Sinhala", Start: 0x0D80, End: 0x0DFF, Category: catSouthAsian},
	{Name: "Tibetan", Start: 0x0F00, End: 0x0FFF, Category: catSouthAsian},
	{Name: "Lepcha", Start: 0x1C00, End: 0x1C4F, Category: catSouthAsian},
	{Name: "Ol Chiki", Start: 0x1C50, End: 0x1C7F, Category: catSouthAsian},
	{Name: "Vedic Extensions", Start: 0x1CD0, End: 0x1CFF, Category: catSouthAsian},
	{Name: "Syloti Nagri", Start: 0xA800, End: 0xA82F, Category: catSouthAsian},
	{Name: "Saurashtra", Start: 0xA880, End: 0xA8DF, Category: catSouthAsian},
	{Name: "Devanagari Extended", Start: 0xA8E0, End: 0xA8FF, Category: catSouthAsian},
	{Name: "Meetei Mayek", Start: 0xABC0, End: 0xABFF, Category: catSouthAsian},

	{Name: "Thai", Start: 0x0E00, End: 0x0E7F, Category: catSEAsian},
	{Name: "Lao", Start: 0x0E80, End: 0x0EFF, Category: catSEAsian},
	{Name: "Myanmar", Start: 0x1000, End: 0x109F, Category: catSEAsian},
	{Name: "Khmer", Start: 0x1780, End: 0x17FF, Category: catSEAsian},
	{Name: "Tai Le", Start: 0x1950, End: 0x197F, Category: catSEAsian},
	{Name: "New Tai Lue", Start: 0x1980, End: 0x19DF, Category: catSEAsian},
	{Name: "Khmer Symbols", Start: 0x19E0, End: 0x19FF, Category: catSEAsian},
	{Name: "Tai Tham", Start: 0x1A20, End: 0x1AAF, Category: catSEAsian},
	{Name: "Kayah Li", Start: 0xA900, End: 0xA92F, Category: catSEAsian},
	{Name: "Myanmar Extended-B", Start: 0xA9E0, End: 0xA9FF, Category: catSEAsian},
	{Name: "Cham", Start: 0xAA00, End: 0xAA5F, Category: catSEAsian},
	{Name: "Myanmar Extended-A", Start: 0xAA60, End: 0xAA7F, Category: catSEAsian},
	{Name: "Tai Viet", Start: 0xAA80, End: 0xAADF, Category: catSEAsian},

	{Name: "Tagalog", Start: 0x1700, End: 0x171F, Category: catIndonesia},
	{Name: "Hanunoo", Start: 0x1720, End: 0x173F, Category: catIndonesia},
	{Name: "Buhid", Start: 0x1740, End: 0x175F, Category: catIndonesia},
	{Name: "Tagbanwa", Start: 0x1760, End: 0x177F, Category: catIndonesia},
	{Name: "Buginese", Start: 0x1A00, End: 0x1A1F, Category: catIndonesia},
	{Name: "Balinese", Start: 0x1B00, End: 0x1B7F, Category: catIndonesia},
	{Name: "Sundanese", Start: 0x1B80, End: 0x1BBF, Category: catIndonesia},
	{Name: "Batak", Start: 0x1BC0, End: 0x1BFF, Category: catIndonesia},
	{Name: "Sundanese Supplement", Start: 0x1CC0, End: 0x1CCF, Category: catIndonesia},
	{Name: "Rejang", Start: 0xA930, End: 0xA95F, Category: catIndonesia},
	{Name: "Javanese", Start: 0xA980, End: 0xA9DF, Category: catIndonesia},

	{Name: "Mongolian", Start: 0x1800, End: 0x18AF, Category: catCentralAsia},
	{Name: "Limbu", Start: 0x1900, End: 0x194F, Category: catCentralAsia},
	{Name: "Phags-pa", Start: 0xA840, End: 0xA87F, Category: catCentralAsia},
	{Name: "Old Turkic", Start: 0x10C00, End: 0x10C4F, Category: catCentralAsia},

	{Name: "Hangul Jamo", Start: 0x1100, End: 0x11FF, Category: catEastAsian},
	{Name: "CJK Radicals Supplement", Start: 0x2E80, End: 0x2EFF, Category: catEastAsian},
	{Name: "Kangxi Radicals", Start: 0x2F00, End: 0x2FDF, Category: catEastAsian},
	{Name: "Ideographic Description Characters", Start: 0x2FF0, End: 0x2FFF, Category: catEastAsian},
	{Name: "CJK Symbols and Punctuation", Start: 0x3000, End: 0x303F, Category: catEastAsian},
	{Name: "Hiragana", Start: 0x3040, End: 0x309F, Category: catEastAsian},
	{Name: "Katakana", Start: 0x30A0, End: 0x30FF, Category: catEastAsian},
	{Name: "Bopomofo", Start: 0x3100, End: 0x312F, Category: catEastAsian},
	{Name: "Hangul Compatibility Jamo", Start: 0x3130, End: 0x318F, Category: catEastAsian},
	{Name: "Kanbun", Start: 0x3190, End: 0x319F, Category: catEastAsian},
	{Name: "Bopomofo Extended", Start: 0x31A0, End: 0x31BF, Category: catEastAsian},
	{Name: "CJK Strokes", Start: 0x31C0, End: 0x31EF, Category: catEastAsian},
	{Name: "Katakana Phonetic Extensions", Start: 0x31F0, End: 0x31FF, Category: catEastAsian},
	{Name: "Enclosed CJK Letters and Months", Start: 0x3200, End: 0x32FF, Category: catEastAsian},
	{Name: "CJK Compatibility", Start: 0x3300, End: 0x33FF, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension A", Start: 0x3400, End: 0x4DBF, Category: catEastAsian},
	{Name: "CJK Unified Ideographs", Start: 0x4E00, End: 0x9FFF, Category: catEastAsian},
	{Name: "Yi Syllables", Start: 0xA000, End: 0xA48F, Category: catEastAsian},
	{Name: "Yi Radicals", Start: 0xA490, End: 0xA4CF, Category: catEastAsian},
	{Name: "Lisu", Start: 0xA4D0, End: 0xA4FF, Category: catEastAsian},
	{Name: "Hangul Jamo Extended-A", Start: 0xA960, End: 0xA97F, Category: catEastAsian},
	{Name: "Hangul Syllables", Start: 0xAC00, End: 0xD7AF, Category: catEastAsian},
	{Name: "Hangul Jamo Extended-B", Start: 0xD7B0, End: 0xD7FF, Category: catEastAsian},
	{Name: "CJK Compatibility Ideographs", Start: 0xF900, End: 0xFAFF, Category: catEastAsian},
	{Name: "CJK Compatibility Forms", Start: 0xFE30, End: 0xFE4F, Category: catEastAsian},
	{Name: "Miao", Start: 0x16F00, End: 0x16F9F, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension B", Start: 0x20000, End: 0x2A6DF, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension C", Start: 0x2A700, End: 0x2B73F, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension D", Start: 0x2B740, End: 0x2B81F, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension E", Start: 0x2B820, End: 0x2CEAF, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension F", Start: 0x2CEB0, End: 0x2EBEF, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension G", Start: 0x30000, End: 0x3134F, Category: catEastAsian},
	{Name: "CJK Unified Ideographs Extension H", Start: 0x31350, End: 0x323AF, Category: catEastAsian},

	{Name: "Cherokee", Start: 0x13A0, End: 0x13FF, Category: catAmerican},
	{Name: "Unified Canadian Aboriginal Syllabics", Start: 0x1400, End: 0x167F, Category: catAmerican},
	{Name: "Unified Canadian Aboriginal Syllabics Extended", Start: 0x18B0, End: 0x18FF, Category: catAmerican},
	{Name: "Cherokee Supplement", Start: 0xAB70, End: 0xABBF, Category: catAmerican},
	{Name: "Deseret", Start: 0x10400, End: 0x1044F, Category: catAmerican},
	{Name: "Osage", Start: 0x104B0, End: 0x104FF, Category: catAmerican},

	{Name: "Linear B Syllabary", Start: 0x10000, End: 0x1007F, Category: catAncient},
	{Name: "Linear B Ideograms", Start: 0x10080, End: 0x100FF, Category: catAncient},
	{Name: "Aegean Numbers", Start: 0x10100, End: 0x1013F, Category: catAncient},
	{Name: "Ancient Greek Numbers", Start: 0x10140, End: 0x1018F, Category: catAncient},
	{Name: "Ancient Symbols", Start: 0x10190, End: 0x101CF, Category: catAncient},
	{Name: "Old Italic", Start: 0x10300, End: 0x1032F, Category: catAncient},
	{Name: "Gothic", Start: 0x10330, End: 0x1034F, Category: catAncient},
	{Name: "Ugaritic", Start: 0x10380, End: 0x1039F, Category: catAncient},
	{Name: "Old Persian", Start: 0x103A0, End: 0x103DF, Category: catAncient},
	{Name: "Imperial Aramaic", Start: 0x10840, End: 0x1085F, Category: catAncient},
	{Name: "Phoenician", Start: 0x10900, End: 0x1091F, Category: catAncient},
	{Name: "Cuneiform", Start: 0x12000, End: 0x123FF, Category: catAncient},
	{Name: "Cuneiform Numbers and Punctuation", Start: 0x12400, End: 0x1247F, Category: catAncient},
	{Name: "Egyptian Hieroglyphs", Start: 0x13000, End: 0x1342F, Category: catAncient},
	{Name: "Anatolian Hieroglyphs", Start: 0x14400, End: 0x1467F, Category: catAncient},

	{Name: "IPA Extensions", Start: 0x0250, End: 0x02AF, Category: catSymbols},
	{Name: "Spacing Modifier Letters", Start: 0x02B0, End: 0x02FF, Category: catSymbols},
	{Name: "Phonetic Extensions", Start: 0x1D00, End: 0x1D7F, Category: catSymbols},
	{Name: "Phonetic Extensions Supplement", Start: 0x1D80, End: 0x1DBF, Category: catSymbols},
	{Name: "General Punctuation", Start: 0x2000, End: 0x206F, Category: catSymbols},
	{Name: "Superscripts and Subscripts", Start: 0x2070, End: 0x209F, Category: catSymbols},
	{Name: "Currency Symbols", Start: 0x20A0, End: 0x20CF, Category: catSymbols},
	{Name: "Letterlike Symbols", Start: 0x2100, End: 0x214F, Category: catSymbols},
	{Name: "Number Forms", Start: 0x2150, End: 0x218F, Category: catSymbols},
	{Name: "Enclosed Alphanumerics", Start: 0x2460, End: 0x24FF, Category: catSymbols},
	{Name: "Miscellaneous Symbols", Start: 0x2600, End: 0x26FF, Category: catSymbols},
	{Name: "Dingbats", Start: 0x2700, End: 0x27BF, Category: catSymbols},
	{Name: "Supplemental Punctuation", Start: 0x2E00, End: 0x2E7F, Category: catSymbols},
	{Name: "Alphabetic Presentation Forms", Start: 0xFB00, End: 0xFB4F, Category: catSymbols},
	{Name: "Vertical Forms", Start: 0xFE10, End: 0xFE1F, Category: catSymbols},
	{Name: "Small Form Variants", Start: 0xFE50, End: 0xFE6F, Category: catSymbols},
	{Name: "Halfwidth and Fullwidth Forms", Start: 0xFF00, End: 0xFFEF, Category: catSymbols},
	{Name: "Specials", Start: 0xFFF0, End: 0xFFFF, Category: catSymbols},

	{Name: "Mahjong Tiles", Start: 0x1F000, End: 0x1F02F, Category: catEmoji},
	{Name: "Domino Tiles", Start: 0x1F030, End: 0x1F09F, Category: catEmoji},
	{Name: "Playing Cards", Start: 0x1F0A0, End: 0x1F0FF, Category: catEmoji},
	{Name: "Enclosed Alphanumeric Supplement", Start: 0x1F100, End: 0x1F1FF, Category: catEmoji},
	{Name: "Miscellaneous Symbols and Pictographs", Start: 0x1F300, End: 0x1F5FF, Category: catEmoji},
	{Name: "Emoticons", Start: 0x1F600, End: 0x1F64F, Category: catEmoji},
	{Name: "Ornamental Dingbats", Start: 0x1F650, End: 0x1F67F, Category: catEmoji},
	{Name: "Transport and Map Symbols", Start: 0x1F680, End: 0x1F6FF, Category: catEmoji},
	{Name: "Alchemical Symbols", Start: 0x1F700, End: 0x1F77F, Category: catEmoji},
	{Name: "Supplemental Symbols and Pictographs", Start: 0x1F900, End: 0x1F9FF, Category: catEmoji},
	{Name: "Chess Symbols", Start: 0x1FA00, End: 0x1FA6F, Category: catEmoji},
	{Name: "Symbols and Pictographs Extended-A", Start: 0x1FA70, End: 0x1FAFF, Category: catEmoji},

	{Name: "Arrows", Start: 0x2190, End: 0x21FF, Category: catMath},
	{Name: "Mathematical Operators", Start: 0x2200, End: 0x22FF, Category: catMath},
	{Name: "Miscellaneous Technical", Start: 0x2300, End: 0x23FF, Category: catMath},
	{Name: "Control Pictures", Start: 0x2400, End: 0x243F, Category: catMath},
	{Name: "Optical Character Recognition", Start: 0x2440, End: 0x245F, Category: catMath},
	{Name: "Box Drawing", Start: 0x2500, End: 0x257F, Category: catMath},
	{Name: "Block Elements", Start: 0x2580, End: 0x259F, Category: catMath},
	{Name: "Geometric Shapes", Start: 0x25A0, End: 0x25FF, Category: catMath},
	{Name: "Miscellaneous Mathematical Symbols-A", Start: 0x27C0, End: 0x27EF, Category: catMath},
	{Name: "Supplemental Arrows-A", Start: 0x27F0, End: 0x27FF, Category: catMath},
	{Name: "Braille Patterns", Start: 0x2800, End: 0x28FF, Category: catMath},
	{Name: "Supplemental Arrows-B", Start: 0x2900, End: 0x297F, Category: catMath},
	{Name: "Miscellaneous Mathematical Symbols-B", Start: 0x2980, End: 0x29FF, Category: catMath},
	{Name: "Supplemental Mathematical Operators", Start: 0x2A00, End: 0x2AFF, Category: catMath},
	{Name: "Miscellaneous Symbols and Arrows", Start: 0x2B00, End: 0x2BFF, Category: catMath},
	{Name: "Byzantine Musical Symbols", Start: 0x1D000, End: 0x1D0FF, Category: catMath},
	{Name: "Musical Symbols", Start: 0x1D100, End: 0x1D1FF, Category: catMath},
	{Name: "Counting Rod Numerals", Start: 0x1D360, End: 0x1D37F, Category: catMath},
	{Name: "Mathematical Alphanumeric Symbols", Start: 0x1D400, End: 0x1D7FF, Category: catMath},
	{Name: "Geometric Shapes Extended", Start: 0x1F780, End: 0x1F7FF, Category: catMath},
	{Name: "Supplemental Arrows-C", Start: 0x1F800, End: 0x1F8FF, Category: catMath},

	{Name: "High Surrogates", Start: 0xD800, End: 0xDB7F, Category: catSpecial},
	{Name: "High Private Use Surrogates", Start: 0xDB80, End: 0xDBFF, Category: catSpecial},
	{Name: "Low Surrogates", Start: 0xDC00, End: 0xDFFF, Category: catSpecial},
	{Name: "Private Use Area", Start: 0xE000, End: 0xF8FF, Category: catSpecial},
	{Name: "Variation Selectors", Start: 0xFE00, End: 0xFE0F, Category: catSpecial},
	{Name: "Tags", Start: 0xE0000, End: 0xE007F, Category: catSpecial},
	{Name: "Variation Selectors Supplement", Start: 0xE0100, End: 0xE01EF, Category: catSpecial},
	{Name: "Supplementary Private Use Area-A", Start: 0xF0000, End: 0xFFFFF, Category: catSpecial},
	{Name: "Supplementary Private Use Area-B", Start: 0x100000, End: 0x10FFFF, Category: catSpecial},
}
