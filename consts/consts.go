package consts

const (
	KB = 1024
	MB = 1024 * KB
)

const (
	// MaxCodePoint is the last valid Unicode code point.
	MaxCodePoint = 0x10FFFF

	// Hangul syllable composition, see Unicode ch. 3.12.
	HangulBase       = 0xAC00
	HangulLeadCount  = 19
	HangulVowelCount = 21
	HangulTrailCount = 28
	HangulCount      = HangulLeadCount * HangulVowelCount * HangulTrailCount
	HangulEnd        = HangulBase + HangulCount - 1 // 0xD7A3

	// HexKeyDigits is the minimum width of zero-padded hex lookup keys
	// in the per-block name files ("0041", not "41").
	HexKeyDigits = 4
)

const (
	// DefaultUCDURL is the flat single-file XML snapshot of the Unicode
	// Character Database.
	DefaultUCDURL = "https://www.unicode.org/Public/UCD/latest/ucdxml/ucd.all.flat.zip"

	DefaultCacheDir = ".ucd-cache"
	DefaultDataDir  = "data/names"

	DefaultHTTPAddr = ":8080"
)
