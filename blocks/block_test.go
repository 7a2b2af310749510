package blocks

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RemiKalbe/unicode-explorer/consts"
)

func TestCatalogBounds(t *testing.T) {
	for _, b := range All() {
		assert.LessOrEqual(t, b.Start, b.End, "block %q", b.Name)
		assert.GreaterOrEqual(t, b.Start, rune(0), "block %q", b.Name)
		assert.LessOrEqual(t, b.End, rune(consts.MaxCodePoint), "block %q", b.Name)
	}
}

func TestCatalogNoOverlap(t *testing.T) {
	// never enforced at construction, so assert it explicitly
	sorted := append([]UnicodeBlock{}, All()...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		assert.Greater(t, sorted[i].Start, sorted[i-1].End,
			"blocks %q and %q overlap", sorted[i-1].Name, sorted[i].Name)
	}
}

func TestCatalogUniqueNamesAndSlugs(t *testing.T) {
	names := map[string]bool{}
	slugs := map[string]bool{}
	for _, b := range All() {
		assert.False(t, names[b.Name], "duplicate name %q", b.Name)
		assert.False(t, slugs[b.Slug], "duplicate slug %q", b.Slug)
		names[b.Name] = true
		slugs[b.Slug] = true
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Basic Latin", "basic-latin"},
		{"Latin-1 Supplement", "latin-1-supplement"},
		{"Miscellaneous Symbols and Arrows", "miscellaneous-symbols-and-arrows"},
		{"Phags-pa", "phags-pa"},
		{"NKo", "nko"},
		{"  Odd -- Name  ", "odd-name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name), "Slugify(%q)", tt.name)
	}
}

func TestBySlug(t *testing.T) {
	b, ok := BySlug("basic-latin")
	require.True(t, ok)
	assert.Equal(t, "Basic Latin", b.Name)
	assert.Equal(t, rune(0x0000), b.Start)
	assert.Equal(t, rune(0x007F), b.End)

	_, ok = BySlug("no-such-block")
	assert.False(t, ok)
}

func TestByCodePoint(t *testing.T) {
	b, ok := ByCodePoint(0x41)
	require.True(t, ok)
	assert.Equal(t, "Basic Latin", b.Name)

	b, ok = ByCodePoint(0x4E2D)
	require.True(t, ok)
	assert.Equal(t, "CJK Unified Ideographs", b.Name)

	b, ok = ByCodePoint(0x10FFFF)
	require.True(t, ok)
	assert.Equal(t, "Supplementary Private Use Area-B", b.Name)

	// gap between catalog blocks
	_, ok = ByCodePoint(0x2FE0)
	assert.False(t, ok)
}

func TestByCodePointContainment(t *testing.T) {
	for _, b := range All() {
		for _, cp := range []rune{b.Start, b.End} {
			got, ok := ByCodePoint(cp)
			require.True(t, ok, "block %q cp %X", b.Name, cp)
			assert.True(t, got.Contains(cp))
			assert.Equal(t, b.Name, got.Name)
		}
	}
}

func TestCharCodes(t *testing.T) {
	b, ok := BySlug("combining-half-marks")
	require.True(t, ok)

	var got []rune
	for cp := range CharCodes(b) {
		got = append(got, cp)
	}
	require.Len(t, got, b.Count())
	assert.Equal(t, b.Start, got[0])
	assert.Equal(t, b.End, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1]+1, got[i])
	}

	// restartable
	n := 0
	for range CharCodes(b) {
		n++
	}
	assert.Equal(t, b.Count(), n)
}

func TestCharCodesEarlyStop(t *testing.T) {
	b, ok := BySlug("basic-latin")
	require.True(t, ok)

	n := 0
	for range CharCodes(b) {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestSearchByText(t *testing.T) {
	assert.Equal(t, All(), SearchByText(""))

	got := SearchByText("cyrillic")
	require.NotEmpty(t, got)
	for _, b := range got {
		assert.Contains(t, b.Name, "Cyrillic")
	}

	// category matches too
	got = SearchByText("emoji")
	require.NotEmpty(t, got)
	for _, b := range got {
		assert.Equal(t, "Emoji & Pictographs", b.Category)
	}

	assert.Empty(t, SearchByText("zzzzzz"))
}

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"U+0041", 0x41, true},
		{"u+0041", 0x41, true},
		{"0x41", 0x41, true},
		{"0X41", 0x41, true},
		{"41", 0x41, true},
		{"10FFFF", 0x10FFFF, true},
		{"0x10FFFF", 0x10FFFF, true},
		{"0", 0, true},
		{"hello", 0, false},
		{"-1", 0, false},
		{"0x110000", 0, false},
		{"110000", 0, false},
		{"", 0, false},
		{"U+", 0, false},
		{"0x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCodePoint(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCodePoint(%q) ok", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseCodePoint(%q)", tt.in)
		}
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "Latin", cats[0])

	seen := map[string]bool{}
	var firstSeen []string
	for _, b := range All() {
		if !seen[b.Category] {
			seen[b.Category] = true
			firstSeen = append(firstSeen, b.Category)
		}
	}
	assert.Equal(t, firstSeen, cats)
}
