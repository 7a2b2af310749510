package ucd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RemiKalbe/unicode-explorer/names"
)

func TestGroup(t *testing.T) {
	doc := `<ucd>
		<char cp="0041" na="LATIN CAPITAL LETTER A"/>
		<char cp="0042" na="LATIN CAPITAL LETTER B"/>
		<char cp="00E9" na="LATIN SMALL LETTER E WITH ACUTE"/>
		<char cp="2FE0" na="IN A CATALOG GAP"/>
	</ucd>`

	grouped, stats := group(strings.NewReader(doc))
	require.NoError(t, stats.err)
	assert.Equal(t, 4, stats.named)
	assert.Equal(t, 1, stats.unowned)

	require.Contains(t, grouped, "basic-latin")
	require.Contains(t, grouped, "latin-1-supplement")
	assert.Equal(t, "LATIN CAPITAL LETTER A", grouped["basic-latin"]["0041"])
	assert.Equal(t, "LATIN CAPITAL LETTER B", grouped["basic-latin"]["0042"])
	assert.Equal(t, "LATIN SMALL LETTER E WITH ACUTE", grouped["latin-1-supplement"]["00E9"])
	assert.Len(t, grouped, 2)
}

func TestBackfill(t *testing.T) {
	grouped := map[string]names.Map{
		// pre-seeded entry must not be overwritten
		"hangul-syllables": {"AC00": "ALREADY HERE"},
	}

	added := backfill(grouped)
	assert.Greater(t, added, 0)

	hangul := grouped["hangul-syllables"]
	// 19*21*28 syllables; the block tail D7A4..D7AF stays unassigned
	assert.Len(t, hangul, 11172)
	assert.Equal(t, "ALREADY HERE", hangul["AC00"])
	assert.Equal(t, "HANGUL SYLLABLE GAG", hangul["AC01"])
	assert.Equal(t, "HANGUL SYLLABLE HIH", hangul["D7A3"])
	_, ok := hangul["D7A4"]
	assert.False(t, ok)

	base := grouped["cjk-unified-ideographs"]
	assert.Len(t, base, 0x9FFF-0x4E00+1)
	assert.Equal(t, "CJK UNIFIED IDEOGRAPH-4E00", base["4E00"])

	extB := grouped["cjk-unified-ideographs-extension-b"]
	assert.Len(t, extB, 0x2A6DF-0x20000+1)
	assert.Equal(t, "CJK UNIFIED IDEOGRAPH-20000", extB["20000"])

	// non-algorithmic blocks untouched
	_, ok = grouped["basic-latin"]
	assert.False(t, ok)
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()
	grouped := map[string]names.Map{
		"basic-latin": {"0041": "LATIN CAPITAL LETTER A"},
		"empty-block": {},
	}

	files, written, err := emit(dir, grouped)
	require.NoError(t, err)
	assert.Equal(t, 1, files)
	assert.Greater(t, written, uint64(0))

	data, err := os.ReadFile(filepath.Join(dir, "basic-latin.json"))
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "LATIN CAPITAL LETTER A", m["0041"])

	_, err = os.Stat(filepath.Join(dir, "empty-block.json"))
	assert.True(t, os.IsNotExist(err))
}
