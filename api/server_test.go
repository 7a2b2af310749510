package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RemiKalbe/unicode-explorer/blocks"
	"github.com/RemiKalbe/unicode-explorer/names"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "basic-latin.json"),
		[]byte(`{"0041":"LATIN CAPITAL LETTER A"}`), 0o644)
	require.NoError(t, err)
	return NewServer(":0", names.NewLoader(dir), 128)
}

func get(t *testing.T, s *Server, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestHandleBlocks(t *testing.T) {
	s := newTestServer(t)

	var resp blocksResponse
	code := get(t, s, "/api/blocks", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Blocks, len(blocks.All()))
	assert.Equal(t, blocks.Categories(), resp.Categories)
	assert.Equal(t, "basic-latin", resp.Blocks[0].Slug)
	assert.Equal(t, "0000", resp.Blocks[0].Start)
	assert.Equal(t, "007F", resp.Blocks[0].End)
	assert.Equal(t, 128, resp.Blocks[0].Count)
}

func TestHandleBlocksFiltered(t *testing.T) {
	s := newTestServer(t)

	var resp blocksResponse
	get(t, s, "/api/blocks?q=hiragana", &resp)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "hiragana", resp.Blocks[0].Slug)

	get(t, s, "/api/blocks?category=Latin", &resp)
	require.NotEmpty(t, resp.Blocks)
	for _, b := range resp.Blocks {
		assert.Equal(t, "Latin", b.Category)
	}
}

func TestHandleBlock(t *testing.T) {
	s := newTestServer(t)

	var resp blockResponse
	code := get(t, s, "/api/blocks/basic-latin", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Basic Latin", resp.Name)
	require.Len(t, resp.Chars, 128)
	assert.Equal(t, "0000", resp.Chars[0].CP)
	// name merged from the loader
	assert.Equal(t, "LATIN CAPITAL LETTER A", resp.Chars[0x41].Name)
	assert.Equal(t, "A", resp.Chars[0x41].Char)
}

func TestHandleBlockPaging(t *testing.T) {
	s := newTestServer(t)

	var resp blockResponse
	get(t, s, "/api/blocks/basic-latin?offset=64&limit=16", &resp)
	require.Len(t, resp.Chars, 16)
	assert.Equal(t, 64, resp.Offset)
	assert.Equal(t, "0040", resp.Chars[0].CP)
	assert.Equal(t, "004F", resp.Chars[15].CP)

	// limit capped at the configured page limit
	get(t, s, "/api/blocks/hangul-syllables?limit=100000", &resp)
	assert.Len(t, resp.Chars, 128)
}

func TestHandleBlockNotFound(t *testing.T) {
	s := newTestServer(t)
	code := get(t, s, "/api/blocks/no-such-block", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandleChar(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/char/U+0041", "/api/char/0x41", "/api/char/41"} {
		var resp charResponse
		code := get(t, s, path, &resp)
		require.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, "0041", resp.CP, path)
		assert.Equal(t, "A", resp.Char, path)
		assert.Equal(t, "LATIN CAPITAL LETTER A", resp.Name, path)
		require.NotNil(t, resp.Block, path)
		assert.Equal(t, "basic-latin", resp.Block.Slug, path)
		assert.Equal(t, []string{"0x41"}, resp.Encodings.UTF8, path)
		assert.Equal(t, []string{"0x0041"}, resp.Encodings.UTF16, path)
		assert.Equal(t, "&#x41;", resp.Encodings.HTMLEntity, path)
		assert.Equal(t, "A", resp.Encodings.URLEscape, path)
	}
}

func TestHandleCharSupplementary(t *testing.T) {
	s := newTestServer(t)

	var resp charResponse
	code := get(t, s, "/api/char/1F600", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1F600", resp.CP)
	assert.Equal(t, []string{"0xF0", "0x9F", "0x98", "0x80"}, resp.Encodings.UTF8)
	assert.Equal(t, []string{"0xD83D", "0xDE00"}, resp.Encodings.UTF16)
	require.NotNil(t, resp.Block)
	assert.Equal(t, "emoticons", resp.Block.Slug)
}

func TestHandleCharDerivedName(t *testing.T) {
	s := newTestServer(t)

	// no name file for the hangul block, derivation fills in
	var resp charResponse
	code := get(t, s, "/api/char/AC00", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "HANGUL SYLLABLE GA", resp.Name)
}

func TestHandleCharInvalid(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/char/zzz", "/api/char/110000", "/api/char/-1"} {
		code := get(t, s, path, nil)
		assert.Equal(t, http.StatusNotFound, code, path)
	}
}

func TestHandleSearchHex(t *testing.T) {
	s := newTestServer(t)

	var resp searchResponse
	code := get(t, s, "/api/search?q=U%2B0041", &resp)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Char)
	assert.Equal(t, "0041", resp.Char.CP)
	assert.Equal(t, "LATIN CAPITAL LETTER A", resp.Char.Name)
}

func TestHandleSearchText(t *testing.T) {
	s := newTestServer(t)

	var resp searchResponse
	get(t, s, "/api/search?q=cyrillic", &resp)
	assert.Nil(t, resp.Char)
	require.NotEmpty(t, resp.Blocks)
	for _, b := range resp.Blocks {
		assert.Contains(t, b.Name, "Cyrillic")
	}
}

func TestHandleSearchHexAlsoMatchesBlocks(t *testing.T) {
	s := newTestServer(t)

	// "ace" is valid hex and a substring of no block name; the char
	// result carries, the block list stays empty
	var resp searchResponse
	get(t, s, "/api/search?q=ace", &resp)
	require.NotNil(t, resp.Char)
	assert.Equal(t, "0ACE", resp.Char.CP)
}

func TestHandleSearchEmpty(t *testing.T) {
	s := newTestServer(t)

	var resp searchResponse
	get(t, s, "/api/search", &resp)
	assert.Nil(t, resp.Char)
	assert.Len(t, resp.Blocks, len(blocks.All()))
}
