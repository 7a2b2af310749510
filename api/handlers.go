package api

import (
	"net/http"
	"strconv"

	"github.com/RemiKalbe/unicode-explorer/blocks"
	"github.com/RemiKalbe/unicode-explorer/names"
)

type blockInfo struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Count    int    `json:"count"`
}

func toBlockInfo(b blocks.UnicodeBlock) blockInfo {
	return blockInfo{
		Name:     b.Name,
		Slug:     b.Slug,
		Category: b.Category,
		Start:    names.Key(b.Start),
		End:      names.Key(b.End),
		Count:    b.Count(),
	}
}

type charInfo struct {
	CP   string `json:"cp"`
	Char string `json:"char"`
	Name string `json:"name,omitempty"`
}

func (s *Server) charInfo(cp rune, nameMap names.Map) charInfo {
	return charInfo{
		CP:   names.Key(cp),
		Char: string(cp),
		Name: nameMap[names.Key(cp)],
	}
}

type blocksResponse struct {
	Categories []string    `json:"categories"`
	Blocks     []blockInfo `json:"blocks"`
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	matched := blocks.SearchByText(r.URL.Query().Get("q"))

	category := r.URL.Query().Get("category")
	infos := make([]blockInfo, 0, len(matched))
	for _, b := range matched {
		if category != "" && b.Category != category {
			continue
		}
		infos = append(infos, toBlockInfo(b))
	}

	writeJSON(w, http.StatusOK, blocksResponse{
		Categories: blocks.Categories(),
		Blocks:     infos,
	})
}

type blockResponse struct {
	blockInfo
	Offset int        `json:"offset"`
	Chars  []charInfo `json:"chars"`
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	b, ok := blocks.BySlug(r.PathValue("slug"))
	if !ok {
		writeNotFound(w, "unknown block")
		return
	}

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", s.pageLimit)
	if limit <= 0 || limit > s.pageLimit {
		limit = s.pageLimit
	}

	nameMap := s.loader.Load(b.Slug)
	chars := make([]charInfo, 0, limit)
	i := 0
	for cp := range blocks.CharCodes(b) {
		if i >= offset+limit {
			break
		}
		if i >= offset {
			chars = append(chars, s.charInfo(cp, nameMap))
		}
		i++
	}

	writeJSON(w, http.StatusOK, blockResponse{
		blockInfo: toBlockInfo(b),
		Offset:    offset,
		Chars:     chars,
	})
}

type charResponse struct {
	charInfo
	Block     *blockInfo `json:"block,omitempty"`
	Encodings Encodings  `json:"encodings"`
}

func (s *Server) handleChar(w http.ResponseWriter, r *http.Request) {
	cp, ok := blocks.ParseCodePoint(r.PathValue("cp"))
	if !ok {
		writeNotFound(w, "invalid code point")
		return
	}

	resp := charResponse{
		charInfo:  charInfo{CP: names.Key(cp), Char: string(cp)},
		Encodings: encode(cp),
	}
	if b, ok := blocks.ByCodePoint(cp); ok {
		info := toBlockInfo(b)
		resp.Block = &info
		resp.Name = s.loader.Load(b.Slug)[names.Key(cp)]
	}
	if resp.Name == "" {
		// name files are optional, fall back to derivation
		resp.Name, _ = names.Derive(cp)
	}

	writeJSON(w, http.StatusOK, resp)
}

type searchResponse struct {
	Char   *charInfo   `json:"char,omitempty"`
	Blocks []blockInfo `json:"blocks"`
}

// handleSearch disambiguates hex queries from text ones: anything that
// parses as a code point matches the character, and the query still
// runs against block names so "cafe" vs "CAFE" stays browsable.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	resp := searchResponse{Blocks: []blockInfo{}}

	if cp, ok := blocks.ParseCodePoint(q); ok {
		info := charInfo{CP: names.Key(cp), Char: string(cp)}
		if b, found := blocks.ByCodePoint(cp); found {
			info.Name = s.loader.Load(b.Slug)[names.Key(cp)]
		}
		if info.Name == "" {
			info.Name, _ = names.Derive(cp)
		}
		resp.Char = &info
	}

	for _, b := range blocks.SearchByText(q) {
		resp.Blocks = append(resp.Blocks, toBlockInfo(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
