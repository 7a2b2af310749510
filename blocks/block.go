// Package blocks holds the static catalog of Unicode blocks and the
// lookup and parsing helpers used to resolve slugs, code points and
// search queries against it.
package blocks

import (
	"iter"
	"strconv"
	"strings"

	"github.com/RemiKalbe/unicode-explorer/consts"
)

// UnicodeBlock is a named, contiguous code point range from the
// standard's Blocks.txt, annotated with a coarse category for the
// sidebar grouping and a URL slug derived from the name.
type UnicodeBlock struct {
	Name     string
	Start    rune
	End      rune
	Category string
	Slug     string
}

// Count returns the number of code points in the block.
func (b UnicodeBlock) Count() int {
	return int(b.End-b.Start) + 1
}

// Contains reports whether cp falls inside the block's range.
func (b UnicodeBlock) Contains(cp rune) bool {
	return cp >= b.Start && cp <= b.End
}

var (
	catalog    []UnicodeBlock
	categories []string
)

func init() {
	catalog = make([]UnicodeBlock, len(table))
	seen := map[string]bool{}
	for i, b := range table {
		b.Slug = Slugify(b.Name)
		catalog[i] = b
		if !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
}

// Slugify derives the URL identifier of a block name: lowercase, runs
// of non-alphanumeric characters collapsed into a single hyphen,
// leading and trailing hyphens trimmed.
func Slugify(name string) string {
	var sb strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if hyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			hyphen = false
			sb.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return sb.String()
}

// All returns the catalog in table order. Blocks are grouped by
// category in the table, so iteration order is the sidebar order.
// Callers must not mutate the returned slice.
func All() []UnicodeBlock {
	return catalog
}

// Categories returns the distinct category labels in first-seen order.
func Categories() []string {
	return categories
}

// BySlug finds the block with the given slug. The catalog holds ~190
// entries, a linear scan is fine.
func BySlug(slug string) (UnicodeBlock, bool) {
	for _, b := range catalog {
		if b.Slug == slug {
			return b, true
		}
	}
	return UnicodeBlock{}, false
}

// ByCodePoint finds the block containing cp. Block ranges do not
// overlap, so the first hit is the only hit.
func ByCodePoint(cp rune) (UnicodeBlock, bool) {
	for _, b := range catalog {
		if b.Contains(cp) {
			return b, true
		}
	}
	return UnicodeBlock{}, false
}

// CharCodes yields every code point of the block in ascending order.
// The sequence is finite and restartable.
func CharCodes(b UnicodeBlock) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for cp := b.Start; cp <= b.End; cp++ {
			if !yield(cp) {
				return
			}
		}
	}
}

// SearchByText returns the blocks whose name or category contains the
// query, case-insensitively. An empty query returns the full catalog.
func SearchByText(query string) []UnicodeBlock {
	if query == "" {
		return catalog
	}
	q := strings.ToLower(query)
	var out []UnicodeBlock
	for _, b := range catalog {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

// ParseCodePoint interprets text as a hexadecimal code point with an
// optional "U+" or "0x" prefix, case-insensitive. It is the single
// parser behind both search hex detection and URL segment decoding, so
// the two entry points accept exactly the same inputs. Returns false
// for non-hex input and for values past the last code point.
func ParseCodePoint(text string) (rune, bool) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if rest, ok := strings.CutPrefix(s, "U+"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		s = rest
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > consts.MaxCodePoint {
		return 0, false
	}
	return rune(v), true
}
