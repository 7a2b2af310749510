package ucd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"

	"github.com/RemiKalbe/unicode-explorer/blocks"
	"github.com/RemiKalbe/unicode-explorer/logger"
	"github.com/RemiKalbe/unicode-explorer/metric/stopwatch"
	"github.com/RemiKalbe/unicode-explorer/names"
)

// Builder runs the name build pipeline: fetch, extract, parse, group,
// backfill, emit. One shot; any I/O failure aborts the run.
type Builder struct {
	URL      string
	CacheDir string
	OutDir   string
}

func (b *Builder) Run() error {
	sw := stopwatch.New()

	m := sw.Start("fetch")
	path, err := Fetch(b.URL, b.CacheDir)
	m.Stop()
	if err != nil {
		return err
	}

	m = sw.Start("extract")
	archive, err := OpenArchive(path)
	m.Stop()
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := b.buildFrom(archive.XML(), sw); err != nil {
		return err
	}

	logger.Info("name build finished", sw.Fields()...)
	return nil
}

func (b *Builder) buildFrom(r io.Reader, sw *stopwatch.Stopwatch) error {
	m := sw.Start("parse")
	grouped, parsed := group(r)
	m.Stop()
	if parsed.err != nil {
		return parsed.err
	}
	logger.Info("parsed UCD",
		zap.Int("named", parsed.named),
		zap.Int("unowned", parsed.unowned),
		zap.Int("blocks", len(grouped)))

	m = sw.Start("backfill")
	added := backfill(grouped)
	m.Stop()
	logger.Info("backfilled algorithmic names", zap.Int("added", added))

	m = sw.Start("emit")
	files, written, err := emit(b.OutDir, grouped)
	m.Stop()
	if err != nil {
		return err
	}
	logger.Info("emitted name files",
		zap.Int("files", files),
		zap.String("size", datasize.ByteSize(written).HumanReadable()))
	return nil
}

type parseStats struct {
	named   int
	unowned int
	err     error
}

// group buckets every named code point into its owning catalog block.
// Points outside any catalog block are dropped, the catalog does not
// cover all of the code space.
func group(r io.Reader) (map[string]names.Map, parseStats) {
	grouped := map[string]names.Map{}
	stats := parseStats{}
	stats.err = ParseChars(r, func(c Char) {
		stats.named++
		block, ok := blocks.ByCodePoint(c.CP)
		if !ok {
			stats.unowned++
			return
		}
		m := grouped[block.Slug]
		if m == nil {
			m = names.Map{}
			grouped[block.Slug] = m
		}
		m[names.Key(c.CP)] = c.Name
	})
	return grouped, stats
}

// backfill walks the full range of every block whose names are
// algorithmic (Hangul syllables, the CJK unified ideograph blocks) and
// fills in points the XML pass missed.
func backfill(grouped map[string]names.Map) int {
	added := 0
	for _, b := range blocks.All() {
		if _, ok := names.Derive(b.Start); !ok {
			continue
		}
		m := grouped[b.Slug]
		if m == nil {
			m = names.Map{}
			grouped[b.Slug] = m
		}
		for cp := range blocks.CharCodes(b) {
			name, ok := names.Derive(cp)
			if !ok {
				// unassigned tail of the Hangul Syllables block
				continue
			}
			key := names.Key(cp)
			if _, exists := m[key]; !exists {
				m[key] = name
				added++
			}
		}
	}
	return added
}

// emit writes one <slug>.json per non-empty block. Map marshaling
// sorts keys, so output is deterministic.
func emit(outDir string, grouped map[string]names.Map) (int, uint64, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, 0, fmt.Errorf("creating output dir: %w", err)
	}

	files := 0
	var written uint64
	for slug, m := range grouped {
		if len(m) == 0 {
			continue
		}
		data, err := json.Marshal(m)
		if err != nil {
			return files, written, fmt.Errorf("marshaling %s: %w", slug, err)
		}
		path := filepath.Join(outDir, slug+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return files, written, fmt.Errorf("writing %s: %w", path, err)
		}
		files++
		written += uint64(len(data))
	}
	return files, written, nil
}
