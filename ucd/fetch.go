// Package ucd implements the offline name builder: it downloads the
// Unicode Character Database, extracts a name for every assigned code
// point and emits one name file per catalog block.
package ucd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"

	"github.com/RemiKalbe/unicode-explorer/logger"
)

// Fetch downloads the UCD archive into cacheDir unless a cached copy
// is already there, and returns the local path. The cache is keyed by
// presence only; delete the file to force a re-download.
func Fetch(url, cacheDir string) (string, error) {
	path := filepath.Join(cacheDir, filepath.Base(url))
	if _, err := os.Stat(path); err == nil {
		logger.Info("using cached UCD archive", zap.String("path", path))
		return path, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	logger.Info("downloading UCD archive", zap.String("url", url))
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", tmp, err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("renaming archive: %w", err)
	}

	logger.Info("downloaded UCD archive",
		zap.String("path", path),
		zap.String("size", datasize.ByteSize(n).HumanReadable()))
	return path, nil
}
