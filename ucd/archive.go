package ucd

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"go.uber.org/multierr"
)

// Archive is an opened UCD zip snapshot positioned at its single XML
// document.
type Archive struct {
	zr  *zip.ReadCloser
	xml io.ReadCloser
}

// OpenArchive opens the downloaded zip and locates the contained XML
// document. Deflate streams go through klauspost's flate, the archive
// is a few hundred MB uncompressed.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			_ = zr.Close()
			return nil, fmt.Errorf("opening %s in archive: %w", f.Name, err)
		}
		return &Archive{zr: zr, xml: rc}, nil
	}

	_ = zr.Close()
	return nil, fmt.Errorf("archive %s contains no xml document", path)
}

// XML returns the decompressed XML stream. Single use.
func (a *Archive) XML() io.Reader {
	return a.xml
}

func (a *Archive) Close() error {
	return multierr.Append(a.xml.Close(), a.zr.Close())
}
