package matio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lvlnum/matrix"
)

// gzSuffix switches the file helpers into compressed mode.
const gzSuffix = ".gz"

// WriteFile stores m at path in MatrixMarket array format. A path
// ending in ".gz" is gzip-compressed transparently.
func WriteFile(path string, m matrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: WriteFile: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, gzSuffix) {
		gz = gzip.NewWriter(f)
		w = gz
	}

	werr := Write(w, m)
	if gz != nil {
		if cerr := gz.Close(); werr == nil && cerr != nil {
			werr = fmt.Errorf("matio: WriteFile: %w", cerr)
		}
	}
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("matio: WriteFile: %w", cerr)
	}

	return werr
}

// ReadFile loads a MatrixMarket array file from path, decompressing
// transparently when the path ends in ".gz".
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: ReadFile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzSuffix) {
		gz, gerr := gzip.NewReader(f)
		if gerr != nil {
			return nil, fmt.Errorf("matio: ReadFile: %w", gerr)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}
