package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlnum/matrix"
)

// NOTE ON NAMING & PREFIXING:
// Format violations carry the two sentinels below, wrapped with the line
// that broke. Unsupported-but-legitimate MatrixMarket variants report
// matrix.ErrNotImplemented instead: the file is fine, the reader is not.
var (
	// ErrBadHeader reports a broken banner or size line.
	ErrBadHeader = errors.New("matio: malformed MatrixMarket header")

	// ErrBadPayload reports a value section that does not match the
	// announced size: truncated, overfull, or not parseable as finite
	// real numbers.
	ErrBadPayload = errors.New("matio: malformed MatrixMarket payload")
)

const banner = "%%MatrixMarket matrix array real general"

// maxLine bounds a single input line; array-format lines are tiny, so
// one megabyte is already outlandish.
const maxLine = 1 << 20

// Write encodes m in MatrixMarket array format: banner, size line, then
// every entry in column-major order with full round-trip precision.
//
// Returns matrix.ErrNilMatrix for a nil matrix and the writer's error,
// if any, after the final flush.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matio: Write: %w", err)
	}

	r, c := m.Rows(), m.Cols()
	if r < 1 || c < 1 {
		return fmt.Errorf("matio: Write: %dx%d: %w", r, c, matrix.ErrBadShape)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, r, c)

	// Column-major, as the format demands.
	var (
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("matio: Write: %w", err)
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			bw.WriteByte('\n')
		}
	}

	// bufio keeps the first write error; one check settles them all.
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("matio: Write: %w", err)
	}

	return nil
}

// Read decodes a MatrixMarket array file into a dense matrix.
//
// Returns:
//   - ErrBadHeader on a broken banner or size line
//   - matrix.ErrNotImplemented for coordinate files and for complex,
//     integer, pattern or non-general variants
//   - ErrBadPayload when the value section disagrees with the size line
//     or contains non-finite entries
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("matio: Read: %w", err)
		}

		return nil, fmt.Errorf("matio: Read: empty input: %w", ErrBadHeader)
	}
	if err := parseBanner(sc.Text()); err != nil {
		return nil, fmt.Errorf("matio: Read: %w", err)
	}

	rows, cols, err := parseSize(sc)
	if err != nil {
		return nil, fmt.Errorf("matio: Read: %w", err)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matio: Read: %w", err)
	}

	// Entry k of the stream lands at (k mod rows, k div rows):
	// column-major order.
	total := rows * cols
	count := 0
	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if count == total {
				return nil, fmt.Errorf("matio: Read: extra value %q beyond %d entries: %w",
					tok, total, ErrBadPayload)
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, fmt.Errorf("matio: Read: value %d: %q: %w", count, tok, ErrBadPayload)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("matio: Read: value %d is not finite: %w", count, ErrBadPayload)
			}
			_ = m.Set(count%rows, count/rows, v) // bounds hold by construction
			count++
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("matio: Read: %w", err)
	}
	if count != total {
		return nil, fmt.Errorf("matio: Read: %d of %d values: %w", count, total, ErrBadPayload)
	}

	return m, nil
}

// parseBanner checks the five banner tokens. Tokens are matched without
// case per the format specification.
func parseBanner(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 5 || !strings.EqualFold(fields[0], "%%MatrixMarket") {
		return fmt.Errorf("banner %q: %w", line, ErrBadHeader)
	}

	object := strings.ToLower(fields[1])
	format := strings.ToLower(fields[2])
	field := strings.ToLower(fields[3])
	symmetry := strings.ToLower(fields[4])

	if object != "matrix" {
		return fmt.Errorf("object %q: %w", object, ErrBadHeader)
	}

	switch format {
	case "array":
	case "coordinate":
		return fmt.Errorf("coordinate format: %w", matrix.ErrNotImplemented)
	default:
		return fmt.Errorf("format %q: %w", format, ErrBadHeader)
	}

	switch field {
	case "real":
	case "complex", "integer", "pattern":
		return fmt.Errorf("%s field: %w", field, matrix.ErrNotImplemented)
	default:
		return fmt.Errorf("field %q: %w", field, ErrBadHeader)
	}

	switch symmetry {
	case "general":
	case "symmetric", "skew-symmetric", "hermitian":
		return fmt.Errorf("%s symmetry: %w", symmetry, matrix.ErrNotImplemented)
	default:
		return fmt.Errorf("symmetry %q: %w", symmetry, ErrBadHeader)
	}

	return nil
}

// parseSize skips comment lines and reads "rows cols", both positive.
func parseSize(sc *bufio.Scanner) (int, int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue // comments and blanks may precede the size line
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("size line %q: %w", line, ErrBadHeader)
		}
		rows, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("size line %q: %w", line, ErrBadHeader)
		}
		cols, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("size line %q: %w", line, ErrBadHeader)
		}
		if rows < 1 || cols < 1 {
			return 0, 0, fmt.Errorf("size %dx%d: %w", rows, cols, ErrBadHeader)
		}

		return rows, cols, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}

	return 0, 0, fmt.Errorf("missing size line: %w", ErrBadHeader)
}

// WriteVector encodes x as an n×1 array, the conventional MatrixMarket
// shape for vectors.
//
// Returns matrix.ErrBadShape for an empty vector and matrix.ErrNaNInf
// for non-finite entries.
func WriteVector(w io.Writer, x []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("matio: WriteVector: empty vector: %w", matrix.ErrBadShape)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return fmt.Errorf("matio: WriteVector: %w", err)
	}

	m, err := matrix.NewDense(len(x), 1)
	if err != nil {
		return fmt.Errorf("matio: WriteVector: %w", err)
	}
	for i, v := range x {
		_ = m.Set(i, 0, v)
	}

	return Write(w, m)
}

// ReadVector decodes an array file holding a single column or a single
// row and returns it as a plain slice.
//
// Returns matrix.ErrBadShape when the stored matrix is neither n×1 nor
// 1×n, plus everything Read can report.
func ReadVector(r io.Reader) ([]float64, error) {
	m, err := Read(r)
	if err != nil {
		return nil, err
	}

	switch {
	case m.Cols() == 1:
		x := make([]float64, m.Rows())
		for i := range x {
			x[i], _ = m.At(i, 0)
		}

		return x, nil
	case m.Rows() == 1:
		row, _ := m.RowView(0)

		return matrix.CloneVec(row), nil
	default:
		return nil, fmt.Errorf("matio: ReadVector: %dx%d is not a vector: %w",
			m.Rows(), m.Cols(), matrix.ErrBadShape)
	}
}
