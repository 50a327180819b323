// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cofactor/matrix"
)

// ErrBadInput marks arguments that could not be read or decoded.
var ErrBadInput = errors.New("cli: bad input")

// stdinArg reads the operand from stdin; "@path" reads it from a file.
const (
	stdinArg   = "-"
	filePrefix = "@"
)

// sources resolves matrix arguments. Stdin may back at most one of them.
type sources struct {
	stdin     io.Reader
	stdinUsed bool
}

// read returns the raw bytes an argument refers to.
func (s *sources) read(arg string) ([]byte, error) {
	switch {
	case arg == stdinArg:
		if s.stdinUsed {
			return nil, fmt.Errorf("stdin already consumed: %w", ErrBadInput)
		}
		s.stdinUsed = true
		b, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %v: %w", err, ErrBadInput)
		}
		return b, nil
	case strings.HasPrefix(arg, filePrefix):
		path := strings.TrimPrefix(arg, filePrefix)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %v: %w", path, err, ErrBadInput)
		}
		return b, nil
	default:
		return []byte(arg), nil
	}
}

// matrix decodes a JSON array of numeric arrays into a Matrix.
// Ragged rows surface as matrix.ErrShapeMismatch.
func (s *sources) matrix(arg string) (matrix.Matrix, error) {
	raw, err := s.read(arg)
	if err != nil {
		return matrix.Matrix{}, err
	}
	var rows [][]float64
	if err = json.Unmarshal(raw, &rows); err != nil {
		return matrix.Matrix{}, fmt.Errorf("decode matrix: %v: %w", err, ErrBadInput)
	}

	return matrix.FromRows(rows)
}

// values decodes a JSON array of arrays of anything; numbers stay json.Number
// so SumValues sees the literal text.
func (s *sources) values(arg string) ([][]any, error) {
	raw, err := s.read(arg)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rows [][]any
	if err = dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %v: %w", err, ErrBadInput)
	}

	return rows, nil
}

// intArg parses a decimal integer argument.
func intArg(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, arg, ErrBadInput)
	}

	return v, nil
}

// encoder renders results as JSON with a fixed number formatting policy.
type encoder struct {
	w         io.Writer
	precision int // -1 = shortest round-trip form
}

// number formats v; NaN and ±Inf have no JSON form.
func (e encoder) number(v float64) (json.Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("result %v is not representable in JSON: %w", v, ErrBadInput)
	}
	if e.precision < 0 {
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	}

	return json.Number(strconv.FormatFloat(v, 'f', e.precision, 64)), nil
}

// scalar writes a single number followed by a newline.
func (e encoder) scalar(v float64) error {
	n, err := e.number(v)
	if err != nil {
		return err
	}

	return e.write(n)
}

// matrix writes m as an array of row arrays; the empty matrix is [].
func (e encoder) matrix(m matrix.Matrix) error {
	rows := m.Rows()
	out := make([][]json.Number, len(rows))
	for i, row := range rows {
		out[i] = make([]json.Number, len(row))
		for j, v := range row {
			n, err := e.number(v)
			if err != nil {
				return err
			}
			out[i][j] = n
		}
	}

	return e.write(out)
}

// shape writes [rows, cols].
func (e encoder) shape(r, c int) error {
	return e.write([2]int{r, c})
}

func (e encoder) write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	b = append(b, '\n')
	_, err = e.w.Write(b)

	return err
}
