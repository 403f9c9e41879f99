// Package lpio reads linear problems from their text form and writes solver results.
package lpio

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/lpdict"
)

// maxLineSize bounds the length of one input line.
const maxLineSize = 64 << 20

var (
	// ErrEmptyInput is returned when the input has no objective line.
	ErrEmptyInput = errors.New("lpio: empty input")
	// ErrRowLength is returned when a constraint line does not have n+1 numbers.
	ErrRowLength = errors.New("lpio: wrong number of coefficients")
	// ErrNotNumber is returned on a token that is not a finite number.
	ErrNotNumber = errors.New("lpio: not a number")
)

// Problem is maximize Objective*x subject to, for every constraint row
// [a_1 .. a_n b], a*x <= b, and x >= 0.
type Problem struct {
	Objective   []float64
	Constraints [][]float64
}

// Read parses a problem. The first non blank line holds the n objective
// coefficients, each following non blank line one constraint: n coefficients
// then the right hand side.
func Read(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	p := &Problem{}
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if p.Objective == nil {
			p.Objective = row
			continue
		}
		if len(row) != len(p.Objective)+1 {
			return nil, errors.Wrapf(ErrRowLength, "line %d: got %d, want %d", line, len(row), len(p.Objective)+1)
		}
		p.Constraints = append(p.Constraints, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading problem")
	}
	if p.Objective == nil {
		return nil, ErrEmptyInput
	}
	return p, nil
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, errors.Wrapf(ErrNotNumber, "%q", f)
		}
		row[i] = v
	}
	return row, nil
}

// Tableau converts the problem into its initial dictionary:
// [0, c] for the objective row and [b_i, -a_i] for constraint i.
func (p *Problem) Tableau() (*lpdict.Tableau, error) {
	rows := make([][]float64, 0, len(p.Constraints)+1)
	rows = append(rows, append([]float64{0}, p.Objective...))
	for _, c := range p.Constraints {
		n := len(c) - 1
		row := make([]float64, n+1)
		row[0] = c[n]
		for j, a := range c[:n] {
			if a != 0 {
				row[j+1] = -a
			}
		}
		rows = append(rows, row)
	}
	return lpdict.FromRows(rows)
}
