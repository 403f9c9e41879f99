package lpio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/lpdict"
)

// Format is an output encoding.
type Format string

const (
	// Text is the status line, then the value and the solution when optimal.
	Text Format = "text"
	// JSON is one object per result.
	JSON Format = "json"
	// YAML is one document per result.
	YAML Format = "yaml"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("lpio: unknown output format")

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", errors.Wrapf(ErrFormat, "%q", s)
}

// Round keeps 7 significant digits.
func Round(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 7, 64), 64)
	if r == 0 {
		return 0
	}
	return r
}

// FormatFloat renders v with 7 significant digits, without trailing zeros
// or trailing decimal point.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}

// Write encodes res to w in format f.
func Write(w io.Writer, f Format, res *lpdict.Result) error {
	switch f {
	case Text:
		return WriteText(w, res)
	case JSON:
		return WriteJSON(w, res)
	case YAML:
		return WriteYAML(w, res)
	}
	return errors.Wrapf(ErrFormat, "%q", f)
}

// WriteText writes the status line and, for an optimal result, the value and
// the solution on the next two lines.
func WriteText(w io.Writer, res *lpdict.Result) error {
	if res.Status != lpdict.Optimal {
		_, err := fmt.Fprintln(w, res.Status)
		return err
	}
	xs := make([]string, len(res.Solution))
	for i, x := range res.Solution {
		xs[i] = FormatFloat(x)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", res.Status, FormatFloat(res.Value), strings.Join(xs, " "))
	return err
}

type report struct {
	Status     string    `json:"status" yaml:"status"`
	Value      *float64  `json:"value,omitempty" yaml:"value,omitempty"`
	Solution   []float64 `json:"solution,omitempty" yaml:"solution,omitempty"`
	Slack      []float64 `json:"slack,omitempty" yaml:"slack,omitempty"`
	Iterations int       `json:"iterations" yaml:"iterations"`
}

func newReport(res *lpdict.Result) report {
	rep := report{Status: res.Status.String(), Iterations: res.Iterations}
	if res.Status != lpdict.Optimal {
		return rep
	}
	v := Round(res.Value)
	rep.Value = &v
	rep.Solution = roundAll(res.Solution)
	rep.Slack = roundAll(res.Slack)
	return rep
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = Round(v)
	}
	return out
}

// WriteJSON writes res as a single JSON object.
func WriteJSON(w io.Writer, res *lpdict.Result) error {
	return errors.Wrap(json.NewEncoder(w).Encode(newReport(res)), "encoding json")
}

// WriteYAML writes res as a YAML document.
func WriteYAML(w io.Writer, res *lpdict.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(res)); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}
