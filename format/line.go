package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/aoc/cubes"
)

// LineEncoder writes one tab-separated line per game followed by the totals.
type LineEncoder struct {
	w      io.Writer
	report cubes.Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report cubes.Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	fmt.Fprintf(&sb, "rule\t%s\n", r.Rule)
	for _, g := range r.Games {
		fmt.Fprintf(&sb, "game\t%d\t%s\t%s\t%d\n",
			g.ID,
			feasibility(g.Feasible),
			g.Minimum,
			g.Power,
		)
	}
	fmt.Fprintf(&sb, "feasible_sum\t%d\n", r.FeasibleSum)
	fmt.Fprintf(&sb, "power_sum\t%d\n", r.PowerSum)

	return []byte(sb.String()), nil
}

func feasibility(ok bool) string {
	if ok {
		return "feasible"
	}
	return "infeasible"
}

// TextEncoder writes the two puzzle answers.
type TextEncoder struct {
	w      io.Writer
	report cubes.Report
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(report cubes.Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("Part 1: %d\nPart 2: %d\n", e.report.FeasibleSum, e.report.PowerSum)), nil
}
