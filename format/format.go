// Package format renders syntax trees and analysis reports.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/aoc/cubes"
)

// ReportEncoder writes a cubes.Report in one output format.
type ReportEncoder interface {
	encoding.TextMarshaler
	Encode(report cubes.Report) error
}

// NewReportEncoder returns the encoder registered under name: text, line or json.
func NewReportEncoder(name string, w io.Writer) (ReportEncoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected text, line or json)", name)
}
