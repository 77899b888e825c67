// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
)

// Placeholders printed for fields without a value.
const (
	PlaceholderNotFound = "-"
	PlaceholderTooSmall = "<too small>"
)

// Display returns the value of f as printed by the text and table renderers.
func (f Field) Display() string {
	switch f.Status {
	case chunk.StatusFound:
		return f.Value
	case chunk.StatusTooSmall:
		return PlaceholderTooSmall
	default:
		return PlaceholderNotFound
	}
}

type jsonField struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Value  string `json:"value,omitempty"`
}

type jsonReport struct {
	Fields []jsonField `json:"fields"`
}

// MarshalJSON encodes r as {"fields":[{"name":...,"status":...,"value":...}]}.
// Status is the text form of [chunk.Status]; value is omitted unless found.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{Fields: make([]jsonField, 0, len(r.Fields))}
	for _, f := range r.Fields {
		out.Fields = append(out.Fields, jsonField{
			Name:   f.Name,
			Status: f.Status.String(),
			Value:  f.Value,
		})
	}
	return json.Marshal(out)
}

// WriteText writes one "name: value" line per field. Several reports are
// separated by a "# certificate N" heading.
func WriteText(w io.Writer, reports ...*Report) error {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				buf.WriteByte('\n')
			}
			fmt.Fprintf(buf, "# certificate %d\n", i+1)
		}
		for _, f := range r.Fields {
			fmt.Fprintf(buf, "%s: %s\n", f.Name, f.Display())
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSON writes a single report as an object, or several as an array.
func WriteJSON(w io.Writer, reports ...*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

// WriteTable renders the reports as a markdown table with one row per field.
func WriteTable(w io.Writer, reports ...*Report) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Field", "Status", "Value"})

	var rows [][]string
	for i, r := range reports {
		for _, f := range r.Fields {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				f.Name,
				f.Status.String(),
				f.Display(),
			})
		}
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("report: failed to fill table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: failed to render table: %w", err)
	}
	return nil
}
