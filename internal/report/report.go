// Package report runs the extraction reports over an exported API collection.
//
// Every report shares one failure policy: if anything goes wrong while loading
// or rendering, the report writes a single line with the error description in
// place of its output and returns normally.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"apiextract/internal/filter"
	"apiextract/internal/formatter"
	"apiextract/internal/logger"
	"apiextract/internal/models"
	"apiextract/internal/source"
)

// Format selects how the headers report is rendered.
type Format string

// Headers report formats.
const (
	FormatLines Format = "lines"
	FormatTable Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("format must be 'lines' or 'table'")

// ParseFormat validates a -format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatLines:
		return FormatLines, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Runner executes reports.
type Runner struct {
	log     *logger.Logger
	matcher *filter.Matcher
}

// NewRunner creates a runner that logs diagnostics to log.
func NewRunner(log *logger.Logger) *Runner {
	return &Runner{
		log:     log,
		matcher: filter.NewMatcher(),
	}
}

// Matches writes one line per record mentioning filter.Keyword, in input order.
func (r *Runner) Matches(w io.Writer, path string) {
	r.run(w, "matches", func() ([]string, error) {
		records, err := source.Load(path)
		if err != nil {
			return nil, err
		}

		matched := r.matcher.Select(records)
		r.log.Debug("filtered records", "path", path, "records", len(records), "matched", len(matched))

		lines := make([]string, 0, len(matched))
		for _, rec := range matched {
			lines = append(lines, formatter.MatchLine(rec))
		}

		return lines, nil
	})
}

// Headers writes the documented request headers of every endpoint that declares a header list.
// An endpoint whose list is present but empty still gets its block.
func (r *Runner) Headers(w io.Writer, path string, format Format) {
	r.run(w, "headers", func() ([]string, error) {
		records, err := source.Load(path)
		if err != nil {
			return nil, err
		}

		endpoints, err := collectHeaders(records)
		if err != nil {
			return nil, err
		}

		r.log.Debug("collected headers", "path", path, "records", len(records), "endpoints", len(endpoints))

		switch format {
		case FormatTable:
			return headersTable(endpoints), nil
		case FormatLines, "":
			return headersLines(endpoints), nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
		}
	})
}

// run is the top-level catch-all shared by every report.
// Output is rendered completely before anything is written, so a failure
// never leaves partial report lines behind it.
func (r *Runner) run(w io.Writer, name string, render func() ([]string, error)) {
	lines, err := render()
	if err != nil {
		r.log.Debug("report failed", "report", name, "error", err)
		lines = []string{err.Error()}
	}

	for _, line := range lines {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			r.log.Error("failed to write report", "report", name, "error", werr)

			return
		}
	}
}

type endpointHeaders struct {
	record *models.Record
	fields []models.HeaderField
}

// collectHeaders fails on the first header list with an unexpected shape.
func collectHeaders(records []*models.Record) ([]endpointHeaders, error) {
	var endpoints []endpointHeaders

	for i, rec := range records {
		fields, err := rec.HeaderFields()
		if errors.Is(err, models.ErrNoHeaderBlock) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		endpoints = append(endpoints, endpointHeaders{record: rec, fields: fields})
	}

	return endpoints, nil
}

func headersLines(endpoints []endpointHeaders) []string {
	var lines []string
	for _, e := range endpoints {
		lines = append(lines, formatter.HeaderBlock(e.record, e.fields)...)
	}

	return lines
}

func headersTable(endpoints []endpointHeaders) []string {
	if len(endpoints) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(endpoints))
	for _, e := range endpoints {
		rows = append(rows, []string{
			e.record.TypeOrEmpty(),
			e.record.URLOrEmpty(),
			formatter.HeaderList(e.fields),
		})
	}

	return formatter.Table([]string{"Type", "URL", "Headers"}, rows)
}
