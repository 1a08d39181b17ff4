// Package formatter renders records as report lines and markdown tables.
package formatter

import (
	"fmt"
	"strings"

	"apiextract/internal/models"
)

// NoTitle stands in for an absent title.
const NoTitle = "No Title"

// HeaderSeparator closes each endpoint block in the headers report.
const HeaderSeparator = "---"

// MatchLine formats a matched record as "{type} {url} - {title}".
func MatchLine(rec *models.Record) string {
	return fmt.Sprintf("%s %s - %s", rec.TypeOrEmpty(), rec.URLOrEmpty(), rec.TitleOr(NoTitle))
}

// HeaderList joins fields as "field (type), field (type)".
func HeaderList(fields []models.HeaderField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Type))
	}

	return strings.Join(parts, ", ")
}

// HeaderBlock renders one endpoint of the headers report.
func HeaderBlock(rec *models.Record, fields []models.HeaderField) []string {
	return []string{
		fmt.Sprintf("Endpoint: %s %s", rec.TypeOrEmpty(), rec.URLOrEmpty()),
		"Headers: " + HeaderList(fields),
		HeaderSeparator,
	}
}
