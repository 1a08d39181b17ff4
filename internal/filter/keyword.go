// Package filter selects the records that mention the customer keyword.
package filter

import (
	"apiextract/internal/models"
	"apiextract/pkg/utils"
)

// Keyword is matched case-insensitively against url, then title.
const Keyword = "clientes"

// Matcher tests records against Keyword.
type Matcher struct {
	strings *utils.StringHelper
}

// NewMatcher creates a new matcher instance.
func NewMatcher() *Matcher {
	return &Matcher{
		strings: utils.NewStringHelper(),
	}
}

// Match reports whether rec's url, or failing that its title, contains Keyword.
// Absent fields never match.
func (m *Matcher) Match(rec *models.Record) bool {
	if rec.URL != nil && m.strings.ContainsFold(*rec.URL, Keyword) {
		return true
	}

	return rec.Title != nil && m.strings.ContainsFold(*rec.Title, Keyword)
}

// Select returns the matching records in input order.
func (m *Matcher) Select(records []*models.Record) []*models.Record {
	var matched []*models.Record

	for _, rec := range records {
		if m.Match(rec) {
			matched = append(matched, rec)
		}
	}

	return matched
}
