// Package utils provides common utility functions.
package utils

import "strings"

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// ContainsFold reports whether substr is within s, ignoring case.
// Both sides are lowercased with Unicode rules before comparing.
func (s *StringHelper) ContainsFold(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// NormalizeWhitespace replaces runs of whitespace, newlines included, with a single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
