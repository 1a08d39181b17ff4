// Package models defines the records read from an exported API collection.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeaderBlock is returned when a record carries no header fields.
var ErrNoHeaderBlock = errors.New("record has no header fields")

// Record is one element of the exported collection.
// Optional fields are pointers so an absent key can be told apart from an empty string.
type Record struct {
	Type   *string         `json:"type"`
	URL    *string         `json:"url"`
	Title  *string         `json:"title"`
	Header json.RawMessage `json:"header,omitempty"`
}

// HeaderField is a documented request header.
type HeaderField struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

// TypeOrEmpty returns the record type, or "" when absent.
func (r *Record) TypeOrEmpty() string {
	return valueOr(r.Type, "")
}

// URLOrEmpty returns the record URL, or "" when absent.
func (r *Record) URLOrEmpty() string {
	return valueOr(r.URL, "")
}

// TitleOr returns the record title, or fallback when absent.
func (r *Record) TitleOr(fallback string) string {
	return valueOr(r.Title, fallback)
}

// HeaderFields decodes header.fields.Header.
// It returns ErrNoHeaderBlock when header, fields or Header is missing or falsy
// (null, false, 0, ""). A present list, even an empty one, is returned as is;
// any other Header value is a shape error.
func (r *Record) HeaderFields() ([]HeaderField, error) {
	fields, ok := member(r.Header, "fields")
	if !ok {
		return nil, ErrNoHeaderBlock
	}

	list, ok := member(fields, "Header")
	if !ok {
		return nil, ErrNoHeaderBlock
	}

	var header []HeaderField
	if err := json.Unmarshal(list, &header); err != nil {
		return nil, fmt.Errorf("header.fields.Header is not a list of header fields: %w", err)
	}

	return header, nil
}

// member returns the value under key when raw is an object holding a truthy value there.
func member(raw json.RawMessage, key string) (json.RawMessage, bool) {
	if !truthy(raw) {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}

	value, ok := obj[key]
	if !ok || !truthy(value) {
		return nil, false
	}

	return value, true
}

func truthy(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}

	return *s
}
