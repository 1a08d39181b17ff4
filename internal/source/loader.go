// Package source reads the exported API collection from disk.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"apiextract/internal/models"
)

// DefaultPath is the collection file read when nothing else is configured.
const DefaultPath = "api_data.json"

// Loader errors.
var (
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrNotArray        = errors.New("top-level JSON value is not an array")
	ErrNotObject       = errors.New("record is not a JSON object")
)

// Load opens path and decodes its top-level array of records.
// The file is closed before Load returns, whether decoding succeeded or not.
func Load(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return records, nil
}

// Decode reads a single UTF-8 encoded JSON array of records from r.
func Decode(r io.Reader) ([]*models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if offset := invalidUTF8Offset(data); offset >= 0 {
		return nil, fmt.Errorf("%w: invalid byte 0x%02x at position %d", ErrInvalidEncoding, data[offset], offset)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, ErrNotArray
	}

	records := make([]*models.Record, 0, len(items))

	for i, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNotObject, i)
		}

		var rec models.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		records = append(records, &rec)
	}

	return records, nil
}

// invalidUTF8Offset returns the position of the first byte that breaks UTF-8, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}

		i += size
	}

	return -1
}
