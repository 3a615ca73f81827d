package pocket

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file handles the user-facing backup format. It is the same JSON
// shape as the persisted dataset, indented so it stays human readable and
// diffable.

// ExportData writes the dataset to 'w' as an indented JSON document.
func ExportData(w io.Writer, data *AppData) error {
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize dataset for export: %w", err)
	}
	if _, err := w.Write(append(blob, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// ImportData reads a backup file and returns the dataset it contains.
//
// The structural check is intentionally shallow: the file must parse as
// JSON and carry 'transactions' and 'goals' arrays at the top level. Any
// file passing that check is accepted verbatim, modulo read-time
// defaulting. Callers gate the actual replacement on a user confirmation
// step; a rejection here leaves the current dataset untouched.
func ImportData(r io.Reader) (*AppData, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import file: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("import file is not valid JSON: %w", err)
	}
	for _, field := range []string{"transactions", "goals"} {
		val, err := jsonpath.Get("$."+field, doc)
		if err != nil {
			return nil, fmt.Errorf("import file is missing the %q array", field)
		}
		if _, ok := val.([]interface{}); !ok {
			return nil, fmt.Errorf("import file field %q is not an array", field)
		}
	}

	data, err := decodeAppData(blob)
	if err != nil {
		return nil, fmt.Errorf("cannot decode import file: %w", err)
	}
	return data, nil
}
