// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eanhuddleston/dataclass"
	"gopkg.in/yaml.v3"
)

// Output formats for records.
const (
	formatDisplay = "display"
	formatRepr    = "repr"
	formatJSON    = "json"
	formatYAML    = "yaml"
)

var formats = []string{formatDisplay, formatRepr, formatJSON, formatYAML}

func validateFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q. Available formats: %s", format, strings.Join(formats, ", "))
}

// writeRecords prints records one per line for the string forms, as a JSON
// array or as a YAML sequence.
func writeRecords(out io.Writer, format string, records []*dataclass.Record) error {
	switch format {
	case formatDisplay:
		for _, r := range records {
			_, _ = fmt.Fprintln(out, r.String())
		}
	case formatRepr:
		for _, r := range records {
			_, _ = fmt.Fprintln(out, r.Repr())
		}
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []*dataclass.Record{}
		}
		return enc.Encode(records)
	case formatYAML:
		if len(records) == 0 {
			_, _ = fmt.Fprintln(out, "[]")
			return nil
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateFormat(format)
	}
	return nil
}
