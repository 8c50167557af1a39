// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/eanhuddleston/dataclass"
)

// RunTypeSelect asks which of the declared types to instantiate.
func RunTypeSelect(typeName *string, names []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(names...)...).
				Value(typeName),
		),
	).WithTheme(Theme()).Run()
}

// RunValuesForm asks for a value for every declared field of bp and stores
// the answers in values. Fields already present in values are pre-filled.
// Blank answers leave the field unset.
func RunValuesForm(bp *dataclass.Blueprint, values dataclass.Values) error {
	fields := uniqueFields(bp.Fields())
	inputs := make([]string, len(fields))
	group := make([]huh.Field, len(fields))
	for i, f := range fields {
		if v, ok := values[f]; ok && v != nil {
			inputs[i] = dataclass.Repr(v)
		}
		group[i] = huh.NewInput().
			Title(f).
			Prompt(": ").
			Inline(true).
			Placeholder("YAML value, blank for None").
			Value(&inputs[i]).
			Validate(valueValidator)
	}

	if err := huh.NewForm(huh.NewGroup(group...)).WithTheme(Theme()).Run(); err != nil {
		return err
	}
	return collectValues(fields, inputs, values)
}

func collectValues(fields, inputs []string, values dataclass.Values) error {
	for i, f := range fields {
		if inputs[i] == "" {
			delete(values, f)
			continue
		}
		v, err := ParseValue(inputs[i])
		if err != nil {
			return err
		}
		values[f] = v
	}
	return nil
}

func uniqueFields(fields []string) []string {
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
