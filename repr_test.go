// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dataclass

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

type point struct{ X, Y int }

func TestRepr(t *testing.T) {
	var nilRecord *Record
	var nilSlice []int
	n := 7

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "None"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"string", "joe", "'joe'"},
		{"empty string", "", "''"},
		{"single quote", "it's", `"it's"`},
		{"both quotes", `it's "x"`, `'it\'s "x"'`},
		{"escapes", "a\tb\nc\\", `'a\tb\nc\\'`},
		{"control char", "\x00", `'\x00'`},
		{"unicode", "café", "'café'"},
		{"named string", label("x"), "'x'"},
		{"int", 10, "10"},
		{"negative int", int64(-3), "-3"},
		{"uint", uint8(255), "255"},
		{"float integral", 10.0, "10.0"},
		{"float", 1.5, "1.5"},
		{"float32", float32(0.1), "0.1"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"small float", 0.0001, "0.0001"},
		{"tiny float", 0.00001, "1e-05"},
		{"large float", 1e16, "1e+16"},
		{"big integral float", 1e15, "1000000000000000.0"},
		{"inf", math.Inf(1), "inf"},
		{"neg inf", math.Inf(-1), "-inf"},
		{"nan", math.NaN(), "nan"},
		{"list", []any{1, "a", nil}, "[1, 'a', None]"},
		{"array", [2]int{1, 2}, "[1, 2]"},
		{"nil slice", nilSlice, "None"},
		{"map sorted", map[string]int{"b": 2, "a": 1}, "{'a': 1, 'b': 2}"},
		{"pointer", &n, "7"},
		{"nil record", nilRecord, "None"},
		{"struct", point{1, 2}, "{1 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repr(tt.in))
		})
	}
}

func TestRepr_Record(t *testing.T) {
	r := Parse("PersonData", "name").MustInstantiate(Values{"name": "joe"})
	assert.Equal(t, "[PersonData(name='joe')]", Repr([]any{r}))
	assert.Equal(t, "PersonData(name='joe')", Repr(*r))
	assert.Equal(t, "{'k': PersonData(name='joe')}", Repr(map[string]Record{"k": *r}))
	assert.Equal(t, "None", Repr(Record{}))
}
