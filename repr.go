// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dataclass

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reprer is implemented by values that render their own debug representation.
type Reprer interface {
	Repr() string
}

// Repr returns the debug representation of v used by the record string forms:
// quoted strings, literal numbers and booleans, None for nil. Records render
// in reconstruction form whether held as *Record or Record.
func Repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case Record:
		if x.blueprint == nil {
			return "None"
		}
		return x.Repr()
	case Reprer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "None"
		}
		return x.Repr()
	case string:
		return quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	}
	return reprValue(reflect.ValueOf(v))
}

func reprValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return quote(rv.String())
	case reflect.Bool:
		return Repr(rv.Bool())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "None"
		}
		return Repr(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return "None"
		}
		return reprList(rv)
	case reflect.Array:
		return reprList(rv)
	case reflect.Map:
		if rv.IsNil() {
			return "None"
		}
		return reprMap(rv)
	}
	return fmt.Sprint(rv.Interface())
}

func reprList(rv reflect.Value) string {
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = Repr(rv.Index(i).Interface())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func reprMap(rv reflect.Value) string {
	items := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		items = append(items, Repr(iter.Key().Interface())+": "+Repr(iter.Value().Interface()))
	}
	slices.Sort(items)
	return "{" + strings.Join(items, ", ") + "}"
}

// formatFloat renders shortest round-trip digits, keeping ".0" on integral
// values and switching to exponent form outside [1e-4, 1e16).
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote uses single quotes unless the text contains a single quote and no
// double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteByte(q)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&sb, `\x%02x`, s[i])
			i++
			continue
		}
		i += size
		switch {
		case r == '\\' || r == rune(q):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
