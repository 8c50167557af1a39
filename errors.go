// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dataclass

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidAttribute is matched by every InvalidAttributeError via errors.Is.
var ErrInvalidAttribute = errors.New("invalid attribute")

// InvalidAttributeError reports attribute names outside a blueprint's declared fields.
type InvalidAttributeError struct {
	Type  string   // blueprint name
	Attrs []string // offending names, sorted
}

func newInvalidAttributeError(typeName string, attrs ...string) *InvalidAttributeError {
	attrs = slices.Clone(attrs)
	slices.Sort(attrs)
	return &InvalidAttributeError{Type: typeName, Attrs: slices.Compact(attrs)}
}

func (e *InvalidAttributeError) Error() string {
	quoted := make([]string, len(e.Attrs))
	for i, a := range e.Attrs {
		quoted[i] = Repr(a)
	}
	return fmt.Sprintf("%s: invalid attrs: [%s]", e.Type, strings.Join(quoted, ", "))
}

// Unwrap returns ErrInvalidAttribute.
func (e *InvalidAttributeError) Unwrap() error {
	return ErrInvalidAttribute
}
