// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldErrors collects one human readable message per failed field rule.
// A nil or empty FieldErrors is never returned as an error by the validators
// in this package.
type FieldErrors []string

// Error joins all messages with "; ".
func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

// Messages returns a copy of the collected messages.
func (e FieldErrors) Messages() []string {
	return append([]string(nil), e...)
}

func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
