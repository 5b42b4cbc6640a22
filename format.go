// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// FormatFunc validates a decoded JSON value against a named format
// (spec §4.4 "format"). It is only invoked for values it applies to;
// a format whose semantics are string-only is expected to return nil
// for any non-string value.
type FormatFunc func(v any) error

// defaultFormats seeds every Compiler with "regex", since it requires
// nothing beyond the Compiler's own regexp engine. Every other named
// format (date-time, email, hostname, ipv4, ...) is intentionally left
// unregistered here: see the formats subpackage, whose RegisterAll
// function wires its implementations into a Compiler via
// Compiler.RegisterFormat.
func (c *Compiler) defaultFormats() map[string]FormatFunc {
	return map[string]FormatFunc{
		"regex": func(v any) error {
			s, ok := v.(string)
			if !ok {
				return nil
			}
			if _, err := c.regexpEngine(s); err != nil {
				return &InvalidFormatError{Format: "regex", Value: s, Err: err}
			}
			return nil
		},
	}
}

// InvalidFormatError is returned by a format's FormatFunc when a value
// fails that format's validation.
type InvalidFormatError struct {
	Format string
	Value  string
	Err    error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return "value " + marshalCompact(e.Value) + " is not valid " + e.Format + ": " + e.Err.Error()
	}
	return "value " + marshalCompact(e.Value) + " is not valid " + e.Format
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }
