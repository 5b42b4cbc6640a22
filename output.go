// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// FlagOutput is the "Flag" output format (spec §4.6): whether the
// instance is valid, nothing else.
type FlagOutput struct {
	Valid bool `json:"valid"`
}

// FlagOutput renders e in the Flag format. A nil e (no error) reports
// Valid: true.
func (e *ValidationError) FlagOutput() *FlagOutput {
	return &FlagOutput{Valid: e == nil}
}

// BasicOutputUnit is one leaf of a [BasicOutput] error list.
type BasicOutputUnit struct {
	KeywordLocation         string `json:"keywordLocation"`
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string `json:"instanceLocation"`
	Error                   string `json:"error"`
}

// BasicOutput is the "Basic" output format (spec §4.6): a flat list of
// every leaf keyword failure, with container nodes (allOf, $ref, ...)
// omitted.
type BasicOutput struct {
	Valid  bool              `json:"valid"`
	Errors []BasicOutputUnit `json:"errors,omitempty"`
}

// BasicOutput renders e in the Basic format.
func (e *ValidationError) BasicOutput() *BasicOutput {
	if e == nil {
		return &BasicOutput{Valid: true}
	}
	out := &BasicOutput{Valid: false}
	e.flattenLeaves(&out.Errors)
	return out
}

func (e *ValidationError) flattenLeaves(out *[]BasicOutputUnit) {
	if len(e.Causes) == 0 {
		*out = append(*out, BasicOutputUnit{
			KeywordLocation:         e.KeywordLocation,
			AbsoluteKeywordLocation: e.AbsoluteKeywordLocation,
			InstanceLocation:        e.InstanceLocation,
			Error:                   e.Kind.String(),
		})
		return
	}
	for _, c := range e.Causes {
		c.flattenLeaves(out)
	}
}

// DetailedOutput is the "Detailed" output format (spec §4.6): the
// failure tree, unflattened, mirroring the schema's own applicator
// structure (allOf branches, $ref hops, ...).
type DetailedOutput struct {
	Valid                   bool              `json:"valid"`
	KeywordLocation         string            `json:"keywordLocation,omitempty"`
	AbsoluteKeywordLocation string            `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string            `json:"instanceLocation,omitempty"`
	Error                   string            `json:"error,omitempty"`
	Errors                  []*DetailedOutput `json:"errors,omitempty"`
}

// DetailedOutput renders e in the Detailed format.
func (e *ValidationError) DetailedOutput() *DetailedOutput {
	if e == nil {
		return &DetailedOutput{Valid: true}
	}
	return e.detailed()
}

func (e *ValidationError) detailed() *DetailedOutput {
	d := &DetailedOutput{
		KeywordLocation:         e.KeywordLocation,
		AbsoluteKeywordLocation: e.AbsoluteKeywordLocation,
		InstanceLocation:        e.InstanceLocation,
	}
	if len(e.Causes) == 0 {
		d.Error = e.Kind.String()
		return d
	}
	for _, c := range e.Causes {
		d.Errors = append(d.Errors, c.detailed())
	}
	return d
}
