// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// SchemaIndex is a dense integer handle into one Schemas collection,
// stable for the lifetime of that collection (spec §3).
type SchemaIndex int

// patternSchema pairs a compiled patternProperties regex with the
// SchemaIndex of its subschema. Entries are sorted by pattern string;
// the key order of the schema document is not kept.
type patternSchema struct {
	re  Regexp
	idx SchemaIndex
}

// dependency is one pre-2019 "dependencies" entry: either a plain
// property-name list or a schema reference (spec §3).
type dependency struct {
	props []string
	idx   SchemaIndex
	isSch bool
}

// additional represents a `{true, false, Schema}` keyword value (spec
// §3 additionalProperties/additionalItems).
type additional struct {
	always *bool
	idx    SchemaIndex
	isSch  bool
}

// items represents the pre-2020 "items" keyword: either a single
// schema applied to every element, or a tuple of per-index schemas.
type itemsKeyword struct {
	single SchemaIndex
	isSch  bool
	tuple  []SchemaIndex
}

// Schema is the compiled, dense representation of one schema location
// (spec §3 "Compiled Schema"). It is built once by compileJob.compileAt and
// never mutated afterwards.
type Schema struct {
	idx          SchemaIndex
	loc          string // "URL#FRAGMENT"
	draftVersion int
	resourceID   url // id of the enclosing resource; used for $dynamicRef's outermost-scope search

	boolSchema *bool // non-nil iff this location is a boolean schema

	// type-agnostic
	ref             SchemaIndex
	hasRef          bool
	recursiveRef    SchemaIndex
	hasRecursiveRef bool
	recursiveAnchor bool
	dynamicRef      SchemaIndex
	hasDynamicRef   bool
	dynamicRefAnchor string // fragment name, "" if none
	types           []string
	enum            []any
	hasConst        bool
	constValue      any
	not             SchemaIndex
	hasNot          bool
	allOf           []SchemaIndex
	anyOf           []SchemaIndex
	oneOf           []SchemaIndex
	hasIf           bool
	ifIdx, thenIdx, elseIdx SchemaIndex
	hasThen, hasElse        bool
	formatName string
	formatFn   func(any) error
	assertFormat bool

	// object
	minProperties, maxProperties int // -1 if absent
	required                     []string
	properties                   map[string]SchemaIndex
	patternProperties             []patternSchema
	propertyNames                 SchemaIndex
	hasPropertyNames               bool
	additionalProperties           *additional
	dependentRequired              map[string][]string
	dependentSchemas                map[string]SchemaIndex
	dependencies                    map[string]dependency
	unevaluatedProperties            *additional

	// array
	minItems, maxItems int
	uniqueItems        bool
	minContains, maxContains int // -1 if absent; minContains defaults to 1
	contains                 SchemaIndex
	hasContains               bool
	containsMarksEvaluated    bool // true for draft >= 2020
	items                     *itemsKeyword // pre-2020
	additionalItems           *additional   // pre-2020
	prefixItems               []SchemaIndex // 2020
	items2020                 *additional   // 2020 "items" (sequel semantics)
	unevaluatedItems          *additional

	// string
	minLength, maxLength int
	pattern              Regexp
	contentEncodingName  string
	contentDecode        func(string) ([]byte, error)
	contentMediaTypeName string
	contentCheck         func([]byte, bool) (any, error)
	contentSchema        SchemaIndex
	hasContentSchema      bool
	assertContent         bool

	// numeric
	hasMinimum, hasMaximum                     bool
	minimum, maximum                            number
	hasExclusiveMinimum, hasExclusiveMaximum    bool
	exclusiveMinimum, exclusiveMaximum          number
	hasMultipleOf                               bool
	multipleOf                                  number
}

func newBoolSchema(idx SchemaIndex, loc string, v bool) *Schema {
	return &Schema{idx: idx, loc: loc, boolSchema: &v, minProperties: -1, maxProperties: -1, minItems: -1, maxItems: -1, minLength: -1, maxLength: -1, minContains: -1, maxContains: -1}
}

func newSchema(idx SchemaIndex, loc string) *Schema {
	return &Schema{
		idx: idx, loc: loc,
		minProperties: -1, maxProperties: -1,
		minItems: -1, maxItems: -1,
		minContains: 1, maxContains: -1,
		minLength: -1, maxLength: -1,
	}
}

// Schemas is the append-only arena of compiled schemas (spec §3).
// A fully-built Schemas is safe for concurrent Validate calls.
type Schemas struct {
	list  []*Schema
	byLoc map[string]SchemaIndex

	// dynamicAnchors maps a resource id to the dynamic-anchor names it
	// declares and the SchemaIndex each resolves to, for $dynamicRef's
	// outermost-matching-scope search (spec §4.5/§4.3).
	dynamicAnchors map[url]map[string]SchemaIndex

	// recursiveAnchors maps a resource id to the SchemaIndex of the
	// location within it, if any, where $recursiveAnchor: true was
	// declared, for $recursiveRef's outermost-matching-scope search
	// (2019-09 only).
	recursiveAnchors map[url]SchemaIndex
}

// NewSchemas creates an empty Schemas collection.
func NewSchemas() *Schemas {
	return &Schemas{
		byLoc:            map[string]SchemaIndex{},
		dynamicAnchors:   map[url]map[string]SchemaIndex{},
		recursiveAnchors: map[url]SchemaIndex{},
	}
}

func (s *Schemas) at(idx SchemaIndex) *Schema { return s.list[idx] }

// Get returns the compiled schema at idx. Exported so callers that
// stored a SchemaIndex from Compile can retrieve it for validation.
func (s *Schemas) Get(idx SchemaIndex) *Schema { return s.list[idx] }

// Regexp is the minimal interface a regex engine must provide (spec
// §4.4 "Regex sub-language"). Grounded on the teacher's regexp.go
// Regexp/RegexpProvider design.
type Regexp interface {
	MatchString(s string) bool
	String() string
}
