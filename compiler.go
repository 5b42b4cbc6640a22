// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"sort"
)

// Compiler turns schema documents into compiled [Schema] values inside
// a [Schemas] arena (spec §3/§4). Its zero value is not usable; create
// one with [NewCompiler].
type Compiler struct {
	roots         *roots
	formats       map[string]FormatFunc
	decoders      map[string]func(string) ([]byte, error)
	mediaTypes    map[string]func([]byte, bool) (any, error)
	regexpEngine  RegexpEngine
	assertFormat  bool
	assertContent bool
}

// NewCompiler returns a Compiler configured with the default loader
// (file scheme only — see [Compiler.UseLoader]), the default regexp
// engine, and the built-in "regex" format and "base64"/
// "application/json" content encoders (spec §4.1/§4.4).
func NewCompiler() *Compiler {
	c := &Compiler{
		roots:        newRoots(),
		decoders:     defaultContentEncodings(),
		mediaTypes:   defaultContentMediaTypes(),
		regexpEngine: defaultRegexpEngine,
	}
	c.formats = c.defaultFormats()
	return c
}

// SetDefaultDraft sets the draft assumed for a root document that has
// no $schema (spec §4.2). Defaults to the latest supported draft.
func (c *Compiler) SetDefaultDraft(d *Draft) { c.roots.defaultDraft = d }

// AssertFormat makes "format" a validation assertion instead of a
// pure annotation, for every draft.
func (c *Compiler) AssertFormat() { c.assertFormat = true }

// AssertContent makes "contentEncoding"/"contentMediaType"/
// "contentSchema" validation assertions instead of pure annotations.
func (c *Compiler) AssertContent() { c.assertContent = true }

// UseLoader registers l as the [Loader] for the given URL scheme
// (spec §4.1). "file" is registered by default.
func (c *Compiler) UseLoader(scheme string, l Loader) { c.roots.schemes.register(scheme, l) }

// UseRegexpEngine replaces the engine used to compile "pattern" and
// "patternProperties" values (spec §4.4).
func (c *Compiler) UseRegexpEngine(e RegexpEngine) { c.regexpEngine = e }

// RegisterFormat registers or replaces the validation function for a
// named "format" value (spec §4.4).
func (c *Compiler) RegisterFormat(name string, fn FormatFunc) { c.formats[name] = fn }

// RegisterContentEncoding registers or replaces the decoder for a
// "contentEncoding" name (spec §4.4).
func (c *Compiler) RegisterContentEncoding(name string, fn func(string) ([]byte, error)) {
	c.decoders[name] = fn
}

// RegisterContentMediaType registers or replaces the checker/decoder
// for a "contentMediaType" name (spec §4.4). unmarshal is true when
// the caller also needs the decoded value (contentSchema is present).
func (c *Compiler) RegisterContentMediaType(name string, fn func(b []byte, unmarshal bool) (any, error)) {
	c.mediaTypes[name] = fn
}

// AddResource registers an in-memory document under url, so that a
// later [Compiler.Compile] call can reference it without going
// through a [Loader] (spec §6). It reports false if url was already
// registered.
func (c *Compiler) AddResource(url string, doc any) (bool, error) {
	return c.roots.addResource(normalizeURL(url), doc)
}

// Compile loads (if necessary) and compiles the schema named by loc
// ("URL" or "URL#/json/pointer" or "URL#anchor") into schemas,
// returning the [SchemaIndex] of its root. Calling Compile again with
// a loc already present in schemas returns the cached index instead of
// recompiling (spec §3 "Schemas").
func (c *Compiler) Compile(loc string, schemas *Schemas) (SchemaIndex, error) {
	base, frag, err := splitFragment(loc)
	if err != nil {
		return -1, err
	}
	rt, err := c.roots.orLoad(normalizeURL(string(base)))
	if err != nil {
		return -1, err
	}
	up, err := rt.resolveFragment(frag)
	if err != nil {
		return -1, err
	}
	job := &compileJob{c: c, schemas: schemas}
	idx := job.enqueue(rt, up)
	if err := job.run(); err != nil {
		return -1, err
	}
	return idx, nil
}

// --

type queued struct {
	idx SchemaIndex
	rt  *root
	up  urlPtr
}

// compileJob runs one BFS pass: enqueue appends a not-yet-compiled
// location and immediately returns the SchemaIndex reserved for it
// (spec §3 "compiled via a FIFO queue"); run drains the queue,
// compiling each location's keywords, which may themselves call
// enqueue and grow the queue further.
type compileJob struct {
	c       *Compiler
	schemas *Schemas
	queue   []queued
}

func (j *compileJob) enqueue(rt *root, up urlPtr) SchemaIndex {
	loc := up.String()
	if idx, ok := j.schemas.byLoc[loc]; ok {
		return idx
	}
	idx := SchemaIndex(len(j.schemas.list))
	j.schemas.list = append(j.schemas.list, nil)
	j.schemas.byLoc[loc] = idx
	j.queue = append(j.queue, queued{idx, rt, up})
	return idx
}

func (j *compileJob) run() error {
	for len(j.queue) > 0 {
		item := j.queue[0]
		j.queue = j.queue[1:]
		if err := j.compileAt(item.idx, item.rt, item.up); err != nil {
			return err
		}
	}
	return nil
}

// resolveRef resolves ref (a $ref/$recursiveRef/$dynamicRef value)
// against the resource enclosing ptr within rt, and enqueues its
// target (spec §4.3).
func (j *compileJob) resolveRef(rt *root, ptr jsonPointer, ref string) (SchemaIndex, error) {
	idx, _, _, err := j.resolveRefTarget(rt, ptr, ref)
	return idx, err
}

// resolveRefTarget is resolveRef plus the resolved root/urlPtr, needed
// by $dynamicRef compilation to inspect the static target's own raw
// keywords (spec §4.5) before the target itself has been compiled.
func (j *compileJob) resolveRefTarget(rt *root, ptr jsonPointer, ref string) (SchemaIndex, *root, urlPtr, error) {
	base := rt.resourceFor(ptr).id
	uf, err := join(base, ref)
	if err != nil {
		return -1, nil, urlPtr{}, &URLNotResolvableError{URL: ref, Err: err}
	}
	targetRt, up, err := j.c.roots.resolveRef(uf)
	if err != nil {
		return -1, nil, urlPtr{}, err
	}
	return j.enqueue(targetRt, up), targetRt, up, nil
}

func (j *compileJob) compileAt(idx SchemaIndex, rt *root, up urlPtr) error {
	res := rt.resourceFor(up.ptr)
	draft := res.draft
	loc := up.String()

	v, err := up.lookup(rt.doc)
	if err != nil {
		return err
	}

	if b, ok := v.(bool); ok {
		sch := newBoolSchema(idx, loc, b)
		sch.resourceID = res.id
		sch.draftVersion = draft.version
		j.schemas.list[idx] = sch
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return &InvalidSchemaError{Loc: loc}
	}

	sch := newSchema(idx, loc)
	sch.resourceID = res.id
	sch.draftVersion = draft.version
	j.schemas.list[idx] = sch

	// the resource's own dynamic anchors resolve exactly once, when
	// its own root location is compiled.
	if up.ptr == res.ptr && len(res.dynamicAnchors) > 0 {
		m := make(map[string]SchemaIndex, len(res.dynamicAnchors))
		for _, a := range res.dynamicAnchors {
			aptr, ok := res.anchors[a]
			if !ok {
				continue
			}
			m[string(a)] = j.enqueue(rt, urlPtr{rt.url, aptr})
		}
		j.schemas.dynamicAnchors[res.id] = m
	}

	child := func(tok string) SchemaIndex {
		return j.enqueue(rt, urlPtr{rt.url, up.ptr.append(tok)})
	}
	childArr := func(arrTok string, i int) SchemaIndex {
		return j.enqueue(rt, urlPtr{rt.url, up.ptr.append(arrTok).append(fmt.Sprint(i))})
	}

	if s, ok := obj["$ref"].(string); ok {
		target, err := j.resolveRef(rt, up.ptr, s)
		if err != nil {
			return err
		}
		sch.ref, sch.hasRef = target, true
		if draft.version < 2019 {
			// pre-2019: a $ref sibling's other keywords are ignored.
			return nil
		}
	}
	if draft.version == 2019 {
		if s, ok := obj["$recursiveRef"].(string); ok {
			target, err := j.resolveRef(rt, up.ptr, s)
			if err != nil {
				return err
			}
			sch.recursiveRef, sch.hasRecursiveRef = target, true
		}
		if b, ok := obj["$recursiveAnchor"].(bool); ok {
			sch.recursiveAnchor = b
			if b {
				j.schemas.recursiveAnchors[res.id] = idx
			}
		}
	}
	if draft.version >= 2020 {
		if s, ok := obj["$dynamicRef"].(string); ok {
			target, targetRt, targetUp, err := j.resolveRefTarget(rt, up.ptr, s)
			if err != nil {
				return err
			}
			sch.dynamicRef, sch.hasDynamicRef = target, true
			if _, frag, err := splitFragment(s); err == nil && frag != "" && !frag.isPointer() {
				// only gate into scope-based resolution when the
				// statically resolved target itself declares a
				// matching $dynamicAnchor (spec §4.5); otherwise the
				// static target is final.
				if tv, err := targetUp.lookup(targetRt.doc); err == nil {
					if tobj, ok := tv.(map[string]any); ok {
						if da, ok := tobj["$dynamicAnchor"].(string); ok && da == string(frag) {
							sch.dynamicRefAnchor = string(frag)
						}
					}
				}
			}
		}
	}

	switch t := obj["type"].(type) {
	case string:
		sch.types = []string{t}
	case []any:
		for _, tv := range t {
			if s, ok := tv.(string); ok {
				sch.types = append(sch.types, s)
			}
		}
	}
	if e, ok := obj["enum"].([]any); ok {
		sch.enum = e
	}
	if cv, ok := obj["const"]; ok {
		sch.hasConst, sch.constValue = true, cv
	}
	if _, ok := obj["not"]; ok {
		sch.not, sch.hasNot = child("not"), true
	}
	if arr, ok := obj["allOf"].([]any); ok {
		for i := range arr {
			sch.allOf = append(sch.allOf, childArr("allOf", i))
		}
	}
	if arr, ok := obj["anyOf"].([]any); ok {
		for i := range arr {
			sch.anyOf = append(sch.anyOf, childArr("anyOf", i))
		}
	}
	if arr, ok := obj["oneOf"].([]any); ok {
		for i := range arr {
			sch.oneOf = append(sch.oneOf, childArr("oneOf", i))
		}
	}
	if draft.version >= 7 {
		if _, ok := obj["if"]; ok {
			sch.hasIf, sch.ifIdx = true, child("if")
		}
		if _, ok := obj["then"]; ok {
			sch.hasThen, sch.thenIdx = true, child("then")
		}
		if _, ok := obj["else"]; ok {
			sch.hasElse, sch.elseIdx = true, child("else")
		}
	}
	if s, ok := obj["format"].(string); ok {
		sch.formatName = s
		if fn, ok := j.c.formats[s]; ok {
			sch.formatFn = fn
		}
		sch.assertFormat = j.c.assertFormat
	}

	childKey := func(tok, key string) SchemaIndex {
		return j.enqueue(rt, urlPtr{rt.url, up.ptr.append(tok).append(key)})
	}

	if err := j.compileObjectKeywords(sch, draft, obj, child, childKey); err != nil {
		return err
	}
	if err := j.compileArrayKeywords(sch, draft, obj, child, childArr); err != nil {
		return err
	}
	if err := j.compileStringKeywords(sch, draft, obj, child); err != nil {
		return err
	}
	compileNumericKeywords(sch, draft, obj)

	return nil
}

func numOf(obj map[string]any, kw string) (number, bool) {
	v, ok := obj[kw]
	if !ok {
		return number{}, false
	}
	return newNumber(v)
}

func intOf(obj map[string]any, kw string) (int, bool) {
	n, ok := numOf(obj, kw)
	if !ok {
		return 0, false
	}
	f, _ := n.rat.Float64()
	return int(f), true
}

func strSliceOf(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// additionalOf lowers a `{true, false, <schema>}` keyword value.
func additionalOf(v any, enqueueChild func() SchemaIndex) *additional {
	switch vv := v.(type) {
	case bool:
		b := vv
		return &additional{always: &b}
	case nil:
		return nil
	default:
		return &additional{idx: enqueueChild(), isSch: true}
	}
}

func (j *compileJob) compileObjectKeywords(sch *Schema, draft *Draft, obj map[string]any, child func(string) SchemaIndex, childKey func(tok, key string) SchemaIndex) error {
	if n, ok := intOf(obj, "minProperties"); ok {
		sch.minProperties = n
	}
	if n, ok := intOf(obj, "maxProperties"); ok {
		sch.maxProperties = n
	}
	if v, ok := obj["required"]; ok {
		sch.required = strSliceOf(v)
	}
	if props, ok := obj["properties"].(map[string]any); ok {
		sch.properties = make(map[string]SchemaIndex, len(props))
		for k := range props {
			sch.properties[k] = childKey("properties", k)
		}
	}
	if pp, ok := obj["patternProperties"].(map[string]any); ok {
		keys := make([]string, 0, len(pp))
		for k := range pp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			re, err := j.c.regexpEngine(k)
			if err != nil {
				return &PatternCompileError{Pattern: k, Err: err}
			}
			sch.patternProperties = append(sch.patternProperties, patternSchema{
				re:  re,
				idx: childKey("patternProperties", k),
			})
		}
	}
	if draft.version >= 6 {
		if _, ok := obj["propertyNames"]; ok {
			sch.hasPropertyNames, sch.propertyNames = true, child("propertyNames")
		}
	}
	if v, ok := obj["additionalProperties"]; ok {
		sch.additionalProperties = additionalOf(v, func() SchemaIndex { return child("additionalProperties") })
	}
	if draft.version >= 2019 {
		if dr, ok := obj["dependentRequired"].(map[string]any); ok {
			sch.dependentRequired = map[string][]string{}
			for k, v := range dr {
				sch.dependentRequired[k] = strSliceOf(v)
			}
		}
		if ds, ok := obj["dependentSchemas"].(map[string]any); ok {
			sch.dependentSchemas = map[string]SchemaIndex{}
			for k := range ds {
				sch.dependentSchemas[k] = childKey("dependentSchemas", k)
			}
		}
		if v, ok := obj["unevaluatedProperties"]; ok {
			sch.unevaluatedProperties = additionalOf(v, func() SchemaIndex { return child("unevaluatedProperties") })
		}
	} else {
		if deps, ok := obj["dependencies"].(map[string]any); ok {
			sch.dependencies = map[string]dependency{}
			for k, v := range deps {
				if arr, isArr := v.([]any); isArr {
					sch.dependencies[k] = dependency{props: strSliceOf(arr)}
					continue
				}
				sch.dependencies[k] = dependency{isSch: true, idx: childKey("dependencies", k)}
			}
		}
	}
	return nil
}

func (j *compileJob) compileArrayKeywords(sch *Schema, draft *Draft, obj map[string]any, child func(string) SchemaIndex, childArr func(string, int) SchemaIndex) error {
	if n, ok := intOf(obj, "minItems"); ok {
		sch.minItems = n
	}
	if n, ok := intOf(obj, "maxItems"); ok {
		sch.maxItems = n
	}
	if b, ok := obj["uniqueItems"].(bool); ok {
		sch.uniqueItems = b
	}
	if draft.version >= 2019 {
		if n, ok := intOf(obj, "minContains"); ok {
			sch.minContains = n
		}
		if n, ok := intOf(obj, "maxContains"); ok {
			sch.maxContains = n
		}
	}
	if draft.version >= 6 {
		if _, ok := obj["contains"]; ok {
			sch.hasContains, sch.contains = true, child("contains")
			sch.containsMarksEvaluated = draft.version >= 2020
		}
	}

	if draft.version >= 2020 {
		if arr, ok := obj["prefixItems"].([]any); ok {
			for i := range arr {
				sch.prefixItems = append(sch.prefixItems, childArr("prefixItems", i))
			}
		}
		if v, ok := obj["items"]; ok {
			sch.items2020 = additionalOf(v, func() SchemaIndex { return child("items") })
		}
	} else {
		if v, ok := obj["items"]; ok {
			if arr, isArr := v.([]any); isArr {
				tuple := make([]SchemaIndex, len(arr))
				for i := range arr {
					tuple[i] = childArr("items", i)
				}
				sch.items = &itemsKeyword{tuple: tuple}
			} else {
				sch.items = &itemsKeyword{single: child("items"), isSch: true}
			}
		}
		if v, ok := obj["additionalItems"]; ok {
			sch.additionalItems = additionalOf(v, func() SchemaIndex { return child("additionalItems") })
		}
	}
	if draft.version >= 2019 {
		if v, ok := obj["unevaluatedItems"]; ok {
			sch.unevaluatedItems = additionalOf(v, func() SchemaIndex { return child("unevaluatedItems") })
		}
	}
	return nil
}

func (j *compileJob) compileStringKeywords(sch *Schema, draft *Draft, obj map[string]any, child func(string) SchemaIndex) error {
	if n, ok := intOf(obj, "minLength"); ok {
		sch.minLength = n
	}
	if n, ok := intOf(obj, "maxLength"); ok {
		sch.maxLength = n
	}
	if s, ok := obj["pattern"].(string); ok {
		re, err := j.c.regexpEngine(s)
		if err != nil {
			return &PatternCompileError{Pattern: s, Err: err}
		}
		sch.pattern = re
	}
	if s, ok := obj["contentEncoding"].(string); ok {
		sch.contentEncodingName = s
		sch.contentDecode = j.c.decoders[s]
		sch.assertContent = j.c.assertContent
	}
	if s, ok := obj["contentMediaType"].(string); ok {
		sch.contentMediaTypeName = s
		sch.contentCheck = j.c.mediaTypes[s]
		sch.assertContent = j.c.assertContent
	}
	if draft.version >= 7 {
		if _, ok := obj["contentSchema"]; ok {
			sch.hasContentSchema, sch.contentSchema = true, child("contentSchema")
			sch.assertContent = j.c.assertContent
		}
	}
	return nil
}

func compileNumericKeywords(sch *Schema, draft *Draft, obj map[string]any) {
	if n, ok := numOf(obj, "minimum"); ok {
		sch.hasMinimum, sch.minimum = true, n
	}
	if n, ok := numOf(obj, "maximum"); ok {
		sch.hasMaximum, sch.maximum = true, n
	}
	if draft.version <= 4 {
		if b, ok := obj["exclusiveMinimum"].(bool); ok && b && sch.hasMinimum {
			sch.hasExclusiveMinimum, sch.exclusiveMinimum = true, sch.minimum
			sch.hasMinimum = false
		}
		if b, ok := obj["exclusiveMaximum"].(bool); ok && b && sch.hasMaximum {
			sch.hasExclusiveMaximum, sch.exclusiveMaximum = true, sch.maximum
			sch.hasMaximum = false
		}
	} else {
		if n, ok := numOf(obj, "exclusiveMinimum"); ok {
			sch.hasExclusiveMinimum, sch.exclusiveMinimum = true, n
		}
		if n, ok := numOf(obj, "exclusiveMaximum"); ok {
			sch.hasExclusiveMaximum, sch.exclusiveMaximum = true, n
		}
	}
	if n, ok := numOf(obj, "multipleOf"); ok {
		sch.hasMultipleOf, sch.multipleOf = true, n
	}
}

// --

// InvalidSchemaError reports a schema location whose value is neither
// a boolean nor an object.
type InvalidSchemaError struct{ Loc string }

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("schema at %q must be an object or boolean", e.Loc)
}

// --

// PatternCompileError wraps a "pattern"/"patternProperties" key that
// the configured [RegexpEngine] rejected.
type PatternCompileError struct {
	Pattern string
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}
func (e *PatternCompileError) Unwrap() error { return e.Err }
