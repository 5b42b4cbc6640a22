// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "testing"

func mustCompile(t *testing.T, c *Compiler, url, doc string) (SchemaIndex, *Schemas) {
	t.Helper()
	if _, err := c.AddResource(url, decodeJSON(t, doc)); err != nil {
		t.Fatalf("AddResource(%s): %v", url, err)
	}
	schemas := NewSchemas()
	idx, err := c.Compile(url, schemas)
	if err != nil {
		t.Fatalf("Compile(%s): %v", url, err)
	}
	return idx, schemas
}

func TestValidateBasicType(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://type.json", `{"type": "string", "minLength": 3}`)

	if err := schemas.Validate("hello", idx); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
	if err := schemas.Validate("hi", idx); err == nil {
		t.Error("expected minLength failure")
	}
	if err := schemas.Validate(decodeJSON(t, `5`), idx); err == nil {
		t.Error("expected type failure")
	}
}

func TestValidateRef(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://ref.json", `{
		"$defs": {"pos": {"type": "integer", "minimum": 0}},
		"type": "object",
		"properties": {"age": {"$ref": "#/$defs/pos"}}
	}`)

	if err := schemas.Validate(decodeJSON(t, `{"age": 5}`), idx); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
	if err := schemas.Validate(decodeJSON(t, `{"age": -1}`), idx); err == nil {
		t.Error("expected minimum failure via $ref")
	}
}

func TestValidateRefCycle(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://cycle.json", `{
		"type": "object",
		"properties": {"child": {"$ref": "#"}}
	}`)

	doc := decodeJSON(t, `{"child": {"child": {}}}`)
	if err := schemas.Validate(doc, idx); err != nil {
		t.Errorf("self-referential schema should not infinite-loop or fail: %v", err)
	}
}

// TestValidateDirectRefCycle exercises the cycle-detection guard itself:
// the schema re-applies to the exact same instance location through
// allOf, which would recurse forever without it.
func TestValidateDirectRefCycle(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://direct-cycle.json", `{
		"allOf": [{"$ref": "#"}],
		"type": "object"
	}`)

	if err := schemas.Validate(decodeJSON(t, `{}`), idx); err == nil {
		t.Error("direct self-reference should fail with a ref cycle error")
	}
}

func TestValidateUnevaluatedProperties(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://uneval.json", `{
		"allOf": [{"properties": {"a": {"type": "string"}}}],
		"properties": {"b": {"type": "string"}},
		"unevaluatedProperties": false
	}`)

	if err := schemas.Validate(decodeJSON(t, `{"a": "x", "b": "y"}`), idx); err != nil {
		t.Errorf("a and b are both evaluated, should pass: %v", err)
	}
	if err := schemas.Validate(decodeJSON(t, `{"a": "x", "c": "z"}`), idx); err == nil {
		t.Error("c is unevaluated, expected failure")
	}
}

func TestValidateOneOf(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://oneof.json", `{
		"oneOf": [
			{"type": "integer"},
			{"type": "string"}
		]
	}`)

	if err := schemas.Validate(decodeJSON(t, `5`), idx); err != nil {
		t.Errorf("integer should match exactly one branch: %v", err)
	}
	if err := schemas.Validate(decodeJSON(t, `true`), idx); err == nil {
		t.Error("bool matches neither branch, expected failure")
	}
}

func TestValidateDynamicRef(t *testing.T) {
	c := NewCompiler()
	if _, err := c.AddResource("mem://dynamic-list.json", decodeJSON(t, `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "mem://dynamic-list.json",
		"$dynamicAnchor": "items",
		"type": "string"
	}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddResource("mem://dynamic-main.json", decodeJSON(t, `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "mem://dynamic-main.json",
		"$dynamicAnchor": "items",
		"type": "array",
		"items": {"$dynamicRef": "#items"}
	}`)); err != nil {
		t.Fatal(err)
	}
	schemas := NewSchemas()
	idx, err := c.Compile("mem://dynamic-main.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	// dynamic-list.json is never in the dynamic scope, so "#items"
	// resolves to dynamic-main.json itself: every item must be an array.
	if err := schemas.Validate(decodeJSON(t, `[[], [[]]]`), idx); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

// TestValidateDynamicRefStaticFallback exercises the spec §4.5 gating
// condition: the statically resolved target does not declare a
// $dynamicAnchor matching the $dynamicRef fragment, so resolution must
// stay on the static target instead of walking the scope stack.
func TestValidateDynamicRefStaticFallback(t *testing.T) {
	c := NewCompiler()
	if _, err := c.AddResource("mem://static-list.json", decodeJSON(t, `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "mem://static-list.json",
		"$anchor": "items",
		"type": "string"
	}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddResource("mem://static-main.json", decodeJSON(t, `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "mem://static-main.json",
		"$dynamicAnchor": "items",
		"type": "array",
		"items": {"$dynamicRef": "mem://static-list.json#items"}
	}`)); err != nil {
		t.Fatal(err)
	}
	schemas := NewSchemas()
	idx, err := c.Compile("mem://static-main.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	if err := schemas.Validate(decodeJSON(t, `["a", "b"]`), idx); err != nil {
		t.Errorf("static target has no matching $dynamicAnchor, should resolve statically and pass: %v", err)
	}
	if err := schemas.Validate(decodeJSON(t, `[1]`), idx); err == nil {
		t.Error("static target is type: string, expected failure on a non-string element")
	}
}

func TestValidateInvalidJsonValue(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://any.json", `{}`)

	type notJSON struct{ X int }
	if err := schemas.Validate(notJSON{X: 1}, idx); err == nil {
		t.Error("expected failure validating a non-JSON Go value")
	}
}

func TestValidateContentAssertion(t *testing.T) {
	c := NewCompiler()
	c.AssertContent()
	idx, schemas := mustCompile(t, c, "mem://content.json", `{
		"type": "string",
		"contentEncoding": "base64"
	}`)

	if err := schemas.Validate("aGVsbG8=", idx); err != nil {
		t.Errorf("valid base64 should pass: %v", err)
	}
	if err := schemas.Validate("not-base64!!", idx); err == nil {
		t.Error("invalid base64 should fail when AssertContent is set")
	}
}

func TestValidateContentAnnotationOnly(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://content-annotation.json", `{
		"type": "string",
		"contentEncoding": "base64"
	}`)

	if err := schemas.Validate("not-base64!!", idx); err != nil {
		t.Errorf("contentEncoding is annotation-only without AssertContent: %v", err)
	}
}

func TestValidateUnevaluatedItems2020(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://uneval-items.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "string"}],
		"unevaluatedItems": false
	}`)

	if err := schemas.Validate(decodeJSON(t, `["a"]`), idx); err != nil {
		t.Errorf("prefixItems[0] is evaluated, should pass: %v", err)
	}
	if err := schemas.Validate(decodeJSON(t, `["a", "b"]`), idx); err == nil {
		t.Error("second element is unevaluated, expected failure")
	}
}

func TestValidateOutputFormats(t *testing.T) {
	c := NewCompiler()
	idx, schemas := mustCompile(t, c, "mem://output.json", `{
		"type": "object",
		"properties": {"n": {"type": "integer"}},
		"required": ["n"]
	}`)

	err := schemas.Validate(decodeJSON(t, `{"n": "not-an-int"}`), idx)
	if err == nil {
		t.Fatal("expected failure")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if flag := ve.FlagOutput(); flag.Valid {
		t.Error("FlagOutput: Valid should be false")
	}
	basic := ve.BasicOutput()
	if basic.Valid || len(basic.Errors) == 0 {
		t.Errorf("BasicOutput: got %+v", basic)
	}
	detailed := ve.DetailedOutput()
	if detailed.Valid {
		t.Error("DetailedOutput: Valid should be false")
	}

	var nilVE *ValidationError
	if !nilVE.FlagOutput().Valid {
		t.Error("nil ValidationError should report Valid: true")
	}
}
