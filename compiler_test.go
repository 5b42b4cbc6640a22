// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeJSON(t *testing.T, doc string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestCompilerCachesByLoc(t *testing.T) {
	c := NewCompiler()
	if _, err := c.AddResource("mem://schema.json", decodeJSON(t, `{"type": "string"}`)); err != nil {
		t.Fatal(err)
	}
	schemas := NewSchemas()
	idx1, err := c.Compile("mem://schema.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	idx2, err := c.Compile("mem://schema.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	if idx1 != idx2 {
		t.Errorf("Compile should cache: got idx1=%v idx2=%v", idx1, idx2)
	}
}

func TestCompilerAddResourceDuplicate(t *testing.T) {
	c := NewCompiler()
	ok, err := c.AddResource("mem://dup.json", map[string]any{"type": "string"})
	if err != nil || !ok {
		t.Fatalf("first AddResource: ok=%v err=%v", ok, err)
	}
	ok, err = c.AddResource("mem://dup.json", map[string]any{"type": "integer"})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("second AddResource with same url should report false")
	}
}

func TestCompilerDefaultDraft(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	if _, err := c.AddResource("mem://draft7.json", decodeJSON(t, `{"type": "string", "minLength": 2}`)); err != nil {
		t.Fatal(err)
	}
	schemas := NewSchemas()
	idx, err := c.Compile("mem://draft7.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	sch := schemas.Get(idx)
	if sch.draftVersion != Draft7.version {
		t.Errorf("draftVersion: got %d, want %d", sch.draftVersion, Draft7.version)
	}
}

func TestCompilerRegisterFormat(t *testing.T) {
	c := NewCompiler()
	c.AssertFormat()
	called := false
	c.RegisterFormat("custom", func(v any) error {
		called = true
		return nil
	})
	if _, err := c.AddResource("mem://fmt.json", decodeJSON(t, `{"type": "string", "format": "custom"}`)); err != nil {
		t.Fatal(err)
	}
	schemas := NewSchemas()
	idx, err := c.Compile("mem://fmt.json", schemas)
	if err != nil {
		t.Fatal(err)
	}
	if err := schemas.Validate("anything", idx); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("registered format function was never called")
	}
}
