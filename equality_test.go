// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"testing"
)

func TestJSONEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{json.Number("1"), json.Number("1.0"), true},
		{json.Number("1"), json.Number("2"), false},
		{"a", "a", true},
		{"a", "b", false},
		{true, true, true},
		{true, false, false},
		{nil, nil, true},
		{nil, "a", false},
		{[]any{json.Number("1"), "a"}, []any{json.Number("1"), "a"}, true},
		{[]any{json.Number("1"), "a"}, []any{"a", json.Number("1")}, false},
		{map[string]any{"a": json.Number("1")}, map[string]any{"a": json.Number("1.0")}, true},
		{map[string]any{"a": json.Number("1")}, map[string]any{"a": json.Number("1"), "b": json.Number("2")}, false},
		{"1", json.Number("1"), false},
	}
	for i, test := range tests {
		if got := jsonEqual(test.a, test.b); got != test.want {
			t.Errorf("#%d: jsonEqual(%v, %v): got %v, want %v", i, test.a, test.b, got, test.want)
		}
	}
}

func TestJSONType(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"s", "string"},
		{map[string]any{}, "object"},
		{[]any{}, "array"},
		{json.Number("1"), "integer"},
		{json.Number("1.5"), "number"},
	}
	for _, test := range tests {
		if got := jsonType(test.v); got != test.want {
			t.Errorf("jsonType(%v): got %q, want %q", test.v, got, test.want)
		}
	}
}

func TestSatisfiesType(t *testing.T) {
	if !satisfiesType(json.Number("1"), "number") {
		t.Error("integer should satisfy number")
	}
	if satisfiesType(json.Number("1.5"), "integer") {
		t.Error("non-integer number should not satisfy integer")
	}
	if !satisfiesType("s", "string") {
		t.Error("string should satisfy string")
	}
}
