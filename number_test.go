// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"testing"
)

func TestNumberCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "1.0", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"1e10", "10000000000", 0},
		{"0.1", "1", -1},
	}
	for _, test := range tests {
		a, ok := newNumber(json.Number(test.a))
		if !ok {
			t.Fatalf("newNumber(%q) failed", test.a)
		}
		b, ok := newNumber(json.Number(test.b))
		if !ok {
			t.Fatalf("newNumber(%q) failed", test.b)
		}
		if got := a.cmp(b); (got < 0 && test.want >= 0) || (got > 0 && test.want <= 0) || (got == 0 && test.want != 0) {
			t.Errorf("cmp(%q, %q): got %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestNumberIsInteger(t *testing.T) {
	tests := []struct {
		lit  string
		want bool
	}{
		{"1", true},
		{"1.0", true},
		{"1.1", false},
		{"-5", true},
		{"0.5", false},
	}
	for _, test := range tests {
		n, ok := newNumber(json.Number(test.lit))
		if !ok {
			t.Fatalf("newNumber(%q) failed", test.lit)
		}
		if got := n.isInteger(); got != test.want {
			t.Errorf("isInteger(%q): got %v, want %v", test.lit, got, test.want)
		}
	}
}

func TestNumberDivisibleBy(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"10", "5", true},
		{"10", "3", false},
		{"4.5", "1.5", true},
		{"5", "0", false},
	}
	for _, test := range tests {
		a, _ := newNumber(json.Number(test.a))
		b, _ := newNumber(json.Number(test.b))
		if got := a.divisibleBy(b); got != test.want {
			t.Errorf("divisibleBy(%q, %q): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestNumberFromFloat(t *testing.T) {
	n, ok := newNumber(1.5)
	if !ok {
		t.Fatal("newNumber(1.5) failed")
	}
	if n.String() != "1.5" {
		t.Errorf("String(): got %q, want %q", n.String(), "1.5")
	}
}

func TestNumberFromGoIntTypes(t *testing.T) {
	// yaml.v3 decodes YAML integer scalars into these native Go
	// numeric types rather than json.Number/float64.
	for _, v := range []any{int(7), int64(7), uint64(7)} {
		n, ok := newNumber(v)
		if !ok {
			t.Fatalf("newNumber(%T(%v)) failed", v, v)
		}
		if !n.isInteger() {
			t.Errorf("newNumber(%T(%v)).isInteger(): got false", v, v)
		}
		if jsonType(v) != "integer" {
			t.Errorf("jsonType(%T(%v)): got %q, want %q", v, v, jsonType(v), "integer")
		}
	}
}

func TestNumberInvalid(t *testing.T) {
	if _, ok := newNumber("not a number"); ok {
		t.Error("newNumber(string) should fail")
	}
	if _, ok := newNumber(json.Number("not-a-number")); ok {
		t.Error("newNumber(invalid json.Number) should fail")
	}
}
