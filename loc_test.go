// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "testing"

func TestJSONPointerString(t *testing.T) {
	tests := []struct {
		p    jsonPointer
		want string
	}{
		{"", ""},
		{"/a/b", "/a/b"},
		{"/a~1b/c~0d", "/a~1b/c~0d"},
	}
	for _, test := range tests {
		if got := test.p.string(); got != test.want {
			t.Errorf("%q.string(): got %q, want %q", test.p, got, test.want)
		}
	}
}

func TestJsonPointerAppendTokens(t *testing.T) {
	p := jsonPointer("").append("a").append("b")
	if p != "/a/b" {
		t.Errorf("append: got %q, want %q", p, "/a/b")
	}
	toks := p.tokens()
	if len(toks) != 2 || toks[0] != "a" || toks[1] != "b" {
		t.Errorf("tokens: got %v", toks)
	}
}

func TestDecodePointerToken(t *testing.T) {
	tests := []struct{ tok, want string }{
		{"a~1b", "a/b"},
		{"a~0b", "a~b"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := decodePointerToken(test.tok); got != test.want {
			t.Errorf("decodePointerToken(%q): got %q, want %q", test.tok, got, test.want)
		}
	}
}

func TestEscapePointerToken(t *testing.T) {
	tests := []struct{ tok, want string }{
		{"a/b", "a~1b"},
		{"a~b", "a~0b"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := escapePointerToken(test.tok); got != test.want {
			t.Errorf("escapePointerToken(%q): got %q, want %q", test.tok, got, test.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"http://example.com/schema#/a/b", "http://example.com/schema"},
		{"http://example.com/schema", "http://example.com/schema"},
		{"./relative/path.json", "./relative/path.json"},
	}
	for _, test := range tests {
		if got := string(normalizeURL(test.in)); got != test.want {
			t.Errorf("normalizeURL(%q): got %q, want %q", test.in, got, test.want)
		}
	}
}

func TestSplitFragment(t *testing.T) {
	u, frag, err := splitFragment("http://example.com/schema#/a/b")
	if err != nil {
		t.Fatal(err)
	}
	if u != "http://example.com/schema" || frag != "/a/b" {
		t.Errorf("got url=%q frag=%q", u, frag)
	}

	u, frag, err = splitFragment("http://example.com/schema")
	if err != nil {
		t.Fatal(err)
	}
	if u != "http://example.com/schema" || frag != "" {
		t.Errorf("got url=%q frag=%q", u, frag)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base, ref string
		wantURL   string
		wantFrag  string
	}{
		{"http://example.com/a/b.json", "c.json", "http://example.com/a/c.json", ""},
		{"http://example.com/a/b.json", "#/defs/x", "http://example.com/a/b.json", "/defs/x"},
		{"http://example.com/a/b.json", "http://other.com/d.json", "http://other.com/d.json", ""},
	}
	for _, test := range tests {
		uf, err := join(url(test.base), test.ref)
		if err != nil {
			t.Fatalf("join(%q, %q): %v", test.base, test.ref, err)
		}
		if string(uf.url) != test.wantURL || string(uf.frag) != test.wantFrag {
			t.Errorf("join(%q, %q): got url=%q frag=%q, want url=%q frag=%q",
				test.base, test.ref, uf.url, uf.frag, test.wantURL, test.wantFrag)
		}
	}
}

func TestURLPtrLookup(t *testing.T) {
	doc := map[string]any{
		"defs": map[string]any{
			"x": []any{"a", "b"},
		},
	}
	up := urlPtr{url: "http://example.com/schema", ptr: jsonPointer("/defs/x/1")}
	v, err := up.lookup(doc)
	if err != nil {
		t.Fatal(err)
	}
	if v != "b" {
		t.Errorf("lookup: got %v, want %q", v, "b")
	}

	up = urlPtr{url: "http://example.com/schema", ptr: jsonPointer("/defs/y")}
	if _, err := up.lookup(doc); err == nil {
		t.Error("lookup of missing pointer should fail")
	}
}
