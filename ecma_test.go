// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"regexp"
	"testing"
)

func TestEcmaToRE2(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{`^\d+$`, false},
		{`\w\s\b`, false},
		{`[a-z]+`, false},
		{`\cA`, false},
		{`\a`, true},
	}
	for _, test := range tests {
		got, err := ecmaToRE2(test.pattern)
		if test.wantErr {
			if err == nil {
				t.Errorf("ecmaToRE2(%q): want error, got none", test.pattern)
			}
			continue
		}
		if err != nil {
			t.Errorf("ecmaToRE2(%q): unexpected error: %v", test.pattern, err)
			continue
		}
		if _, err := regexp.Compile(got); err != nil {
			t.Errorf("ecmaToRE2(%q) = %q, not valid RE2: %v", test.pattern, got, err)
		}
	}
}

func TestEcmaToRE2ControlEscape(t *testing.T) {
	got, err := ecmaToRE2(`\cA`)
	if err != nil {
		t.Fatal(err)
	}
	re, err := regexp.Compile(got)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("\x01") {
		t.Errorf("\\cA should match control char 0x01, pattern compiled to %q", got)
	}
}
