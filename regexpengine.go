// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// RegexpEngine compiles an ECMA-262 pattern into a Regexp. Compiler's
// UseRegexpEngine lets callers plug in a different engine — e.g.
// github.com/dlclark/regexp2, which (unlike this package's default)
// supports full ECMA-262 syntax, including backreferences.
type RegexpEngine func(expr string) (Regexp, error)

// defaultRegexpEngine translates the pattern via ecmaToRE2 and compiles
// it with the standard library regexp package.
var defaultRegexpEngine RegexpEngine = func(expr string) (Regexp, error) {
	translated, err := ecmaToRE2(expr)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, err
	}
	return stdRegexp{re}, nil
}

type stdRegexp struct{ re *regexp.Regexp }

func (r stdRegexp) MatchString(s string) bool { return r.re.MatchString(s) }
func (r stdRegexp) String() string            { return r.re.String() }

// NewRegexp2Engine returns a RegexpEngine backed by
// github.com/dlclark/regexp2 in ECMAScript mode, which natively
// understands escapes (like `\c`) that RE2 has no equivalent for.
// Pass it to Compiler.UseRegexpEngine when patterns need exact
// ECMA-262 semantics rather than the default's RE2 approximation.
func NewRegexp2Engine() RegexpEngine {
	return func(expr string) (Regexp, error) {
		re, err := regexp2.Compile(expr, regexp2.ECMAScript)
		if err != nil {
			return nil, err
		}
		return (*regexp2Regexp)(re), nil
	}
}

type regexp2Regexp regexp2.Regexp

func (re *regexp2Regexp) MatchString(s string) bool {
	matched, err := (*regexp2.Regexp)(re).MatchString(s)
	return err == nil && matched
}

func (re *regexp2Regexp) String() string {
	return (*regexp2.Regexp)(re).String()
}
