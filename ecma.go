// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strings"
)

// ecmaToRE2 translates the subset of ECMA-262 regex syntax that JSON
// Schema's "pattern"/"patternProperties" keywords rely on into RE2
// syntax accepted by the standard library regexp package (spec §4.4
// "Regex sub-language"). \d, \w, \b and the other listed escapes
// already coincide between ECMA-262 and RE2 and pass through. \s, and
// \S outside a character class, are rewritten to the explicit ECMA-262
// whitespace set (RE2's own \s is ASCII-only); \S inside a character
// class keeps RE2's meaning. \cX becomes its control character and \a
// is rejected; everything else passes through untouched.
func ecmaToRE2(pattern string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			next := pattern[i+1]
			switch next {
			case 'd', 'D', 'w', 'W', 'b', 'B', 'n', 'r', 't', 'f', 'v', '0':
				b.WriteByte(c)
				b.WriteByte(next)
				i++
				continue
			case 's', 'S':
				switch {
				case inClass && next == 's':
					b.WriteString(ecmaSpace)
				case inClass:
					b.WriteString(`\S`)
				case next == 's':
					b.WriteString("[" + ecmaSpace + "]")
				default:
					b.WriteString("[^" + ecmaSpace + "]")
				}
				i++
				continue
			case 'a':
				return "", &UnsupportedRegexError{Pattern: pattern, Reason: `\a is not supported`}
			case 'c':
				if i+2 < len(pattern) {
					letter := pattern[i+2]
					ctrl := letter % 32
					fmt.Fprintf(&b, `\x%02x`, ctrl)
					i += 2
					continue
				}
				return "", &UnsupportedRegexError{Pattern: pattern, Reason: `\c must be followed by a letter`}
			default:
				b.WriteByte(c)
				b.WriteByte(next)
				i++
				continue
			}
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		}
		_ = inClass
		b.WriteByte(c)
	}
	return b.String(), nil
}

// ecmaSpace is the body of an RE2 character class matching ECMA-262
// WhiteSpace and LineTerminator characters.
const ecmaSpace = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// --

// UnsupportedRegexError reports an ECMA-262 pattern this package
// cannot translate to RE2.
type UnsupportedRegexError struct {
	Pattern string
	Reason  string
}

func (e *UnsupportedRegexError) Error() string {
	return fmt.Sprintf("unsupported regex %q: %s", e.Pattern, e.Reason)
}
