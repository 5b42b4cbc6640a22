// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/base64"
	"strings"
)

// defaultContentEncodings seeds every Compiler with the one encoding
// named by RFC 8259 (spec §4.4 "contentEncoding"). Callers add more
// via RegisterContentEncoding.
func defaultContentEncodings() map[string]func(string) ([]byte, error) {
	return map[string]func(string) ([]byte, error){
		"base64": func(s string) ([]byte, error) {
			return base64.StdEncoding.DecodeString(s)
		},
	}
}

// defaultContentMediaTypes seeds every Compiler with the one media
// type every JSON Schema implementation understands natively: its own
// format (spec §4.4 "contentMediaType"). unmarshal reports whether the
// decoded value is also needed (true when contentSchema is present).
func defaultContentMediaTypes() map[string]func([]byte, bool) (any, error) {
	return map[string]func([]byte, bool) (any, error){
		"application/json": func(b []byte, unmarshal bool) (any, error) {
			if !unmarshal {
				if _, err := UnmarshalJSON(strings.NewReader(string(b))); err != nil {
					return nil, err
				}
				return nil, nil
			}
			return UnmarshalJSON(strings.NewReader(string(b)))
		},
	}
}
