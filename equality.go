// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// jsonEqual implements the structural JSON equality used by enum,
// const and uniqueItems (spec §4.5): type-exact except for numbers,
// which compare by mathematical value; object key-set equality;
// element-wise array equality.
func jsonEqual(v1, v2 any) bool {
	switch val1 := v1.(type) {
	case map[string]any:
		val2, ok := v2.(map[string]any)
		if !ok || len(val1) != len(val2) {
			return false
		}
		for k, v := range val1 {
			v2v, ok := val2[k]
			if !ok || !jsonEqual(v, v2v) {
				return false
			}
		}
		return true
	case []any:
		val2, ok := v2.([]any)
		if !ok || len(val1) != len(val2) {
			return false
		}
		for i, v := range val1 {
			if !jsonEqual(v, val2[i]) {
				return false
			}
		}
		return true
	case nil:
		return v2 == nil
	case bool:
		val2, ok := v2.(bool)
		return ok && val1 == val2
	case string:
		val2, ok := v2.(string)
		return ok && val1 == val2
	default:
		n1, ok1 := newNumber(v1)
		n2, ok2 := newNumber(v2)
		if ok1 && ok2 {
			return n1.cmp(n2) == 0
		}
		return false
	}
}

// jsonType returns the JSON Schema type name of v, per spec §4.5 step 3.
func jsonType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if n, ok := newNumber(v); ok {
			if n.isInteger() {
				return "integer"
			}
			return "number"
		}
		return "unknown"
	}
}

// satisfiesType reports whether v's type matches wantType, honoring
// the "integer" special-case (a number with zero fractional part also
// satisfies "integer" per spec §4.5 step 3).
func satisfiesType(v any, wantType string) bool {
	got := jsonType(v)
	if got == wantType {
		return true
	}
	if wantType == "number" && got == "integer" {
		return true
	}
	return false
}
