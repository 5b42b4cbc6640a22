// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"math/big"
	"strconv"
)

// number is an arbitrary-precision JSON number: the parsed rational
// value (for comparisons) plus the original literal (for error
// messages and round-tripping). Grounded on the teacher's
// compiler.go loadRat helper, generalized to keep the literal.
type number struct {
	rat     *big.Rat
	literal string
}

func newNumber(v any) (number, bool) {
	switch n := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(n))
		if !ok {
			return number{}, false
		}
		return number{r, string(n)}, true
	case float64:
		r := new(big.Rat).SetFloat64(n)
		if r == nil {
			return number{}, false
		}
		return number{r, strconv.FormatFloat(n, 'g', -1, 64)}, true
	case int:
		return number{new(big.Rat).SetInt64(int64(n)), strconv.Itoa(n)}, true
	case int64:
		return number{new(big.Rat).SetInt64(n), strconv.FormatInt(n, 10)}, true
	case uint64:
		return number{new(big.Rat).SetUint64(n), strconv.FormatUint(n, 10)}, true
	}
	return number{}, false
}

func (n number) String() string { return n.literal }

func (n number) cmp(m number) int { return n.rat.Cmp(m.rat) }

// isInteger reports whether n has a zero fractional part, i.e. whether
// it satisfies the "integer" type per spec §4.5 step 3 (numerically,
// not lexically: 1.0 is an integer).
func (n number) isInteger() bool { return n.rat.IsInt() }

func (n number) divisibleBy(m number) bool {
	if m.rat.Sign() == 0 {
		return false
	}
	q := new(big.Rat).Quo(n.rat, m.rat)
	return q.IsInt()
}
