// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/schemaforge/jsonschema/kind"
)

// Validate checks v (a decoded JSON value, e.g. from json.Decode with
// UseNumber) against the compiled schema idx, per spec §4.5. It returns
// nil on success or a *ValidationError tree rooted at the schema itself.
func (s *Schemas) Validate(v any, idx SchemaIndex) error {
	sch := s.at(idx)
	if jsonType(v) == "unknown" {
		return newLeaf(sch.loc, "", &kind.InvalidJsonValue{Value: v})
	}
	vc := &vctx{schemas: s, visiting: map[cycleKey]bool{}}
	_, _, causes := vc.eval(idx, v, "")
	if len(causes) == 0 {
		return nil
	}
	return wrap(sch.loc, "", &kind.Schema{Location: sch.loc}, causes)
}

// cycleKey identifies one (schema, instance-location) evaluation frame,
// used to break infinite recursion on self-referential schemas such as
// {"$ref": "#"} applied to a cyclic instance-free location (spec §4.5
// "Cycle detection").
type cycleKey struct {
	idx  SchemaIndex
	inst jsonPointer
}

// vctx carries the state threaded through one top-level Validate call:
// the dynamic scope (enclosing resource ids, outermost first) used by
// $recursiveRef/$dynamicRef, and the in-progress set used to detect
// schema self-reference cycles.
type vctx struct {
	schemas  *Schemas
	scope    []url
	visiting map[cycleKey]bool
}

// eval applies the schema at idx to inst located at instPtr, returning
// the properties/array-indices it (and everything it delegated to)
// marked evaluated, plus the validation failures found. A non-nil but
// empty causes slice never happens; callers test len(causes) == 0.
func (vc *vctx) eval(idx SchemaIndex, inst any, instPtr jsonPointer) (map[string]bool, map[int]bool, []*ValidationError) {
	sch := vc.schemas.at(idx)

	key := cycleKey{idx, instPtr}
	if vc.visiting[key] {
		// revisiting the same schema at the same instance location
		// without having returned yet: an unbounded reference cycle
		// (spec §4.5 "Cycle detection").
		return nil, nil, []*ValidationError{newLeaf(sch.loc, instPtr, &kind.RefCycle{
			URL:              sch.loc,
			KeywordLocation1: sch.loc,
			KeywordLocation2: sch.loc,
		})}
	}
	vc.visiting[key] = true
	defer delete(vc.visiting, key)

	if sch.boolSchema != nil {
		if !*sch.boolSchema {
			return nil, nil, []*ValidationError{newLeaf(sch.loc, instPtr, &kind.FalseSchema{})}
		}
		return nil, nil, nil
	}

	if len(vc.scope) == 0 || vc.scope[len(vc.scope)-1] != sch.resourceID {
		vc.scope = append(vc.scope, sch.resourceID)
		defer func() { vc.scope = vc.scope[:len(vc.scope)-1] }()
	}

	var causes []*ValidationError
	evalProps := map[string]bool{}
	evalItems := map[int]bool{}

	addCause := func(c *ValidationError) {
		if c != nil {
			causes = append(causes, c)
		}
	}
	mergeEval := func(p map[string]bool, it map[int]bool) {
		for k := range p {
			evalProps[k] = true
		}
		for k := range it {
			evalItems[k] = true
		}
	}

	if sch.hasRef {
		p, it, c := vc.eval(sch.ref, inst, instPtr)
		mergeEval(p, it)
		addCause(wrap(sch.loc, instPtr, &kind.Reference{Keyword: "$ref", URL: vc.schemas.at(sch.ref).loc}, c))
	}
	if sch.hasRecursiveRef {
		target := sch.recursiveRef
		for _, rid := range vc.scope {
			if ridx, ok := vc.schemas.recursiveAnchors[rid]; ok {
				target = ridx
				break
			}
		}
		p, it, c := vc.eval(target, inst, instPtr)
		mergeEval(p, it)
		addCause(wrap(sch.loc, instPtr, &kind.Reference{Keyword: "$recursiveRef", URL: vc.schemas.at(target).loc}, c))
	}
	if sch.hasDynamicRef {
		target := sch.dynamicRef
		if sch.dynamicRefAnchor != "" {
			for _, rid := range vc.scope {
				if m, ok := vc.schemas.dynamicAnchors[rid]; ok {
					if t, ok2 := m[sch.dynamicRefAnchor]; ok2 {
						target = t
						break
					}
				}
			}
		}
		p, it, c := vc.eval(target, inst, instPtr)
		mergeEval(p, it)
		addCause(wrap(sch.loc, instPtr, &kind.Reference{Keyword: "$dynamicRef", URL: vc.schemas.at(target).loc}, c))
	}

	if len(sch.types) > 0 && !satisfiesAnyType(inst, sch.types) {
		addCause(newLeaf(sch.loc, instPtr, &kind.Type{Got: jsonType(inst), Want: sch.types}))
	}
	if sch.enum != nil {
		ok := false
		for _, e := range sch.enum {
			if jsonEqual(inst, e) {
				ok = true
				break
			}
		}
		if !ok {
			addCause(newLeaf(sch.loc, instPtr, &kind.Enum{Got: inst, Want: sch.enum}))
		}
	}
	if sch.hasConst && !jsonEqual(inst, sch.constValue) {
		addCause(newLeaf(sch.loc, instPtr, &kind.Const{Got: inst, Want: sch.constValue}))
	}
	if sch.hasNot {
		_, _, c := vc.eval(sch.not, inst, instPtr)
		if len(c) == 0 {
			addCause(newLeaf(sch.loc, instPtr, &kind.Not{}))
		}
	}
	if len(sch.allOf) > 0 {
		var allOfCauses []*ValidationError
		for _, bidx := range sch.allOf {
			p, it, c := vc.eval(bidx, inst, instPtr)
			mergeEval(p, it)
			allOfCauses = append(allOfCauses, c...)
		}
		addCause(wrap(sch.loc, instPtr, &kind.AllOf{}, allOfCauses))
	}
	if len(sch.anyOf) > 0 {
		var anyOfCauses []*ValidationError
		matched := false
		for _, bidx := range sch.anyOf {
			p, it, c := vc.eval(bidx, inst, instPtr)
			if len(c) == 0 {
				matched = true
				mergeEval(p, it)
			} else {
				anyOfCauses = append(anyOfCauses, c...)
			}
		}
		if !matched {
			addCause(wrap(sch.loc, instPtr, &kind.AnyOf{}, anyOfCauses))
		}
	}
	if len(sch.oneOf) > 0 {
		var oneOfCauses []*ValidationError
		matched := -1
		second := -1
		var mp map[string]bool
		var mit map[int]bool
		for i, bidx := range sch.oneOf {
			p, it, c := vc.eval(bidx, inst, instPtr)
			if len(c) == 0 {
				if matched == -1 {
					matched, mp, mit = i, p, it
				} else if second == -1 {
					second = i
				}
			} else {
				oneOfCauses = append(oneOfCauses, c...)
			}
		}
		switch {
		case matched == -1:
			addCause(wrap(sch.loc, instPtr, &kind.OneOf{}, oneOfCauses))
		case second != -1:
			addCause(newLeaf(sch.loc, instPtr, &kind.OneOf{Subschemas: []int{matched, second}}))
		default:
			mergeEval(mp, mit)
		}
	}
	if sch.hasIf {
		_, _, c := vc.eval(sch.ifIdx, inst, instPtr)
		if len(c) == 0 {
			if sch.hasThen {
				p, it, c2 := vc.eval(sch.thenIdx, inst, instPtr)
				mergeEval(p, it)
				causes = append(causes, c2...)
			}
		} else if sch.hasElse {
			p, it, c2 := vc.eval(sch.elseIdx, inst, instPtr)
			mergeEval(p, it)
			causes = append(causes, c2...)
		}
	}
	if sch.formatFn != nil {
		if err := sch.formatFn(inst); err != nil && sch.assertFormat {
			addCause(newLeaf(sch.loc, instPtr, &kind.Format{Got: inst, Want: sch.formatName, Err: err}))
		}
	}

	if obj, ok := inst.(map[string]any); ok {
		vc.evalObject(sch, obj, instPtr, evalProps, addCause, &causes)
	}
	if arr, ok := inst.([]any); ok {
		vc.evalArray(sch, arr, instPtr, evalItems, addCause, &causes)
	}
	if str, ok := inst.(string); ok {
		vc.evalString(sch, str, instPtr, addCause)
	}
	if n, ok := newNumber(inst); ok {
		evalNumeric(sch, n, instPtr, addCause)
	}

	return evalProps, evalItems, causes
}

func satisfiesAnyType(v any, types []string) bool {
	for _, t := range types {
		if satisfiesType(v, t) {
			return true
		}
	}
	return false
}

func (vc *vctx) evalObject(sch *Schema, obj map[string]any, instPtr jsonPointer, evalProps map[string]bool, addCause func(*ValidationError), causes *[]*ValidationError) {
	if sch.minProperties >= 0 && len(obj) < sch.minProperties {
		addCause(newLeaf(sch.loc, instPtr, &kind.MinProperties{Got: len(obj), Want: sch.minProperties}))
	}
	if sch.maxProperties >= 0 && len(obj) > sch.maxProperties {
		addCause(newLeaf(sch.loc, instPtr, &kind.MaxProperties{Got: len(obj), Want: sch.maxProperties}))
	}
	if len(sch.required) > 0 {
		var missing []string
		for _, r := range sch.required {
			if _, ok := obj[r]; !ok {
				missing = append(missing, r)
			}
		}
		if len(missing) > 0 {
			addCause(newLeaf(sch.loc, instPtr, &kind.Required{Missing: missing}))
		}
	}

	propMatched := map[string]bool{}
	if sch.properties != nil {
		for _, k := range sortedKeys(sch.properties) {
			if cv, ok := obj[k]; ok {
				propMatched[k] = true
				_, _, c := vc.eval(sch.properties[k], cv, instPtr.append(k))
				*causes = append(*causes, c...)
				evalProps[k] = true
			}
		}
	}
	for _, ps := range sch.patternProperties {
		for k, cv := range obj {
			if ps.re.MatchString(k) {
				propMatched[k] = true
				_, _, c := vc.eval(ps.idx, cv, instPtr.append(k))
				*causes = append(*causes, c...)
				evalProps[k] = true
			}
		}
	}
	if sch.additionalProperties != nil {
		var extra []string
		for k, cv := range obj {
			if propMatched[k] {
				continue
			}
			if sch.additionalProperties.always != nil {
				if *sch.additionalProperties.always {
					evalProps[k] = true
				} else {
					extra = append(extra, k)
				}
				continue
			}
			_, _, c := vc.eval(sch.additionalProperties.idx, cv, instPtr.append(k))
			if len(c) == 0 {
				evalProps[k] = true
			} else {
				extra = append(extra, k)
			}
		}
		if len(extra) > 0 {
			sort.Strings(extra)
			addCause(newLeaf(sch.loc, instPtr, &kind.AdditionalProperties{Properties: extra}))
		}
	}
	if sch.hasPropertyNames {
		for k := range obj {
			_, _, c := vc.eval(sch.propertyNames, k, instPtr.append(k))
			addCause(wrap(sch.loc, instPtr.append(k), &kind.PropertyNames{Property: k}, c))
		}
	}
	if sch.dependentRequired != nil {
		for prop, reqs := range sch.dependentRequired {
			if _, ok := obj[prop]; !ok {
				continue
			}
			var missing []string
			for _, r := range reqs {
				if _, ok := obj[r]; !ok {
					missing = append(missing, r)
				}
			}
			if len(missing) > 0 {
				addCause(newLeaf(sch.loc, instPtr, &kind.DependentRequired{Prop: prop, Missing: missing}))
			}
		}
	}
	if sch.dependentSchemas != nil {
		for prop, didx := range sch.dependentSchemas {
			if _, ok := obj[prop]; !ok {
				continue
			}
			p, it, c := vc.eval(didx, obj, instPtr)
			for k := range p {
				evalProps[k] = true
			}
			_ = it
			*causes = append(*causes, c...)
		}
	}
	if sch.dependencies != nil {
		for prop, dep := range sch.dependencies {
			if _, ok := obj[prop]; !ok {
				continue
			}
			if dep.isSch {
				_, _, c := vc.eval(dep.idx, obj, instPtr)
				*causes = append(*causes, c...)
			} else {
				var missing []string
				for _, r := range dep.props {
					if _, ok := obj[r]; !ok {
						missing = append(missing, r)
					}
				}
				if len(missing) > 0 {
					addCause(newLeaf(sch.loc, instPtr, &kind.Dependency{Prop: prop, Missing: missing}))
				}
			}
		}
	}
	if sch.unevaluatedProperties != nil {
		var extra []string
		for k, cv := range obj {
			if evalProps[k] {
				continue
			}
			if sch.unevaluatedProperties.always != nil {
				if *sch.unevaluatedProperties.always {
					evalProps[k] = true
				} else {
					extra = append(extra, k)
				}
				continue
			}
			_, _, c := vc.eval(sch.unevaluatedProperties.idx, cv, instPtr.append(k))
			if len(c) == 0 {
				evalProps[k] = true
			} else {
				extra = append(extra, k)
			}
		}
		if len(extra) > 0 {
			sort.Strings(extra)
			addCause(newLeaf(sch.loc, instPtr, &kind.UnevaluatedProperties{Properties: extra}))
		}
	}
}

func sortedKeys(m map[string]SchemaIndex) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func (vc *vctx) evalArray(sch *Schema, arr []any, instPtr jsonPointer, evalItems map[int]bool, addCause func(*ValidationError), causes *[]*ValidationError) {
	if sch.minItems >= 0 && len(arr) < sch.minItems {
		addCause(newLeaf(sch.loc, instPtr, &kind.MinItems{Got: len(arr), Want: sch.minItems}))
	}
	if sch.maxItems >= 0 && len(arr) > sch.maxItems {
		addCause(newLeaf(sch.loc, instPtr, &kind.MaxItems{Got: len(arr), Want: sch.maxItems}))
	}
	if sch.uniqueItems {
		if i, j, ok := findDuplicate(arr); ok {
			addCause(newLeaf(sch.loc, instPtr, &kind.UniqueItems{Duplicates: [2]int{i, j}}))
		}
	}

	switch {
	case sch.items2020 != nil || len(sch.prefixItems) > 0:
		for i, pidx := range sch.prefixItems {
			if i >= len(arr) {
				break
			}
			_, _, c := vc.eval(pidx, arr[i], instPtr.append(strconv.Itoa(i)))
			*causes = append(*causes, c...)
			evalItems[i] = true
		}
		if sch.items2020 != nil {
			start := len(sch.prefixItems)
			applyAdditional(vc, sch.items2020, arr, start, instPtr, evalItems, addCause,
				func(count int) *ValidationError { return newLeaf(sch.loc, instPtr, &kind.AdditionalItems{Count: count}) }, causes)
		}
	case sch.items != nil:
		if sch.items.isSch {
			for i, elem := range arr {
				_, _, c := vc.eval(sch.items.single, elem, instPtr.append(strconv.Itoa(i)))
				*causes = append(*causes, c...)
				evalItems[i] = true
			}
		} else {
			for i, pidx := range sch.items.tuple {
				if i >= len(arr) {
					break
				}
				_, _, c := vc.eval(pidx, arr[i], instPtr.append(strconv.Itoa(i)))
				*causes = append(*causes, c...)
				evalItems[i] = true
			}
			if sch.additionalItems != nil {
				start := len(sch.items.tuple)
				applyAdditional(vc, sch.additionalItems, arr, start, instPtr, evalItems, addCause,
					func(count int) *ValidationError { return newLeaf(sch.loc, instPtr, &kind.AdditionalItems{Count: count}) }, causes)
			}
		}
	}

	if sch.hasContains {
		var matchedIdxs []int
		for i, elem := range arr {
			_, _, c := vc.eval(sch.contains, elem, instPtr.append(strconv.Itoa(i)))
			if len(c) == 0 {
				matchedIdxs = append(matchedIdxs, i)
				if sch.containsMarksEvaluated {
					evalItems[i] = true
				}
			}
		}
		if len(matchedIdxs) < sch.minContains {
			if sch.minContains <= 1 {
				addCause(newLeaf(sch.loc, instPtr, &kind.Contains{}))
			} else {
				addCause(newLeaf(sch.loc, instPtr, &kind.MinContains{Got: matchedIdxs, Want: sch.minContains}))
			}
		}
		if sch.maxContains >= 0 && len(matchedIdxs) > sch.maxContains {
			addCause(newLeaf(sch.loc, instPtr, &kind.MaxContains{Got: matchedIdxs, Want: sch.maxContains}))
		}
	}

	if sch.unevaluatedItems != nil {
		var extra []int
		for i, elem := range arr {
			if evalItems[i] {
				continue
			}
			if sch.unevaluatedItems.always != nil {
				if *sch.unevaluatedItems.always {
					evalItems[i] = true
				} else {
					extra = append(extra, i)
				}
				continue
			}
			_, _, c := vc.eval(sch.unevaluatedItems.idx, elem, instPtr.append(strconv.Itoa(i)))
			if len(c) == 0 {
				evalItems[i] = true
			} else {
				extra = append(extra, i)
			}
		}
		if len(extra) > 0 {
			addCause(newLeaf(sch.loc, instPtr, &kind.UnevaluatedItems{Items: extra}))
		}
	}
}

// applyAdditional evaluates arr[start:] against an additionalItems /
// 2020-12 "items" trailer keyword, which is either a bool or a schema.
func applyAdditional(vc *vctx, a *additional, arr []any, start int, instPtr jsonPointer, evalItems map[int]bool, addCause func(*ValidationError), mkErr func(int) *ValidationError, causes *[]*ValidationError) {
	if start >= len(arr) {
		return
	}
	if a.always != nil {
		if *a.always {
			for i := start; i < len(arr); i++ {
				evalItems[i] = true
			}
		} else {
			addCause(mkErr(len(arr) - start))
		}
		return
	}
	for i := start; i < len(arr); i++ {
		_, _, c := vc.eval(a.idx, arr[i], instPtr.append(strconv.Itoa(i)))
		if len(c) == 0 {
			evalItems[i] = true
		} else {
			*causes = append(*causes, c...)
		}
	}
}

func findDuplicate(arr []any) (int, int, bool) {
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if jsonEqual(arr[i], arr[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (vc *vctx) evalString(sch *Schema, s string, instPtr jsonPointer, addCause func(*ValidationError)) {
	if sch.minLength >= 0 || sch.maxLength >= 0 {
		n := utf8.RuneCountInString(s)
		if sch.minLength >= 0 && n < sch.minLength {
			addCause(newLeaf(sch.loc, instPtr, &kind.MinLength{Got: n, Want: sch.minLength}))
		}
		if sch.maxLength >= 0 && n > sch.maxLength {
			addCause(newLeaf(sch.loc, instPtr, &kind.MaxLength{Got: n, Want: sch.maxLength}))
		}
	}
	if sch.pattern != nil && !sch.pattern.MatchString(s) {
		addCause(newLeaf(sch.loc, instPtr, &kind.Pattern{Got: s, Want: sch.pattern.String()}))
	}

	var decoded []byte
	haveDecoded := false
	if sch.contentEncodingName != "" && sch.contentDecode != nil {
		b, err := sch.contentDecode(s)
		if err != nil {
			if sch.assertContent {
				addCause(newLeaf(sch.loc, instPtr, &kind.ContentEncoding{Want: sch.contentEncodingName, Err: err}))
			}
		} else {
			decoded, haveDecoded = b, true
		}
	}
	if sch.contentMediaTypeName != "" && sch.contentCheck != nil {
		raw := []byte(s)
		if haveDecoded {
			raw = decoded
		}
		v, err := sch.contentCheck(raw, sch.hasContentSchema)
		if err != nil {
			if sch.assertContent {
				addCause(newLeaf(sch.loc, instPtr, &kind.ContentMediaType{Got: raw, Want: sch.contentMediaTypeName, Err: err}))
			}
		} else if sch.hasContentSchema {
			_, _, c := vc.eval(sch.contentSchema, v, instPtr)
			if len(c) > 0 && sch.assertContent {
				addCause(wrap(sch.loc, instPtr, &kind.ContentSchema{}, c))
			}
		}
	}
}

func evalNumeric(sch *Schema, n number, instPtr jsonPointer, addCause func(*ValidationError)) {
	if sch.hasMinimum && n.cmp(sch.minimum) < 0 {
		addCause(newLeaf(sch.loc, instPtr, &kind.Minimum{Got: n.rat, Want: sch.minimum.rat}))
	}
	if sch.hasMaximum && n.cmp(sch.maximum) > 0 {
		addCause(newLeaf(sch.loc, instPtr, &kind.Maximum{Got: n.rat, Want: sch.maximum.rat}))
	}
	if sch.hasExclusiveMinimum && n.cmp(sch.exclusiveMinimum) <= 0 {
		addCause(newLeaf(sch.loc, instPtr, &kind.ExclusiveMinimum{Got: n.rat, Want: sch.exclusiveMinimum.rat}))
	}
	if sch.hasExclusiveMaximum && n.cmp(sch.exclusiveMaximum) >= 0 {
		addCause(newLeaf(sch.loc, instPtr, &kind.ExclusiveMaximum{Got: n.rat, Want: sch.exclusiveMaximum.rat}))
	}
	if sch.hasMultipleOf && !n.divisibleBy(sch.multipleOf) {
		addCause(newLeaf(sch.loc, instPtr, &kind.MultipleOf{Got: n.rat, Want: sch.multipleOf.rat}))
	}
}
