// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "strconv"

// resource is a subtree of a root document delimited by an $id/id
// declaration (spec §3 "Resource").
type resource struct {
	ptr            jsonPointer
	id             url
	draft          *Draft
	vocabularies   map[string]bool // nil pre-2019
	anchors        map[anchor]jsonPointer
	dynamicAnchors []anchor
}

func newResourceAt(ptr jsonPointer, id url, draft *Draft) *resource {
	return &resource{ptr: ptr, id: id, draft: draft, anchors: map[anchor]jsonPointer{}}
}

// positionsOf expands a keyword's raw value into the set of pointer ->
// subschema-value pairs it carries, per the keyword's position mask
// (spec §4.2). For a mask combining posItem and posSelf (e.g. the
// pre-2020 "items" keyword), an array value is treated as a tuple of
// per-item schemas and anything else as a single schema.
func positionsOf(mask position, v any, ptr jsonPointer) map[jsonPointer]any {
	out := map[jsonPointer]any{}
	if mask&posProp != 0 {
		if obj, ok := v.(map[string]any); ok {
			for k, cv := range obj {
				out[ptr.append(k)] = cv
			}
			return out
		}
	}
	if mask&posItem != 0 {
		if arr, ok := v.([]any); ok {
			for i, cv := range arr {
				out[ptr.append(strconv.Itoa(i))] = cv
			}
			return out
		}
	}
	if mask&posSelf != 0 {
		out[ptr] = v
	}
	return out
}

// crawl walks a value under base url B and pointer P (spec §4.2),
// recording resources/anchors into rt and recursing into every
// subschema position the draft table names. fallback is the draft (and
// vocabulary set) this subschema inherits absent its own $schema.
func (rt *root) crawl(loader *defaultLoader, v any, base url, ptr jsonPointer, fallback *resource) error {
	if _, done := rt.crawled[ptr]; done {
		return nil
	}

	switch vv := v.(type) {
	case bool:
		if ptr.isEmpty() {
			rt.resources[ptr] = newResourceAt(ptr, base, fallback.draft)
		}
		rt.crawled[ptr] = struct{}{}
		return nil
	case map[string]any:
		return rt.crawlObject(loader, vv, base, ptr, fallback)
	default:
		return nil
	}
}

func (rt *root) crawlObject(loader *defaultLoader, obj map[string]any, base url, ptr jsonPointer, fallback *resource) error {
	draft := fallback.draft
	hasOwnSchema := false
	if su, ok := obj["$schema"]; ok {
		if s, ok := su.(string); ok {
			d, err := loader.resolveDraft(s, map[url]struct{}{})
			if err != nil {
				return err
			}
			draft = d
			hasOwnSchema = true
		}
	}

	id := draft.getID(obj)
	// pre-2019 "$ref" sibling: all other keywords (including id) are
	// ignored (spec §4.2/compiler note).
	hasRef := draft.version < 2019
	if hasRef {
		if _, ok := obj["$ref"]; ok {
			if ptr.isEmpty() {
				rt.resources[ptr] = newResourceAt(ptr, base, draft)
			}
			rt.crawled[ptr] = struct{}{}
			return nil
		}
	}

	var res *resource
	switch {
	case id != "":
		uf, err := join(base, id)
		if err != nil {
			return &ParseIDError{urlPtr{rt.url, ptr}.String()}
		}
		base = uf.url
		res = newResourceAt(ptr, base, draft)
	case ptr.isEmpty():
		res = newResourceAt(ptr, base, draft)
	}

	if res != nil {
		if existing := rt.resourceByID(base); existing != nil {
			if existing.ptr != ptr {
				return &DuplicateIDError{base.String(), rt.url.String(), string(ptr), string(existing.ptr)}
			}
		} else {
			if hasOwnSchema && draft.version >= 2019 {
				vocabs, err := loader.resolveVocabularies(draft, obj)
				if err != nil {
					return err
				}
				res.vocabularies = vocabs
			} else if draft.version >= 2019 {
				res.vocabularies = fallback.vocabularies
			}
			rt.resources[ptr] = res
		}
	}

	encl := rt.resourceByID(base)
	if encl == nil {
		encl = fallback
	}
	if err := rt.collectAnchors(obj, ptr, encl, id, draft); err != nil {
		return err
	}
	rt.crawled[ptr] = struct{}{}

	activeFallback := encl
	if res != nil {
		activeFallback = res
	}

	subschemas := map[jsonPointer]any{}
	for kw, mask := range draft.positions {
		v, ok := obj[kw]
		if !ok {
			continue
		}
		for p, cv := range positionsOf(mask, v, ptr.append(kw)) {
			subschemas[p] = cv
		}
	}
	if draft.dependenciesIsMixed {
		if deps, ok := obj["dependencies"].(map[string]any); ok {
			depPtr := ptr.append("dependencies")
			for k, dv := range deps {
				if _, isArr := dv.([]any); isArr {
					continue
				}
				subschemas[depPtr.append(k)] = dv
			}
		}
	}
	for p, cv := range subschemas {
		if err := rt.crawl(loader, cv, base, p, activeFallback); err != nil {
			return err
		}
	}
	return nil
}

// resourceByID returns the resource in this root whose id equals u, if any.
func (rt *root) resourceByID(u url) *resource {
	for _, res := range rt.resources {
		if res.id == u {
			return res
		}
	}
	return nil
}

func (rt *root) collectAnchors(obj map[string]any, ptr jsonPointer, res *resource, id string, draft *Draft) error {
	add := func(a anchor) error {
		if existing, ok := res.anchors[a]; ok {
			if existing == ptr {
				return nil
			}
			return &DuplicateAnchorError{string(a), rt.url.String(), string(existing), string(ptr)}
		}
		res.anchors[a] = ptr
		return nil
	}

	if draft.version < 2019 {
		if id != "" {
			_, frag, err := splitFragment(id)
			if err != nil {
				return &ParseAnchorError{urlPtr{rt.url, ptr}.String()}
			}
			if frag != "" && !frag.isPointer() {
				if err := add(frag.asAnchor()); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if s, ok := obj["$anchor"].(string); ok {
		if err := add(anchor(s)); err != nil {
			return err
		}
	}
	if draft.version >= 2020 {
		if s, ok := obj["$dynamicAnchor"].(string); ok {
			if err := add(anchor(s)); err != nil {
				return err
			}
			res.dynamicAnchors = append(res.dynamicAnchors, anchor(s))
		}
	}
	return nil
}

// --

type ParseIDError struct{ Loc string }

func (e *ParseIDError) Error() string { return "could not parse id at " + e.Loc }

// --

type ParseAnchorError struct{ Loc string }

func (e *ParseAnchorError) Error() string { return "could not parse anchor at " + e.Loc }

// --

type DuplicateIDError struct {
	ID, URL, Ptr1, Ptr2 string
}

func (e *DuplicateIDError) Error() string {
	return "duplicate id " + e.ID + " in " + e.URL + " at " + e.Ptr1 + " and " + e.Ptr2
}

// --

type DuplicateAnchorError struct {
	Anchor, URL, Ptr1, Ptr2 string
}

func (e *DuplicateAnchorError) Error() string {
	return "duplicate anchor " + e.Anchor + " in " + e.URL + " at " + e.Ptr1 + " and " + e.Ptr2
}
