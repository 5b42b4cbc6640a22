// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "strings"

// root is one loaded document (spec §3 "Root"). Resources and anchors
// are discovered once, at creation, and never mutated afterwards.
type root struct {
	url       url
	doc       any
	draft     *Draft
	resources map[jsonPointer]*resource
	crawled   map[jsonPointer]struct{}
}

func (rt *root) rootResource() *resource {
	res, ok := rt.resources[""]
	if !ok {
		panic(&BugError{"root resource missing for " + rt.url.String()})
	}
	return res
}

// resourceFor returns the resource enclosing ptr: the nearest resource
// at ptr or an ancestor pointer.
func (rt *root) resourceFor(ptr jsonPointer) *resource {
	for {
		if res, ok := rt.resources[ptr]; ok {
			return res
		}
		s := string(ptr)
		i := strings.LastIndexByte(s, '/')
		if i == -1 {
			return rt.rootResource()
		}
		ptr = jsonPointer(s[:i])
	}
}

// resolveFragmentIn resolves frag (pointer or anchor) against res.
func (rt *root) resolveFragmentIn(frag fragment, res *resource) (urlPtr, error) {
	if frag == "" || frag.isPointer() {
		p, err := frag.asPointer()
		if err != nil {
			return urlPtr{}, &InvalidJSONPointerError{string(frag)}
		}
		return urlPtr{rt.url, res.ptr.concat(p)}, nil
	}
	ptr, ok := res.anchors[frag.asAnchor()]
	if !ok {
		return urlPtr{}, &AnchorNotFoundError{
			URL:       rt.url.String(),
			Reference: urlFrag{res.id, frag}.String(),
		}
	}
	return urlPtr{rt.url, ptr}, nil
}

func (rt *root) resolveFragment(frag fragment) (urlPtr, error) {
	return rt.resolveFragmentIn(frag, rt.rootResource())
}

// resolve resolves uf to a urlPtr inside this root, or returns nil if
// uf.url names neither this root nor any resource within it (the
// reference is external, per spec §4.3 step 2/3).
func (rt *root) resolve(uf urlFrag) (*urlPtr, error) {
	var res *resource
	if uf.url == rt.url {
		res = rt.rootResource()
	} else {
		res = rt.resourceByID(uf.url)
		if res == nil {
			return nil, nil
		}
	}
	up, err := rt.resolveFragmentIn(uf.frag, res)
	return &up, err
}

// --

type BugError struct{ Msg string }

func (e *BugError) Error() string { return "bug: " + e.Msg }
