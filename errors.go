// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strings"
)

// ErrorKind is implemented by every type in the kind package: a
// specific keyword failure, carrying whatever data that keyword's
// message needs (spec §7).
type ErrorKind interface {
	KeywordPath() []string
	String() string
}

// ValidationError is one node of the validation failure tree returned
// by [Schemas.Validate] (spec §7). A leaf node names the keyword that
// failed (via Kind); a container node (Kind is *kind.Schema,
// *kind.Reference, *kind.AllOf, ...) aggregates the Causes that made
// it fail.
type ValidationError struct {
	KeywordLocation         string // e.g. "/properties/x/minLength"
	AbsoluteKeywordLocation string // e.g. "file:///schema.json#/properties/x/minLength"
	InstanceLocation        string // e.g. "/x"
	Kind                    ErrorKind
	Causes                  []*ValidationError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("jsonschema: %s: at %s: %s", e.AbsoluteKeywordLocation, e.InstanceLocation, e.Kind.String())
}

// splitLoc splits a compiled Schema.loc ("URL#" or "URL#/a/b") into
// its url and pointer-syntax fragment.
func splitLoc(loc string) (string, string) {
	i := strings.IndexByte(loc, '#')
	if i == -1 {
		return loc, ""
	}
	return loc[:i], loc[i+1:]
}

// newLeaf builds a keyword-level ValidationError: schLoc is the
// compiled Schema's own location and instPtr the instance location the
// keyword was evaluated against.
func newLeaf(schLoc string, instPtr jsonPointer, k ErrorKind) *ValidationError {
	url, frag := splitLoc(schLoc)
	suffix := ""
	if p := k.KeywordPath(); len(p) > 0 {
		suffix = "/" + strings.Join(p, "/")
	}
	return &ValidationError{
		KeywordLocation:         frag + suffix,
		AbsoluteKeywordLocation: url + "#" + frag + suffix,
		InstanceLocation:        instPtr.string(),
		Kind:                    k,
	}
}

// wrap builds a container ValidationError around causes, one per
// schema application (e.g. the set of keywords that failed at one
// schema location, or the set of allOf branches that failed).
func wrap(schLoc string, instPtr jsonPointer, k ErrorKind, causes []*ValidationError) *ValidationError {
	if len(causes) == 0 {
		return nil
	}
	e := newLeaf(schLoc, instPtr, k)
	e.Causes = causes
	return e
}
