// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strings"
	"sync"
)

// roots is the de-duplicated Root registry (spec §3/§4.2): it loads and
// metaschema-validates documents, and is where draft inference with
// metaschema-cycle detection happens.
type roots struct {
	defaultDraft *Draft
	docs         map[url]*root
	loader       defaultLoader
	schemes      *schemeLoaders
}

func newRoots() *roots {
	sl := newSchemeLoaders()
	return &roots{
		defaultDraft: draftLatest,
		docs:         map[url]*root{},
		loader:       defaultLoader{docs: map[url]any{}, loader: sl},
		schemes:      sl,
	}
}

func (rr *roots) orLoad(u url) (*root, error) {
	if rt, ok := rr.docs[u]; ok {
		return rt, nil
	}
	doc, err := rr.loader.load(u)
	if err != nil {
		return nil, err
	}
	return rr.addRoot(u, doc)
}

// addResource registers an in-memory document as a root, returning
// false if u was already registered (spec §6 AddResource).
func (rr *roots) addResource(u url, doc any) (bool, error) {
	if !rr.loader.addResource(u, doc) {
		return false, nil
	}
	if _, err := rr.addRoot(u, doc); err != nil {
		delete(rr.loader.docs, u)
		return false, err
	}
	return true, nil
}

func (rr *roots) addRoot(u url, doc any) (*root, error) {
	rt := &root{
		url:       u,
		doc:       doc,
		draft:     rr.defaultDraft,
		resources: map[jsonPointer]*resource{},
		crawled:   map[jsonPointer]struct{}{},
	}
	fallback := &resource{draft: rr.defaultDraft}
	if rr.defaultDraft.version >= 2019 {
		fallback.vocabularies = copyDefaultVocab(rr.defaultDraft)
	}
	if err := rt.crawl(&rr.loader, doc, u, "", fallback); err != nil {
		return nil, err
	}
	rt.draft = rt.rootResource().draft

	if !isJSONSchemaOrgURL(u) {
		if err := rr.validateAgainstMetaschema(rt, doc, ""); err != nil {
			return nil, err
		}
	}

	rr.docs[u] = rt
	return rt, nil
}

func (rr *roots) resolveFragment(uf urlFrag) (urlPtr, error) {
	rt, err := rr.orLoad(uf.url)
	if err != nil {
		return urlPtr{}, err
	}
	return rt.resolveFragment(uf.frag)
}

// resolveRef resolves a $ref/$recursiveRef/$dynamicRef target (spec
// §4.3): uf may name a resource nested inside an already-loaded root
// (checked first, since that root must not be reloaded as a fresh
// document), or an entirely separate document (loaded on demand).
func (rr *roots) resolveRef(uf urlFrag) (*root, urlPtr, error) {
	for _, rt := range rr.docs {
		up, err := rt.resolve(uf)
		if err != nil {
			return nil, urlPtr{}, err
		}
		if up != nil {
			return rt, *up, nil
		}
	}
	rt, err := rr.orLoad(uf.url)
	if err != nil {
		return nil, urlPtr{}, err
	}
	up, err := rt.resolveFragment(uf.frag)
	if err != nil {
		return nil, urlPtr{}, err
	}
	return rt, up, nil
}

func (rr *roots) validateAgainstMetaschema(rt *root, v any, ptr jsonPointer) error {
	draft := rt.resourceFor(ptr).draft
	ensureMetaCompiled()
	if err := draft.metaSchemas.Validate(v, draft.metaIndex); err != nil {
		up := urlPtr{rt.url, ptr}
		return &MetaSchemaValidationFailedError{URL: up.String(), Inner: err}
	}
	return nil
}

func isJSONSchemaOrgURL(u url) bool {
	s := string(u)
	return strings.HasPrefix(s, "http://json-schema.org/") || strings.HasPrefix(s, "https://json-schema.org/")
}

// --

// resolveDraft implements spec §4.2 draft inference: a known metaschema
// URL resolves directly; an unknown one is fetched as a root and that
// nested root's own draft becomes the answer, with cycle detection.
func (l *defaultLoader) resolveDraft(schemaURL string, visiting map[url]struct{}) (*Draft, error) {
	if d, ok := draftFromSchemaURL(schemaURL); ok {
		return d, nil
	}
	u := normalizeURL(schemaURL)
	if _, ok := visiting[u]; ok {
		return nil, &MetaSchemaCycleError{schemaURL}
	}
	visiting[u] = struct{}{}

	doc, err := l.load(u)
	if err != nil {
		return nil, &InvalidMetaSchemaURLError{schemaURL, err}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &UnsupportedDraftError{schemaURL}
	}
	nested, ok := obj["$schema"].(string)
	if !ok {
		return nil, &UnsupportedDraftError{schemaURL}
	}
	return l.resolveDraft(nested, visiting)
}

// knownVocabularies is the set of vocabulary URLs this package
// understands (spec §4.2 $vocabulary).
var knownVocabularies = func() map[string]bool {
	m := map[string]bool{}
	for _, d := range []*Draft{Draft2019, Draft2020} {
		for _, v := range d.defaultVocabulary {
			m[v] = true
		}
	}
	m["https://json-schema.org/draft/2019-09/vocab/format"] = true
	return m
}()

func copyDefaultVocab(d *Draft) map[string]bool {
	m := make(map[string]bool, len(d.defaultVocabulary))
	for _, v := range d.defaultVocabulary {
		m[v] = true
	}
	return m
}

// resolveVocabularies implements spec §4.2: the $vocabulary map of the
// metaschema named by obj's own $schema (when present) determines the
// active vocabulary set for the root using this metaschema.
func (l *defaultLoader) resolveVocabularies(draft *Draft, obj map[string]any) (map[string]bool, error) {
	su, ok := obj["$schema"].(string)
	if !ok {
		return copyDefaultVocab(draft), nil
	}
	if _, ok := draftFromSchemaURL(su); ok {
		return copyDefaultVocab(draft), nil
	}
	doc, err := l.load(normalizeURL(su))
	if err != nil {
		return nil, &InvalidMetaSchemaURLError{su, err}
	}
	metaObj, ok := doc.(map[string]any)
	if !ok {
		return copyDefaultVocab(draft), nil
	}
	vocabRaw, ok := metaObj["$vocabulary"].(map[string]any)
	if !ok {
		return copyDefaultVocab(draft), nil
	}
	result := map[string]bool{}
	for vu, req := range vocabRaw {
		required, _ := req.(bool)
		if !knownVocabularies[vu] {
			if required {
				return nil, &UnsupportedVocabularyError{URL: su, Vocabulary: vu}
			}
			continue
		}
		result[vu] = true
	}
	return result, nil
}

// --

var (
	metaOnce sync.Once
	metaErr  error
)

// ensureMetaCompiled lazily compiles every draft's own metaschema using
// a dedicated bootstrap Compiler/Schemas pair, caching the result on
// the Draft itself. Metaschema documents are json-schema.org URLs, so
// addRoot never recurses into validateAgainstMetaschema for them.
func ensureMetaCompiled() {
	metaOnce.Do(func() {
		for _, d := range drafts {
			c := NewCompiler()
			schemas := NewSchemas()
			idx, err := c.Compile(d.metaSchemaURL, schemas)
			if err != nil {
				metaErr = fmt.Errorf("bug: compiling metaschema %q: %w", d.metaSchemaURL, err)
				return
			}
			d.metaSchemas = schemas
			d.metaIndex = idx
		}
	})
	if metaErr != nil {
		panic(metaErr)
	}
}

// --

type InvalidMetaSchemaURLError struct {
	URL string
	Err error
}

func (e *InvalidMetaSchemaURLError) Error() string {
	return fmt.Sprintf("invalid $schema %q: %v", e.URL, e.Err)
}
func (e *InvalidMetaSchemaURLError) Unwrap() error { return e.Err }

// --

type UnsupportedDraftError struct{ URL string }

func (e *UnsupportedDraftError) Error() string { return fmt.Sprintf("unsupported draft %q", e.URL) }

// --

type MetaSchemaCycleError struct{ URL string }

func (e *MetaSchemaCycleError) Error() string {
	return fmt.Sprintf("cycle while resolving $schema %q", e.URL)
}

// --

type MetaSchemaValidationFailedError struct {
	URL   string
	Inner error
}

func (e *MetaSchemaValidationFailedError) Error() string {
	return fmt.Sprintf("%q does not validate against its metaschema: %v", e.URL, e.Inner)
}
func (e *MetaSchemaValidationFailedError) Unwrap() error { return e.Inner }

// --

type UnsupportedVocabularyError struct {
	URL        string
	Vocabulary string
}

func (e *UnsupportedVocabularyError) Error() string {
	return fmt.Sprintf("unsupported vocabulary %q required by %q", e.Vocabulary, e.URL)
}
