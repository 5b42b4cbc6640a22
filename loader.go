// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	gourl "net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Loader loads the JSON document at an absolute url (spec §4.1).
type Loader interface {
	Load(url string) (any, error)
}

// FileLoader is the built-in "file" scheme loader.
type FileLoader struct{}

func (FileLoader) Load(url string) (any, error) {
	path, err := fileLoaderPath(url)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return UnmarshalJSON(f)
}

func fileLoaderPath(url string) (string, error) {
	if !strings.Contains(url, "://") {
		// plain filesystem path, no scheme.
		return url, nil
	}
	u, err := gourl.Parse(url)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", &UnsupportedSchemeError{url}
	}
	path := u.Path
	if runtime.GOOS == "windows" {
		path = strings.TrimPrefix(path, "/")
		path = filepath.FromSlash(path)
	}
	return path, nil
}

// schemeLoaders delegates to a per-scheme Loader, matching the
// teacher's SchemeURLLoader. A bare path (no "scheme://") is routed to
// FileLoader, same as plain filesystem paths in the teacher's loader.
type schemeLoaders struct {
	byScheme map[string]Loader
}

func newSchemeLoaders() *schemeLoaders {
	return &schemeLoaders{byScheme: map[string]Loader{"file": FileLoader{}}}
}

func (l *schemeLoaders) register(scheme string, loader Loader) {
	l.byScheme[scheme] = loader
}

func (l *schemeLoaders) Load(url string) (any, error) {
	u, err := gourl.Parse(url)
	if err != nil || u.Scheme == "" {
		return FileLoader{}.Load(url)
	}
	loader, ok := l.byScheme[u.Scheme]
	if !ok {
		return nil, &UnsupportedSchemeError{url}
	}
	return loader.Load(url)
}

// defaultLoader caches loaded/added documents by url and short-circuits
// metaschema urls to the embedded documents in metaschemas.go, so that
// metaschemas for every supported draft are answered without calling
// the registered loader regardless of scheme (spec §4.1).
type defaultLoader struct {
	docs   map[url]any
	loader Loader
}

func (l *defaultLoader) load(u url) (any, error) {
	if doc, ok := l.docs[u]; ok {
		return doc, nil
	}
	if doc, ok := metaschemaDocs[string(u)]; ok {
		v, err := UnmarshalJSON(strings.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("bug: embedded metaschema %q: %w", u, err)
		}
		l.docs[u] = v
		return v, nil
	}
	doc, err := l.loader.Load(string(u))
	if err != nil {
		return nil, &LoadURLError{string(u), err}
	}
	l.docs[u] = doc
	return doc, nil
}

// addResource registers an in-memory document, returning false if a
// document was already registered for u.
func (l *defaultLoader) addResource(u url, doc any) bool {
	if _, ok := l.docs[u]; ok {
		return false
	}
	l.docs[u] = doc
	return true
}

// --

type LoadURLError struct {
	URL string
	Err error
}

func (e *LoadURLError) Error() string { return fmt.Sprintf("failed to load %q: %v", e.URL, e.Err) }
func (e *LoadURLError) Unwrap() error { return e.Err }

// --

type UnsupportedSchemeError struct{ URL string }

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("no loader registered for the scheme of %q", e.URL)
}

// UnmarshalJSON decodes r into an "any" tree using json.Number for
// numbers, so the compiler never loses literal precision (spec §3).
func UnmarshalJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return v, nil
}

// marshalCompact is used by error messages that need to render a
// schema/instance fragment compactly.
func marshalCompact(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
