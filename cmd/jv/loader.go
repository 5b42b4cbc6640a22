// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schemaforge/jsonschema"
	"gopkg.in/yaml.v3"
)

// newLoader builds the Loader used for every instance document and,
// through main's http/https registration, for http(s) schemas:
// "-a prefix=dir" mappings are tried first, then it falls through to
// the filesystem or an HTTP(S) GET. A schema named by a file path is
// read by the compiler's built-in file loader, not by this Loader.
func newLoader(mappings map[string]string, insecure bool, cacert string) (jsonschema.Loader, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	if cacert != "" {
		pem, err := os.ReadFile(cacert)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		pool.AppendCertsFromPEM(pem)
		client.Transport = &http.Transport{TLSClientConfig: &tls.Config{RootCAs: pool}}
	} else if insecure {
		client.Transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	}
	return &jvLoader{mappings: mappings, http: &httpLoader{client: client}}, nil
}

type jvLoader struct {
	mappings map[string]string
	http     *httpLoader
}

func (l *jvLoader) Load(url string) (any, error) {
	for prefix, dir := range l.mappings {
		if suffix, ok := strings.CutPrefix(url, prefix); ok {
			return loadFile(filepath.Join(dir, suffix))
		}
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return l.http.Load(url)
	}
	return loadFile(url)
}

// loadFile decodes a schema/instance document by extension: ".yaml"/
// ".yml" via yaml.v3, everything else as JSON.
func loadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if isYAMLPath(path) {
		var v any
		err := yaml.NewDecoder(f).Decode(&v)
		return v, err
	}
	return jsonschema.UnmarshalJSON(f)
}

func isYAMLPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

type httpLoader struct{ client *http.Client }

func (l *httpLoader) Load(url string) (any, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status code %d", url, resp.StatusCode)
	}
	isYAML := isYAMLPath(url)
	if !isYAML {
		ctype := resp.Header.Get("Content-Type")
		isYAML = strings.HasSuffix(ctype, "/yaml") || strings.HasSuffix(ctype, "-yaml")
	}
	if isYAML {
		var v any
		err := yaml.NewDecoder(resp.Body).Decode(&v)
		return v, err
	}
	return jsonschema.UnmarshalJSON(resp.Body)
}
