// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httploader implements [jsonschema.Loader] for the "http" and
// "https" schemes.
//
//	c := jsonschema.NewCompiler()
//	c.UseLoader("http", httploader.Loader{})
//	c.UseLoader("https", httploader.Loader{})
package httploader

import (
	"fmt"
	"net/http"

	"github.com/schemaforge/jsonschema"
)

// Loader fetches a schema/resource document over HTTP(S) and decodes
// it as JSON. The zero value uses http.DefaultClient.
type Loader struct {
	Client *http.Client
}

func (l Loader) httpClient() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

func (l Loader) Load(url string) (any, error) {
	resp, err := l.httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status code %d", url, resp.StatusCode)
	}
	return jsonschema.UnmarshalJSON(resp.Body)
}
