// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package jsonschema implements compilation and validation against
IETF JSON Schema drafts 4, 6, 7, 2019-09 and 2020-12.

A schema is compiled once against a [Schemas] collection and the
returned [SchemaIndex] is then used to validate any number of JSON
values:

	c := jsonschema.NewCompiler()
	schemas := jsonschema.NewSchemas()
	idx, err := c.Compile("schemas/purchaseOrder.json", schemas)
	if err != nil {
		return err
	}
	if err := schemas.Validate(doc, idx); err != nil {
		return err
	}

This package loads schemas from the file system by default. To load
from HTTP(S), register the loader subpackage:

	import "github.com/schemaforge/jsonschema/httploader"
	// ...
	c.UseLoader("http", httploader.Loader{})
	c.UseLoader("https", httploader.Loader{})

Schemas can also be added in-memory:

	c := jsonschema.NewCompiler()
	schemas := jsonschema.NewSchemas()
	doc, _ := jsonschema.UnmarshalJSON(strings.NewReader(`{"type": "string"}`))
	if _, err := c.AddResource("sch.json", doc); err != nil {
		return err
	}
	idx, err := c.Compile("sch.json", schemas)

String formats (date-time, hostname, email, ipv4, ipv6, uri, regex and
others) are registered through [Compiler.RegisterFormat]; the
[github.com/schemaforge/jsonschema/formats] subpackage provides
ready-to-use implementations.

A [ValidationError] returned by [Schemas.Validate] is a tree of causes;
use [ValidationError.FlagOutput], [ValidationError.BasicOutput] or
[ValidationError.DetailedOutput] to render one of the three standard
output formats.
*/
package jsonschema
