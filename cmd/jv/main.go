// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/schemaforge/jsonschema"
	"github.com/schemaforge/jsonschema/formats"
)

type mappingFlag map[string]string

func (m mappingFlag) String() string { return "" }

func (m mappingFlag) Set(s string) error {
	prefix, dir, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("-a value must be prefix=dir, got %q", s)
	}
	m[prefix] = dir
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "jv [-draft INT] [-o flag|basic|detailed] [-a prefix=dir] <json-schema> [<json-doc>]...")
	flag.PrintDefaults()
}

func main() {
	draft := flag.Int("draft", 2020, "draft used when '$schema' is absent (4, 6, 7, 2019 or 2020)")
	output := flag.String("o", "", "error output format: flag, basic or detailed")
	assertFormat := flag.Bool("assertformat", false, "treat \"format\" as an assertion")
	assertContent := flag.Bool("assertcontent", false, "treat content* keywords as assertions")
	insecure := flag.Bool("insecure", false, "skip TLS certificate verification for https:// loads")
	cacert := flag.String("cacert", "", "CA cert bundle for https:// loads")
	mappings := make(mappingFlag)
	flag.Var(mappings, "a", "map a URL prefix to a local directory, repeatable (prefix=dir)")
	flag.Usage = usage
	flag.Parse()

	if len(flag.Args()) == 0 {
		usage()
		os.Exit(1)
	}

	loader, err := newLoader(mappings, *insecure, *cacert)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	compiler := jsonschema.NewCompiler()
	compiler.UseLoader("http", loader)
	compiler.UseLoader("https", loader)
	formats.RegisterAll(compiler)
	if *assertFormat {
		compiler.AssertFormat()
	}
	if *assertContent {
		compiler.AssertContent()
	}
	switch *draft {
	case 4:
		compiler.SetDefaultDraft(jsonschema.Draft4)
	case 6:
		compiler.SetDefaultDraft(jsonschema.Draft6)
	case 7:
		compiler.SetDefaultDraft(jsonschema.Draft7)
	case 2019:
		compiler.SetDefaultDraft(jsonschema.Draft2019)
	case 2020:
		compiler.SetDefaultDraft(jsonschema.Draft2020)
	default:
		fmt.Fprintln(os.Stderr, "draft must be one of 4, 6, 7, 2019, 2020")
		os.Exit(1)
	}

	schemas := jsonschema.NewSchemas()
	idx, err := compiler.Compile(flag.Arg(0), schemas)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	exitCode := 0
	for _, f := range flag.Args()[1:] {
		doc, err := loader.Load(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %q: %v\n", f, err)
			exitCode = 1
			continue
		}
		if err := schemas.Validate(doc, idx); err != nil {
			ve := err.(*jsonschema.ValidationError)
			printResult(f, ve, *output)
			exitCode = 1
			continue
		}
		fmt.Printf("%s: pass\n", f)
	}
	os.Exit(exitCode)
}

func printResult(doc string, ve *jsonschema.ValidationError, output string) {
	switch output {
	case "basic":
		printJSON(ve.BasicOutput())
	case "detailed":
		printJSON(ve.DetailedOutput())
	case "flag":
		printJSON(ve.FlagOutput())
	default:
		fmt.Fprintf(os.Stderr, "%s: fail\n%v\n", doc, ve)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
