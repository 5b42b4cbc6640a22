// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// Metaschema documents for every supported draft (and, for 2019+,
// their vocabulary sub-documents) are embedded here and answered by
// the loader without ever reaching a registered scheme loader,
// regardless of scheme (spec §4.1).
//
// These are deliberately condensed relative to the documents
// published at json-schema.org: they describe every keyword this
// package lowers, which is enough to metaschema-validate a schema
// document per §4.2, without reproducing the full prose-heavy
// official text.
var metaschemaDocs = map[string]string{
	"http://json-schema.org/draft-04/schema": draft4Meta,
	"http://json-schema.org/draft-06/schema": draft6Meta,
	"http://json-schema.org/draft-07/schema": draft7Meta,

	"https://json-schema.org/draft/2019-09/schema":              draft2019Meta,
	"https://json-schema.org/draft/2019-09/meta/core":           draft2019Core,
	"https://json-schema.org/draft/2019-09/meta/applicator":     draft2019Applicator,
	"https://json-schema.org/draft/2019-09/meta/validation":     draft2019Validation,
	"https://json-schema.org/draft/2019-09/meta/meta-data":      draft2019MetaData,
	"https://json-schema.org/draft/2019-09/meta/format":         draft2019Format,
	"https://json-schema.org/draft/2019-09/meta/content":        draft2019Content,

	"https://json-schema.org/draft/2020-12/schema":                  draft2020Meta,
	"https://json-schema.org/draft/2020-12/meta/core":                draft2020Core,
	"https://json-schema.org/draft/2020-12/meta/applicator":          draft2020Applicator,
	"https://json-schema.org/draft/2020-12/meta/unevaluated":         draft2020Unevaluated,
	"https://json-schema.org/draft/2020-12/meta/validation":          draft2020Validation,
	"https://json-schema.org/draft/2020-12/meta/meta-data":           draft2020MetaData,
	"https://json-schema.org/draft/2020-12/meta/format-annotation":   draft2020FormatAnnotation,
	"https://json-schema.org/draft/2020-12/meta/content":             draft2020Content,
}

const draft4Meta = `{
	"id": "http://json-schema.org/draft-04/schema#",
	"$schema": "http://json-schema.org/draft-04/schema#",
	"description": "Core schema meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"id": { "type": "string" },
		"$schema": { "type": "string" },
		"title": { "type": "string" },
		"description": { "type": "string" },
		"multipleOf": { "type": "number", "minimum": 0, "exclusiveMinimum": true },
		"maximum": { "type": "number" },
		"exclusiveMaximum": { "type": "boolean", "default": false },
		"minimum": { "type": "number" },
		"exclusiveMinimum": { "type": "boolean", "default": false },
		"maxLength": { "type": "integer", "minimum": 0 },
		"minLength": { "type": "integer", "minimum": 0 },
		"pattern": { "type": "string", "format": "regex" },
		"additionalItems": {},
		"items": {},
		"maxItems": { "type": "integer", "minimum": 0 },
		"minItems": { "type": "integer", "minimum": 0 },
		"uniqueItems": { "type": "boolean", "default": false },
		"maxProperties": { "type": "integer", "minimum": 0 },
		"minProperties": { "type": "integer", "minimum": 0 },
		"required": { "type": "array", "items": { "type": "string" }, "minItems": 1, "uniqueItems": true },
		"additionalProperties": {},
		"definitions": { "type": "object" },
		"properties": { "type": "object" },
		"patternProperties": { "type": "object" },
		"dependencies": { "type": "object" },
		"enum": { "type": "array", "minItems": 1, "uniqueItems": true },
		"type": {},
		"allOf": { "type": "array", "items": {}, "minItems": 1 },
		"anyOf": { "type": "array", "items": {}, "minItems": 1 },
		"oneOf": { "type": "array", "items": {}, "minItems": 1 },
		"not": {},
		"format": { "type": "string" },
		"$ref": { "type": "string" }
	},
	"default": {}
}`

const draft6Meta = `{
	"$id": "http://json-schema.org/draft-06/schema#",
	"$schema": "http://json-schema.org/draft-06/schema#",
	"title": "Core schema meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"$id": { "type": "string" },
		"$schema": { "type": "string" },
		"$ref": { "type": "string" },
		"title": { "type": "string" },
		"description": { "type": "string" },
		"multipleOf": { "type": "number", "exclusiveMinimum": 0 },
		"maximum": { "type": "number" },
		"exclusiveMaximum": { "type": "number" },
		"minimum": { "type": "number" },
		"exclusiveMinimum": { "type": "number" },
		"maxLength": { "type": "integer", "minimum": 0 },
		"minLength": { "type": "integer", "minimum": 0 },
		"pattern": { "type": "string", "format": "regex" },
		"additionalItems": {},
		"items": {},
		"maxItems": { "type": "integer", "minimum": 0 },
		"minItems": { "type": "integer", "minimum": 0 },
		"uniqueItems": { "type": "boolean", "default": false },
		"contains": {},
		"maxProperties": { "type": "integer", "minimum": 0 },
		"minProperties": { "type": "integer", "minimum": 0 },
		"required": { "type": "array", "items": { "type": "string" }, "uniqueItems": true },
		"additionalProperties": {},
		"definitions": { "type": "object" },
		"properties": { "type": "object" },
		"patternProperties": { "type": "object" },
		"dependencies": { "type": "object" },
		"propertyNames": {},
		"const": {},
		"enum": { "type": "array", "minItems": 1, "uniqueItems": true },
		"type": {},
		"allOf": { "type": "array", "items": {}, "minItems": 1 },
		"anyOf": { "type": "array", "items": {}, "minItems": 1 },
		"oneOf": { "type": "array", "items": {}, "minItems": 1 },
		"not": {},
		"format": { "type": "string" }
	},
	"default": {}
}`

const draft7Meta = `{
	"$id": "http://json-schema.org/draft-07/schema#",
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Core schema meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"$id": { "type": "string" },
		"$schema": { "type": "string" },
		"$ref": { "type": "string" },
		"$comment": { "type": "string" },
		"title": { "type": "string" },
		"description": { "type": "string" },
		"multipleOf": { "type": "number", "exclusiveMinimum": 0 },
		"maximum": { "type": "number" },
		"exclusiveMaximum": { "type": "number" },
		"minimum": { "type": "number" },
		"exclusiveMinimum": { "type": "number" },
		"maxLength": { "type": "integer", "minimum": 0 },
		"minLength": { "type": "integer", "minimum": 0 },
		"pattern": { "type": "string", "format": "regex" },
		"additionalItems": {},
		"items": {},
		"maxItems": { "type": "integer", "minimum": 0 },
		"minItems": { "type": "integer", "minimum": 0 },
		"uniqueItems": { "type": "boolean", "default": false },
		"contains": {},
		"maxProperties": { "type": "integer", "minimum": 0 },
		"minProperties": { "type": "integer", "minimum": 0 },
		"required": { "type": "array", "items": { "type": "string" }, "uniqueItems": true },
		"additionalProperties": {},
		"definitions": { "type": "object" },
		"properties": { "type": "object" },
		"patternProperties": { "type": "object" },
		"dependencies": { "type": "object" },
		"propertyNames": {},
		"const": {},
		"enum": { "type": "array", "minItems": 1, "uniqueItems": true },
		"type": {},
		"format": { "type": "string" },
		"contentMediaType": { "type": "string" },
		"contentEncoding": { "type": "string" },
		"if": {},
		"then": {},
		"else": {},
		"allOf": { "type": "array", "items": {}, "minItems": 1 },
		"anyOf": { "type": "array", "items": {}, "minItems": 1 },
		"oneOf": { "type": "array", "items": {}, "minItems": 1 },
		"not": {}
	},
	"default": true
}`

const draft2019Meta = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/schema",
	"$vocabulary": {
		"https://json-schema.org/draft/2019-09/vocab/core": true,
		"https://json-schema.org/draft/2019-09/vocab/applicator": true,
		"https://json-schema.org/draft/2019-09/vocab/validation": true,
		"https://json-schema.org/draft/2019-09/vocab/meta-data": true,
		"https://json-schema.org/draft/2019-09/vocab/format": false,
		"https://json-schema.org/draft/2019-09/vocab/content": true
	},
	"$recursiveAnchor": true,
	"title": "Core and Validation specifications meta-schema",
	"allOf": [
		{ "$ref": "meta/core" },
		{ "$ref": "meta/applicator" },
		{ "$ref": "meta/validation" },
		{ "$ref": "meta/meta-data" },
		{ "$ref": "meta/format" },
		{ "$ref": "meta/content" }
	],
	"type": ["object", "boolean"]
}`

const draft2019Core = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/core",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/core": true },
	"$recursiveAnchor": true,
	"title": "Core vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"$id": { "type": "string" },
		"$schema": { "type": "string" },
		"$anchor": { "type": "string" },
		"$ref": { "type": "string" },
		"$recursiveRef": { "type": "string" },
		"$recursiveAnchor": { "type": "boolean", "default": false },
		"$vocabulary": { "type": "object" },
		"$comment": { "type": "string" },
		"$defs": { "type": "object" }
	}
}`

const draft2019Applicator = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/applicator",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/applicator": true },
	"$recursiveAnchor": true,
	"title": "Applicator vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"additionalItems": {},
		"unevaluatedItems": {},
		"items": {},
		"contains": {},
		"additionalProperties": {},
		"unevaluatedProperties": {},
		"properties": { "type": "object" },
		"patternProperties": { "type": "object" },
		"dependentSchemas": { "type": "object" },
		"propertyNames": {},
		"if": {},
		"then": {},
		"else": {},
		"allOf": { "type": "array", "items": {}, "minItems": 1 },
		"anyOf": { "type": "array", "items": {}, "minItems": 1 },
		"oneOf": { "type": "array", "items": {}, "minItems": 1 },
		"not": {}
	}
}`

const draft2019Validation = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/validation",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/validation": true },
	"$recursiveAnchor": true,
	"title": "Validation vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"multipleOf": { "type": "number", "exclusiveMinimum": 0 },
		"maximum": { "type": "number" },
		"exclusiveMaximum": { "type": "number" },
		"minimum": { "type": "number" },
		"exclusiveMinimum": { "type": "number" },
		"maxLength": { "type": "integer", "minimum": 0 },
		"minLength": { "type": "integer", "minimum": 0 },
		"pattern": { "type": "string", "format": "regex" },
		"maxItems": { "type": "integer", "minimum": 0 },
		"minItems": { "type": "integer", "minimum": 0 },
		"uniqueItems": { "type": "boolean", "default": false },
		"maxContains": { "type": "integer", "minimum": 0 },
		"minContains": { "type": "integer", "minimum": 0 },
		"maxProperties": { "type": "integer", "minimum": 0 },
		"minProperties": { "type": "integer", "minimum": 0 },
		"required": { "type": "array", "items": { "type": "string" }, "uniqueItems": true },
		"dependentRequired": { "type": "object" },
		"const": {},
		"enum": { "type": "array", "minItems": 1, "uniqueItems": true },
		"type": {}
	}
}`

const draft2019MetaData = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/meta-data",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/meta-data": true },
	"$recursiveAnchor": true,
	"title": "Meta-data vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"title": { "type": "string" },
		"description": { "type": "string" },
		"default": {},
		"deprecated": { "type": "boolean", "default": false },
		"readOnly": { "type": "boolean", "default": false },
		"writeOnly": { "type": "boolean", "default": false },
		"examples": { "type": "array" }
	}
}`

const draft2019Format = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/format",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/format": true },
	"$recursiveAnchor": true,
	"title": "Format vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": { "format": { "type": "string" } }
}`

const draft2019Content = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://json-schema.org/draft/2019-09/meta/content",
	"$vocabulary": { "https://json-schema.org/draft/2019-09/vocab/content": true },
	"$recursiveAnchor": true,
	"title": "Content vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"contentMediaType": { "type": "string" },
		"contentEncoding": { "type": "string" },
		"contentSchema": {}
	}
}`

const draft2020Meta = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/schema",
	"$vocabulary": {
		"https://json-schema.org/draft/2020-12/vocab/core": true,
		"https://json-schema.org/draft/2020-12/vocab/applicator": true,
		"https://json-schema.org/draft/2020-12/vocab/unevaluated": true,
		"https://json-schema.org/draft/2020-12/vocab/validation": true,
		"https://json-schema.org/draft/2020-12/vocab/meta-data": true,
		"https://json-schema.org/draft/2020-12/vocab/format-annotation": true,
		"https://json-schema.org/draft/2020-12/vocab/content": true
	},
	"$dynamicAnchor": "meta",
	"title": "Core and Validation specifications meta-schema",
	"allOf": [
		{ "$ref": "meta/core" },
		{ "$ref": "meta/applicator" },
		{ "$ref": "meta/unevaluated" },
		{ "$ref": "meta/validation" },
		{ "$ref": "meta/meta-data" },
		{ "$ref": "meta/format-annotation" },
		{ "$ref": "meta/content" }
	],
	"type": ["object", "boolean"]
}`

const draft2020Core = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/core",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/core": true },
	"$dynamicAnchor": "meta",
	"title": "Core vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"$id": { "type": "string", "pattern": "^[^#]*#?$" },
		"$schema": { "type": "string" },
		"$ref": { "type": "string" },
		"$anchor": { "type": "string", "pattern": "^[A-Za-z_][-A-Za-z0-9._]*$" },
		"$dynamicRef": { "type": "string" },
		"$dynamicAnchor": { "type": "string", "pattern": "^[A-Za-z_][-A-Za-z0-9._]*$" },
		"$vocabulary": { "type": "object" },
		"$comment": { "type": "string" },
		"$defs": { "type": "object" }
	}
}`

const draft2020Applicator = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/applicator",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/applicator": true },
	"$dynamicAnchor": "meta",
	"title": "Applicator vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"prefixItems": { "type": "array", "items": {} },
		"items": {},
		"contains": {},
		"additionalProperties": {},
		"properties": { "type": "object" },
		"patternProperties": { "type": "object" },
		"dependentSchemas": { "type": "object" },
		"propertyNames": {},
		"if": {},
		"then": {},
		"else": {},
		"allOf": { "type": "array", "items": {}, "minItems": 1 },
		"anyOf": { "type": "array", "items": {}, "minItems": 1 },
		"oneOf": { "type": "array", "items": {}, "minItems": 1 },
		"not": {}
	}
}`

const draft2020Unevaluated = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/unevaluated",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/unevaluated": true },
	"$dynamicAnchor": "meta",
	"title": "Unevaluated applicator vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"unevaluatedItems": {},
		"unevaluatedProperties": {}
	}
}`

const draft2020Validation = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/validation",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/validation": true },
	"$dynamicAnchor": "meta",
	"title": "Validation vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"multipleOf": { "type": "number", "exclusiveMinimum": 0 },
		"maximum": { "type": "number" },
		"exclusiveMaximum": { "type": "number" },
		"minimum": { "type": "number" },
		"exclusiveMinimum": { "type": "number" },
		"maxLength": { "type": "integer", "minimum": 0 },
		"minLength": { "type": "integer", "minimum": 0 },
		"pattern": { "type": "string", "format": "regex" },
		"maxItems": { "type": "integer", "minimum": 0 },
		"minItems": { "type": "integer", "minimum": 0 },
		"uniqueItems": { "type": "boolean", "default": false },
		"maxContains": { "type": "integer", "minimum": 0 },
		"minContains": { "type": "integer", "minimum": 0 },
		"maxProperties": { "type": "integer", "minimum": 0 },
		"minProperties": { "type": "integer", "minimum": 0 },
		"required": { "type": "array", "items": { "type": "string" }, "uniqueItems": true },
		"dependentRequired": { "type": "object" },
		"const": {},
		"enum": { "type": "array", "minItems": 1, "uniqueItems": true },
		"type": {}
	}
}`

const draft2020MetaData = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/meta-data",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/meta-data": true },
	"$dynamicAnchor": "meta",
	"title": "Meta-data vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"title": { "type": "string" },
		"description": { "type": "string" },
		"default": {},
		"deprecated": { "type": "boolean", "default": false },
		"readOnly": { "type": "boolean", "default": false },
		"writeOnly": { "type": "boolean", "default": false },
		"examples": { "type": "array" }
	}
}`

const draft2020FormatAnnotation = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/format-annotation",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/format-annotation": true },
	"$dynamicAnchor": "meta",
	"title": "Format vocabulary meta-schema for annotation results",
	"type": ["object", "boolean"],
	"properties": { "format": { "type": "string" } }
}`

const draft2020Content = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://json-schema.org/draft/2020-12/meta/content",
	"$vocabulary": { "https://json-schema.org/draft/2020-12/vocab/content": true },
	"$dynamicAnchor": "meta",
	"title": "Content vocabulary meta-schema",
	"type": ["object", "boolean"],
	"properties": {
		"contentEncoding": { "type": "string" },
		"contentMediaType": { "type": "string" },
		"contentSchema": {}
	}
}`
