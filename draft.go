// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// position is a bitmask of where a keyword's value carries subschemas,
// per spec §3/§4.2 ("a bitmask of subschema positions (SELF, ITEM, PROP)").
type position uint8

const (
	// posSelf: the keyword's value is itself a schema.
	posSelf position = 1 << iota
	// posItem: the keyword's value is an array of schemas.
	posItem
	// posProp: the keyword's value is an object whose values are schemas.
	posProp
)

// Draft identifies one of the supported IETF json-schema drafts.
// Grounded on the teacher's historic draft.go Draft struct, generalized
// with the keyword->position crawl table spec §4.2 requires.
type Draft struct {
	Name          string
	version       int // numeric version, comparable (4, 6, 7, 2019, 2020)
	idKeyword     string
	metaSchemaURL string
	// positions maps a keyword name to where it carries subschemas, for
	// the resource/anchor crawler (§4.2).
	positions map[string]position
	// dependenciesIsMixed is true for pre-2019 "dependencies", whose
	// per-key value is either a schema or a plain string array; the
	// crawler must special-case it instead of using the position table.
	dependenciesIsMixed bool
	// defaultVocabulary is nil pre-2019; for 2019+ it names the
	// vocabularies active when no $vocabulary is declared (§4.2).
	defaultVocabulary []string

	// metaSchemas/metaIndex cache this draft's own compiled metaschema,
	// filled once by ensureMetaCompiled (roots.go).
	metaSchemas *Schemas
	metaIndex   SchemaIndex
}

func (d *Draft) String() string { return d.Name }

// Version returns the numeric, ordered, comparable draft version.
func (d *Draft) Version() int { return d.version }

// getID returns the raw identifier keyword's string value, if present.
func (d *Draft) getID(obj map[string]any) string {
	if v, ok := obj[d.idKeyword]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

var commonPositions = map[string]position{
	"not":                   posSelf,
	"allOf":                 posItem,
	"anyOf":                 posItem,
	"oneOf":                 posItem,
	"properties":            posProp,
	"patternProperties":     posProp,
	"additionalProperties":  posSelf,
	"propertyNames":         posSelf,
}

func clonePositions(base map[string]position, extra map[string]position) map[string]position {
	m := make(map[string]position, len(base)+len(extra))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// Supported drafts.
var (
	Draft4 = &Draft{
		Name:          "4",
		version:       4,
		idKeyword:     "id",
		metaSchemaURL: "http://json-schema.org/draft-04/schema",
		positions: clonePositions(commonPositions, map[string]position{
			"definitions":     posProp,
			"items":           posSelf | posItem,
			"additionalItems": posSelf,
		}),
		dependenciesIsMixed: true,
	}
	Draft6 = &Draft{
		Name:          "6",
		version:       6,
		idKeyword:     "$id",
		metaSchemaURL: "http://json-schema.org/draft-06/schema",
		positions: clonePositions(commonPositions, map[string]position{
			"definitions":     posProp,
			"items":           posSelf | posItem,
			"additionalItems": posSelf,
			"contains":        posSelf,
		}),
		dependenciesIsMixed: true,
	}
	Draft7 = &Draft{
		Name:          "7",
		version:       7,
		idKeyword:     "$id",
		metaSchemaURL: "http://json-schema.org/draft-07/schema",
		positions: clonePositions(commonPositions, map[string]position{
			"definitions":      posProp,
			"items":            posSelf | posItem,
			"additionalItems":  posSelf,
			"contains":         posSelf,
			"if":               posSelf,
			"then":             posSelf,
			"else":             posSelf,
			"contentSchema":    posSelf,
		}),
		dependenciesIsMixed: true,
	}
	Draft2019 = &Draft{
		Name:          "2019-09",
		version:       2019,
		idKeyword:     "$id",
		metaSchemaURL: "https://json-schema.org/draft/2019-09/schema",
		positions: clonePositions(commonPositions, map[string]position{
			"$defs":                posProp,
			"definitions":          posProp,
			"items":                posSelf | posItem,
			"additionalItems":      posSelf,
			"contains":             posSelf,
			"if":                   posSelf,
			"then":                 posSelf,
			"else":                 posSelf,
			"contentSchema":        posSelf,
			"dependentSchemas":     posProp,
			"unevaluatedProperties": posSelf,
			"unevaluatedItems":     posSelf,
		}),
		defaultVocabulary: []string{
			"https://json-schema.org/draft/2019-09/vocab/core",
			"https://json-schema.org/draft/2019-09/vocab/applicator",
			"https://json-schema.org/draft/2019-09/vocab/validation",
			"https://json-schema.org/draft/2019-09/vocab/meta-data",
			"https://json-schema.org/draft/2019-09/vocab/format",
			"https://json-schema.org/draft/2019-09/vocab/content",
		},
	}
	Draft2020 = &Draft{
		Name:          "2020-12",
		version:       2020,
		idKeyword:     "$id",
		metaSchemaURL: "https://json-schema.org/draft/2020-12/schema",
		positions: clonePositions(commonPositions, map[string]position{
			"$defs":                posProp,
			"definitions":          posProp,
			"prefixItems":          posItem,
			"items":                posSelf,
			"contains":             posSelf,
			"if":                   posSelf,
			"then":                 posSelf,
			"else":                 posSelf,
			"contentSchema":        posSelf,
			"dependentSchemas":     posProp,
			"unevaluatedProperties": posSelf,
			"unevaluatedItems":     posSelf,
		}),
		defaultVocabulary: []string{
			"https://json-schema.org/draft/2020-12/vocab/core",
			"https://json-schema.org/draft/2020-12/vocab/applicator",
			"https://json-schema.org/draft/2020-12/vocab/unevaluated",
			"https://json-schema.org/draft/2020-12/vocab/validation",
			"https://json-schema.org/draft/2020-12/vocab/meta-data",
			"https://json-schema.org/draft/2020-12/vocab/format-annotation",
			"https://json-schema.org/draft/2020-12/vocab/content",
		},
	}

	drafts = []*Draft{Draft4, Draft6, Draft7, Draft2019, Draft2020}

	// draftLatest is used when a root has no $schema and the compiler
	// has not been told otherwise (spec §4.2 draft inference).
	draftLatest = Draft2020
)

// draftFromSchemaURL returns the Draft whose metaschema URL matches u
// (scheme-insensitively, ignoring a trailing '#'), if any.
func draftFromSchemaURL(u string) (*Draft, bool) {
	nu := string(normalizeURL(u))
	for _, d := range drafts {
		if string(normalizeURL(d.metaSchemaURL)) == nu {
			return d, true
		}
	}
	return nil, false
}
