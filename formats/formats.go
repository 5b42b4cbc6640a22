// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formats

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/schemaforge/jsonschema"
)

type Format func(string) bool

var formats = map[string]Format{
	"date-time":              IsDateTime,
	"date":                   IsDate,
	"time":                   IsTime,
	"hostname":               IsHostname,
	"email":                  IsEmail,
	"ip-address":             IsIPV4,
	"ipv4":                   IsIPV4,
	"ipv6":                   IsIPV6,
	"uri":                    IsURI,
	"uriref":                 IsURIRef,
	"uri-reference":          IsURIRef,
	"uri-template":           IsURITemplate,
	"json-pointer":           IsJSONPointer,
	"relative-json-pointer":  IsRelativeJSONPointer,
	"regex":                  IsRegex,
}

func init() {
	formats["format"] = IsFormat
}

func Register(name string, f Format) {
	formats[name] = f
}

func Get(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// RegisterAll wires every format in this package's table into c via
// [jsonschema.Compiler.RegisterFormat], adapting each string-only
// Format into the core package's FormatFunc.
func RegisterAll(c *jsonschema.Compiler) {
	for name, f := range formats {
		if name == "format" {
			continue
		}
		c.RegisterFormat(name, adapt(f))
	}
}

func adapt(f Format) jsonschema.FormatFunc {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if !f(s) {
			return fmt.Errorf("value does not match format")
		}
		return nil
	}
}

func IsDateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	return false
}

// https://en.wikipedia.org/wiki/Hostname#Restrictions_on_valid_host_names
func IsHostname(s string) bool {
	// entire hostname (including the delimiting dots but not a trailing dot) has a maximum of 253 ASCII characters
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}

	// Hostnames are composed of series of labels concatenated with dots, as are all domain names
	for _, label := range strings.Split(s, ".") {
		// Each label must be from 1 to 63 characters long
		if labelLen := len(label); labelLen < 1 || labelLen > 63 {
			return false
		}

		// labels could not start with a digit or with a hyphen
		if first := label[0]; (first >= '0' && first <= '9') || (first == '-') {
			return false
		}

		// must not end with a hyphen
		if label[len(label)-1] == '-' {
			return false
		}

		// labels may contain only the ASCII letters 'a' through 'z' (in a case-insensitive manner),
		// the digits '0' through '9', and the hyphen ('-')
		for _, c := range label {
			if valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || (c == '-'); !valid {
				return false
			}
		}
	}

	return true
}

// https://en.wikipedia.org/wiki/Email_address
func IsEmail(s string) bool {
	// entire email address to be no more than 254 characters long
	if len(s) > 254 {
		return false
	}

	// email address is generally recognized as having two parts joined with an at-sign
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local := s[0:at]
	domain := s[at+1:]

	// local part may be up to 64 characters long
	if len(local) > 64 {
		return false
	}

	// domain may have a maximum of 255 characters[
	if len(domain) > 255 {
		return false
	}

	// domain must match the requirements for a hostname
	if !IsHostname(domain) {
		return false
	}

	//todo: some validations yet to be implemented

	return true
}

func IsIPV4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil {
			return false
		}
		if n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func IsIPV6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func IsURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func IsURIRef(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func IsRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

// IsFormat reports whether name is a registered format.
func IsFormat(name string) bool {
	_, ok := formats[name]
	return ok
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsTime(s string) bool {
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05.999999999Z07:00"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

var uriTemplateVarRE = regexp.MustCompile(`^[A-Za-z0-9_.%]+$`)

// IsURITemplate reports whether s is a URI Template (RFC 6570): a URI
// reference with "{...}" expressions naming a comma-separated, non-nested
// variable list, each optionally carrying an operator prefix and a
// ":N"/"*" modifier.
func IsURITemplate(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			end := strings.IndexByte(s[i:], '}')
			if end == -1 {
				return false
			}
			if !isURITemplateExpr(s[i+1 : i+end]) {
				return false
			}
			i += end
		case '}':
			return false
		}
	}
	return true
}

func isURITemplateExpr(expr string) bool {
	if expr == "" {
		return false
	}
	switch expr[0] {
	case '+', '#', '.', '/', ';', '?', '&':
		expr = expr[1:]
	}
	if expr == "" {
		return false
	}
	for _, v := range strings.Split(expr, ",") {
		v = strings.TrimSuffix(v, "*")
		if i := strings.IndexByte(v, ':'); i != -1 {
			v = v[:i]
		}
		if !uriTemplateVarRE.MatchString(v) {
			return false
		}
	}
	return true
}

// IsJSONPointer reports whether s is a JSON Pointer (RFC 6901): empty,
// or a sequence of "/"-prefixed reference tokens in which every "~" is
// followed by "0" or "1".
func IsJSONPointer(s string) bool {
	if s == "" {
		return true
	}
	if !strings.HasPrefix(s, "/") {
		return false
	}
	for _, tok := range strings.Split(s[1:], "/") {
		if !isValidPointerToken(tok) {
			return false
		}
	}
	return true
}

func isValidPointerToken(tok string) bool {
	for i := 0; i < len(tok); i++ {
		if tok[i] == '~' {
			if i+1 >= len(tok) || (tok[i+1] != '0' && tok[i+1] != '1') {
				return false
			}
			i++
		}
	}
	return true
}

// IsRelativeJSONPointer reports whether s is a Relative JSON Pointer: a
// non-negative integer followed by either "#" or a JSON Pointer.
func IsRelativeJSONPointer(s string) bool {
	i := 0
	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return false
	}
	if s[i] == '0' {
		i++
	} else {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	rest := s[i:]
	if rest == "" || rest == "#" {
		return true
	}
	return IsJSONPointer(rest)
}
