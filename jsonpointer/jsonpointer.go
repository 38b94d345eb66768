// Package jsonpointer implements the parts of RFC 6901 JSON Pointer needed to
// address subschemas: token escaping, fragment splitting and lookups over
// decoded JSON values.
package jsonpointer

import (
	"strings"
)

// Escape and unescape replacers. strings.Replacer scans left to right and never
// rescans its own output, so "~01" unescapes to "~1" rather than "/".
var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes a reference token: "~" becomes "~0" and "/" becomes "~1".
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	return escaper.Replace(token)
}

// Unescape decodes a reference token in a single pass.
func Unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return unescaper.Replace(token)
}

// Split breaks a URI fragment into unescaped reference tokens.
//
// The empty fragment and "/" both address the document root and yield no
// tokens. Any other fragment must start with "/"; a fragment that does not
// (a plain-name anchor) reports ok=false.
func Split(fragment string) (tokens []string, ok bool) {
	if fragment == "" || fragment == "/" {
		return nil, true
	}
	if fragment[0] != '/' {
		return nil, false
	}
	tokens = strings.Split(fragment[1:], "/")
	for i, tok := range tokens {
		tokens[i] = Unescape(tok)
	}
	return tokens, true
}

// Join appends escaped tokens to base, separated by "/".
//
//	Join("#", "properties", "a/b") == "#/properties/a~1b"
func Join(base string, tokens ...string) string {
	if len(tokens) == 0 {
		return base
	}
	var b strings.Builder
	n := len(base)
	for _, tok := range tokens {
		n += len(tok) + 1
	}
	b.Grow(n)
	b.WriteString(base)
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}
