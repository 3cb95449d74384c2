// Package naming maps arbitrary display strings to the names used inside a
// generated project: filesystem slugs, importable module identifiers and
// page-object type names.
//
// Every function is pure and total. Tokens are maximal runs of ASCII letters
// and digits; everything else (spaces, punctuation, non-ASCII letters) is a
// separator.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// FallbackSlug is returned by Slugify when no token survives.
	FallbackSlug = "project"

	// TypeSuffix terminates every generated page-object type name.
	TypeSuffix = "Page"

	// FallbackSuite is the suite name used when a test name has no tokens.
	FallbackSuite = "Example"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Tokens bundles the names derived from one display string.
type Tokens struct {
	Display    string
	Slug       string
	Identifier string
	TypeName   string
}

// Tokenize derives all names for text in one call.
func Tokenize(text string) Tokens {
	return Tokens{
		Display:    NormalizeDisplay(text),
		Slug:       Slugify(text),
		Identifier: ToIdentifier(text),
		TypeName:   ToTypeName(text),
	}
}

// NormalizeDisplay trims text and converts it to Unicode NFC so that the same
// name typed on different platforms is stored identically.
func NormalizeDisplay(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// Slugify lowercases text and collapses every run of characters outside
// [A-Za-z0-9] into a single hyphen, trimming hyphens at both ends.
func Slugify(text string) string {
	slug := strings.ToLower(strings.Join(split(text), "-"))
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// ToIdentifier returns Slugify(text) with hyphens replaced by underscores.
// A leading digit is kept; use IsValidIdentifier to detect it.
func ToIdentifier(text string) string {
	return strings.ReplaceAll(Slugify(text), "-", "_")
}

// IsValidIdentifier reports whether s can be used as a Python module name.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// ToTypeName uppercases the first character of every token, leaves the rest
// of each token untouched, and appends TypeSuffix unless already present.
func ToTypeName(text string) string {
	var b strings.Builder
	for _, tok := range split(text) {
		b.WriteString(strings.ToUpper(tok[:1]))
		b.WriteString(tok[1:])
	}
	name := b.String()
	if !strings.HasSuffix(name, TypeSuffix) {
		name += TypeSuffix
	}
	return name
}

// ToSuiteName is the type name without its TypeSuffix, used for generated
// test classes (TestLogin rather than TestLoginPage).
func ToSuiteName(text string) string {
	suite := strings.TrimSuffix(ToTypeName(text), TypeSuffix)
	if suite == "" {
		return FallbackSuite
	}
	return suite
}

// split returns the alphanumeric tokens of text in order.
func split(text string) []string {
	var (
		tokens []string
		cur    strings.Builder
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isAlnum(c) {
			cur.WriteByte(c)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
