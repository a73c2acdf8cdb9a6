package naming

import "strings"

// javaKeywords is the full set of Java reserved words, including the
// `goto`/`const` reserved-but-unused pair and the three literal words.
var javaKeywords = map[string]struct{}{
	"abstract": {}, "continue": {}, "for": {}, "new": {}, "switch": {},
	"assert": {}, "default": {}, "goto": {}, "package": {}, "synchronized": {},
	"boolean": {}, "do": {}, "if": {}, "private": {}, "this": {},
	"break": {}, "double": {}, "implements": {}, "protected": {}, "throw": {},
	"byte": {}, "else": {}, "import": {}, "public": {}, "throws": {},
	"case": {}, "enum": {}, "instanceof": {}, "return": {}, "transient": {},
	"catch": {}, "extends": {}, "int": {}, "short": {}, "try": {},
	"char": {}, "final": {}, "interface": {}, "static": {}, "void": {},
	"class": {}, "finally": {}, "long": {}, "strictfp": {}, "volatile": {},
	"const": {}, "float": {}, "native": {}, "super": {}, "while": {},
	"true": {}, "false": {}, "null": {},
}

// Identifier converts an arbitrary string into a valid bare Java identifier.
// A reserved word gets a trailing underscore; every rune outside
// [A-Za-z0-9_] becomes an underscore; a leading digit gets an underscore
// prepended. The result is never empty.
func Identifier(name string) string {
	if _, reserved := javaKeywords[name]; reserved {
		return name + "_"
	}

	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	if sanitized == "" {
		return "_"
	}

	if isASCIIDigit(rune(sanitized[0])) {
		return "_" + sanitized
	}

	return sanitized
}

// ClassSegments splits a fully-qualified class name into per-segment valid
// identifiers. Inner-class separators ($) are folded into the simple name
// before splitting, so "a.b.Outer$Inner" yields ["a", "b", "Outer_Inner"].
func ClassSegments(originalName string) []string {
	flattened := strings.ReplaceAll(originalName, "$", "_")

	parts := strings.Split(flattened, ".")
	segments := make([]string, len(parts))

	for i, part := range parts {
		segments[i] = Identifier(part)
	}

	return segments
}

func isWordRune(r rune) bool {
	return isASCIIDigit(r) || isASCIILower(r) || isASCIIUpper(r) || r == '_'
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
