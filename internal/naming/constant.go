package naming

import "strings"

// Marker names the JVM uses for constructors and static initializers.
const (
	initMarker   = "<init>"
	clinitMarker = "<clinit>"
)

// ConstantName converts a member name into an UPPER_SNAKE_CASE constant base
// name. The constructor and static-initializer markers map to INIT and
// CLINIT. For everything else, word boundaries are detected with two rules:
//
//   - an uppercase letter directly after a lowercase letter or digit starts
//     a new word ("getFoo" -> "get_Foo")
//   - an uppercase letter between an uppercase letter and a lowercase letter
//     starts a new word ("HTTPServer" -> "HTTP_Server")
//
// The boundary rules are deliberately exactly these two; generated constant
// names are part of the tool's observable output, so changing the splitter
// changes every downstream consumer.
//
// The result is not guaranteed unique (see Deduper) and is empty only when
// the input contains no word runes at all.
func ConstantName(name string) string {
	switch name {
	case initMarker:
		return "INIT"
	case clinitMarker:
		return "CLINIT"
	}

	runes := []rune(name)

	var b strings.Builder

	b.Grow(len(name) + 4)

	for i, r := range runes {
		if i > 0 && isASCIIUpper(r) && startsWord(runes, i) {
			b.WriteByte('_')
		}

		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	upper := strings.ToUpper(b.String())
	if upper != "" && isASCIIDigit(rune(upper[0])) {
		upper = "_" + upper
	}

	return upper
}

// startsWord reports whether the uppercase rune at position i begins a new
// word under the two boundary rules above.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]

	if isASCIILower(prev) || isASCIIDigit(prev) {
		return true
	}

	if isASCIIUpper(prev) && i+1 < len(runes) && isASCIILower(runes[i+1]) {
		return true
	}

	return false
}
