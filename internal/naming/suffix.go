package naming

import "strings"

// ParamSuffix derives an overload-disambiguating suffix from a method
// signature. The parameter list is the text between the first "(" and the
// last ")"; an empty list yields "". Each parameter keeps only its simple
// type name (the last dot-separated segment), with "[]" spelled as "_ARRAY"
// and generic angle brackets flattened, then goes through the same
// uppercasing as constant names. Non-empty tokens are joined with "_" and
// the whole suffix is prefixed with "_", so a parameter list whose tokens
// all sanitize to nothing still yields a bare "_".
func ParamSuffix(signature string) string {
	open := strings.Index(signature, "(")
	if open < 0 {
		return ""
	}

	end := strings.LastIndex(signature, ")")
	if end <= open+1 {
		return ""
	}

	params := strings.Split(signature[open+1:end], ",")

	var tokens []string

	for _, param := range params {
		simple := strings.TrimSpace(param)
		if dot := strings.LastIndex(simple, "."); dot >= 0 {
			simple = simple[dot+1:]
		}

		simple = strings.ReplaceAll(simple, "[]", "_ARRAY")
		simple = strings.ReplaceAll(simple, "<", "_")
		simple = strings.ReplaceAll(simple, ">", "")

		if token := ConstantName(simple); token != "" {
			tokens = append(tokens, token)
		}
	}

	return "_" + strings.Join(tokens, "_")
}
