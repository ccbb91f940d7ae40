package token

import "strings"

// Decode turns a raw env value into its decoded form: the value is trimmed,
// a fully single-quoted value is stripped literally, and a fully
// double-quoted value is stripped and unescaped.
//
// Escape replacement runs sequentially in a fixed order (\n, \r, \t, \\, \")
// after quote removal. The order matters: values containing literal
// backslash-n, backslash-r or backslash-t sequences are ambiguous and do not
// round-trip; Quote is the exact inverse for all other values.
func Decode(raw string) string {
	v := strings.TrimSpace(raw)
	n := len(v)
	if n >= 2 && v[0] == '\'' && v[n-1] == '\'' {
		return v[1 : n-1]
	}
	if n >= 2 && v[0] == '"' && v[n-1] == '"' {
		v = v[1 : n-1]
		v = strings.ReplaceAll(v, `\n`, "\n")
		v = strings.ReplaceAll(v, `\r`, "\r")
		v = strings.ReplaceAll(v, `\t`, "\t")
		v = strings.ReplaceAll(v, `\\`, `\`)
		v = strings.ReplaceAll(v, `\"`, `"`)
		return v
	}
	return v
}

// NeedsQuote reports whether a value must be double-quoted to serialize.
func NeedsQuote(v string) bool {
	return strings.ContainsAny(v, " \n\r\t#\"'\\")
}

// Quote renders a value in its serializable form: unquoted when possible,
// otherwise wrapped in double quotes with backslash escapes.
func Quote(v string) string {
	if !NeedsQuote(v) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	v = strings.ReplaceAll(v, "\r", `\r`)
	v = strings.ReplaceAll(v, "\t", `\t`)
	return `"` + v + `"`
}
