package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// jsLiteral renders a Go literal value as a JavaScript literal.
func jsLiteral(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("\"%s\"", jsStringEscape(val))
	case float64:
		return formatNumber(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders a float without a trailing ".0" for integral values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isJSIdentifier reports whether s is a valid JavaScript identifier usable
// as an unquoted object literal key.
func isJSIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$') {
				return false
			}
		} else {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '$') {
				return false
			}
		}
	}
	return true
}

// objectKey returns an object literal key: the name as-is for valid
// identifiers, a quoted string otherwise. `__proto__` always uses computed
// property syntax so the literal never triggers the prototype setter.
func objectKey(name string) string {
	if name == "__proto__" {
		return `["__proto__"]`
	}
	if isJSIdentifier(name) {
		return name
	}
	return "\"" + jsStringEscape(name) + "\""
}

// jsStringEscape escapes a string for embedding inside a JavaScript
// double-quoted string literal.
func jsStringEscape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\u2028':
			buf.WriteString(`\u2028`)
		case '\u2029':
			buf.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				buf.WriteString(fmt.Sprintf(`\x%02x`, r))
			} else {
				buf.WriteRune(r)
			}
		}
	}
	return buf.String()
}

// escapeForRegexLiteral escapes forward slashes in a regex pattern so it can
// be embedded in a JavaScript regex literal (/pattern/). Already-escaped
// slashes are left unchanged.
func escapeForRegexLiteral(pattern string) string {
	var buf strings.Builder
	escaped := false
	for _, r := range pattern {
		if escaped {
			buf.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			buf.WriteRune(r)
			escaped = true
			continue
		}
		if r == '/' {
			buf.WriteString(`\/`)
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
