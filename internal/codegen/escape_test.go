package codegen

import "testing"

func TestJSLiteral(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{float64(42), "42"},
		{float64(3.5), "3.5"},
		{7, "7"},
		{true, "true"},
		{false, "false"},
		{nil, "null"},
	}
	for _, tc := range tests {
		if got := jsLiteral(tc.in); got != tc.expected {
			t.Errorf("jsLiteral(%v) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{49, "49"},
		{-3, "-3"},
		{2.25, "2.25"},
	}
	for _, tc := range tests {
		if got := formatNumber(tc.in); got != tc.expected {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"name", "name"},
		{"_private", "_private"},
		{"$ref", "$ref"},
		{"content-type", `"content-type"`},
		{"2fast", `"2fast"`},
		{"with space", `"with space"`},
		{"__proto__", `["__proto__"]`},
	}
	for _, tc := range tests {
		if got := objectKey(tc.in); got != tc.expected {
			t.Errorf("objectKey(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}

func TestEscapeForRegexLiteral(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"^[a-z]+$", "^[a-z]+$"},
		{"^a/b$", `^a\/b$`},
		{`^a\/b$`, `^a\/b$`},
		{`\d+`, `\d+`},
	}
	for _, tc := range tests {
		if got := escapeForRegexLiteral(tc.in); got != tc.expected {
			t.Errorf("escapeForRegexLiteral(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}

func TestJSStringEscapeControlChars(t *testing.T) {
	if got := jsStringEscape("a\nb\tc"); got != `a\nb\tc` {
		t.Errorf("got %q", got)
	}
	if got := jsStringEscape("bell\x07"); got != `bell\x07` {
		t.Errorf("got %q", got)
	}
}
