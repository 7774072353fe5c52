// Package diagnostic collects non-fatal issues raised during generation.
// Degraded output (unsupported kinds, unresolved references, failed codec
// probes) is reported here instead of failing the run.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering.
type Category string

const (
	CategoryTypeUnsupported Category = "type-unsupported"
	CategoryRefUnresolved   Category = "ref-unresolved"
	CategoryCodecProbe      Category = "codec-probe"
	CategoryModelSkipped    Category = "model-skipped"
	CategoryConfigInvalid   Category = "config-invalid"
)

// Diagnostic represents a structured diagnostic message.
type Diagnostic struct {
	Severity Severity
	Category Category
	// Schema names the top-level schema being generated, if known.
	Schema  string
	Message string
	// Hint is an optional suggestion for fixing the issue.
	Hint string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.Schema != "" {
		sb.WriteString(d.Schema)
		sb.WriteString(" - ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	if d.Category != "" {
		sb.WriteString("[")
		sb.WriteString(string(d.Category))
		sb.WriteString("] ")
	}
	sb.WriteString(d.Message)
	if d.Hint != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(d.Hint)
	}
	return sb.String()
}

// Collector collects diagnostics during a generation run. A nil Collector
// is valid and discards everything.
type Collector struct {
	diagnostics []Diagnostic
	quiet       bool
}

// NewCollector creates a new diagnostic collector. When quiet is true,
// warnings and infos are suppressed.
func NewCollector(quiet bool) *Collector {
	return &Collector{quiet: quiet}
}

// Warnf adds a warning diagnostic.
func (c *Collector) Warnf(category Category, schema, format string, args ...any) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Schema:   schema,
		Message:  fmt.Sprintf(format, args...),
	})
}

// WarnWithHint adds a warning with a suggestion.
func (c *Collector) WarnWithHint(category Category, schema, message, hint string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Schema:   schema,
		Message:  message,
		Hint:     hint,
	})
}

// Infof adds an informational diagnostic.
func (c *Collector) Infof(category Category, schema, format string, args ...any) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Category: category,
		Schema:   schema,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns all collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// WarningCount returns the number of warning diagnostics.
func (c *Collector) WarningCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, d := range c.diagnostics {
		if d.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// FormatAll formats all diagnostics as a multi-line string.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a line like "3 warning(s)".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	if n := c.WarningCount(); n > 0 {
		return fmt.Sprintf("%d warning(s)", n)
	}
	return "no issues"
}
