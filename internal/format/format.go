// Package format is the pass-through point for output formatting. The run
// driver hands its full buffer to a Formatter before returning it; real
// pretty-printing is expected to live outside this module (e.g. prettier in
// the consuming toolchain), so the default implementation only normalizes
// whitespace.
package format

import "strings"

// Formatter formats a generated source buffer.
type Formatter interface {
	Format(src string) (string, error)
}

// Passthrough returns the buffer unchanged.
type Passthrough struct{}

func (Passthrough) Format(src string) (string, error) { return src, nil }

// Normalizer is the default formatter: it trims trailing whitespace from
// each line, collapses runs of blank lines to a single blank line, and
// guarantees exactly one trailing newline.
type Normalizer struct{}

func (Normalizer) Format(src string) (string, error) {
	lines := strings.Split(src, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n", nil
}
