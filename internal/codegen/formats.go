package codegen

// formatRefinements maps a declared string format to its named format-check
// refinement call. Formats missing from this table contribute no refinement.
var formatRefinements = map[string]string{
	"email":     "v.email()",
	"uri":       "v.url()",
	"url":       "v.url()",
	"uuid":      "v.uuid()",
	"date-time": "v.isoTimestamp()",
	"date":      "v.isoDate()",
	"time":      "v.isoTime()",
	"ipv4":      "v.ipv4()",
	"ipv6":      "v.ipv6()",
}
