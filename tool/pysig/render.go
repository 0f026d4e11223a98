package pysig

import "strings"

// self marker used by pyo3 text signatures for bound methods
const selfMarker = "$self"

// Render parses sig and re-assembles it as an untyped Python parameter list:
// "(name[=default], ...)". The $self marker is rewritten to self, defaults
// are copied verbatim, and any type annotations in the source are dropped.
// A zero-argument signature renders as "()".
//
// doc is unused today; it is accepted so the dumper's doc-derived signature
// fallback can later cross-check defaults without changing the contract.
func Render(sig, doc string) string {
	args := Parse(sig)
	clauses := make([]string, 0, len(args))
	for _, arg := range args {
		name := arg.Name
		if name == selfMarker {
			name = "self"
		}
		if arg.DefVal != "" {
			name += "=" + arg.DefVal
		}
		clauses = append(clauses, name)
	}
	return "(" + strings.Join(clauses, ", ") + ")"
}
