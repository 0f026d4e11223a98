package pystub

import (
	"fmt"
	"strings"

	"github.com/MusicalNinjas/pyigen/symbol"
)

// GenClassEntry generates the stub entry for a class: the class docstring
// followed by one indented function entry per eligible method.
//
// Eligible means: native-callable kind, a parsable text signature, and not
// dunder-named. Everything else in dir(cls) is skipped silently: inherited
// object plumbing, __init__/__new__, properties, data attributes.
func GenClassEntry(cls *symbol.Class) (string, error) {
	var methods []string
	for _, m := range cls.Members {
		if symbol.KindOf(m.Type) != symbol.KindFunction {
			continue
		}
		if m.Sig == "" {
			continue
		}
		if strings.HasPrefix(m.Name, "__") {
			continue
		}
		entry, err := GenFuncEntry(m)
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", cls.Name, m.Name, err)
		}
		methods = append(methods, indent(entry, indentUnit))
	}

	var doc string
	switch {
	case cls.Doc != "":
		doc = docBlock(cls.Doc)
	case len(methods) == 0:
		doc = indentUnit + "..."
	}
	body := doc + "\n" + strings.Join(methods, "\n")
	return fmt.Sprintf("class %s:\n%s\n", cls.Name, body), nil
}
