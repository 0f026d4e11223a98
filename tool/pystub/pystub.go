// Package pystub generates the contents of .pyi stub files for compiled
// Python extension modules from their dumped symbol information. The stubs
// keep docstrings and stay untyped: text signatures rarely carry usable
// annotations, so parameter types are left for a human to add.
package pystub

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MusicalNinjas/pyigen/symbol"
)

// Header suppresses the flake8 complaint about docstrings in stubs. Keeping
// docstrings is the point: editors surface them from the .pyi file.
const Header = "# flake8: noqa: PYI021"

// ErrMissingSignature reports a callable dumped without a text signature.
var ErrMissingSignature = errors.New("missing text signature")

// UnsupportedTypeError reports a dispatch on an object whose runtime kind is
// neither a native callable nor a class.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s", e.TypeName)
}

// GenEntry generates the stub entry for a single dumped object. Callers are
// expected to pre-filter by kind; anything unrecognized is a hard error.
// A class-kind symbol without dumped member detail still gets a class entry,
// from its name and doc alone.
func GenEntry(obj any) (string, error) {
	switch v := obj.(type) {
	case *symbol.Symbol:
		switch symbol.KindOf(v.Type) {
		case symbol.KindFunction:
			return GenFuncEntry(v)
		case symbol.KindClass:
			return GenClassEntry(&symbol.Class{Name: v.Name, Doc: v.Doc})
		}
		return "", &UnsupportedTypeError{TypeName: v.Type}
	case *symbol.Class:
		return GenClassEntry(v)
	}
	return "", &UnsupportedTypeError{TypeName: fmt.Sprintf("%T", obj)}
}

// GenModule generates the full .pyi document for a dumped module. Attributes
// of unsupported kind are skipped; entries are sorted by their generated text
// so repeated runs over the same module produce identical output.
func GenModule(mod *symbol.Module) (string, error) {
	classes := make(map[string]*symbol.Class, len(mod.Classes))
	for _, cls := range mod.Classes {
		classes[cls.Name] = cls
	}

	var defs []string
	for _, item := range mod.Items {
		var obj any
		switch symbol.KindOf(item.Type) {
		case symbol.KindFunction:
			obj = item
		case symbol.KindClass:
			if cls := classes[item.Name]; cls != nil {
				obj = cls
			} else {
				obj = item
			}
		default:
			// not stub material (submodules, constants, pure-python helpers)
			continue
		}
		entry, err := GenEntry(obj)
		if err != nil {
			return "", fmt.Errorf("%s: %w", mod.Name, err)
		}
		defs = append(defs, entry)
	}
	sort.Strings(defs)

	parts := make([]string, 0, len(defs)+1)
	parts = append(parts, Header+"\n")
	parts = append(parts, defs...)
	return strings.Join(parts, "\n"), nil
}

// docBlock formats a docstring for a stub body at one indent level:
// multi-line text becomes an indented triple-quoted block, single-line text
// an inline triple-quoted string, and no text the ... placeholder.
func docBlock(doc string) string {
	if doc == "" {
		return indentUnit + "..."
	}
	if strings.Contains(doc, "\n") {
		return indentUnit + `"""` + "\n" + indent(doc, indentUnit) + "\n" + indentUnit + `"""`
	}
	return indentUnit + `"""` + doc + `"""`
}

const indentUnit = "    "

// indent prefixes every line containing non-whitespace; blank lines are
// left alone so docstring spacing survives.
func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
