// pydump imports a Python module in a live interpreter and prints its
// symbol information as JSON: every module attribute with its runtime type
// name, docstring and text signature, plus a per-class member dump. With
// -list it instead prints the importable submodule names of a library.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goplus/lib/c"
	"github.com/goplus/lib/py"
	"github.com/goplus/lib/py/inspect"
)

type symbol struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Doc  string `json:"doc"`
	Sig  string `json:"sig"`
}

type class struct {
	Name    string    `json:"name"`
	Doc     string    `json:"doc"`
	Members []*symbol `json:"members"`
}

type module struct {
	Name    string    `json:"name"`
	Items   []*symbol `json:"items"`
	Classes []*class  `json:"classes"`
}

// runtime type names of callables the stub generator recognizes, used as a
// last-resort signature paradigm
var pyFuncTypes = map[string]bool{
	"builtin_function_or_method": true,
	"method_descriptor":          true,
}

func extractSignatureFromDoc(doc, funcName string) string {
	lines := strings.SplitN(doc, "\n\n", 2)
	if len(lines) == 0 {
		return ""
	}
	firstLine := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(firstLine, funcName+"(") {
		return ""
	}
	idx := strings.Index(firstLine, "(")
	if idx == -1 {
		return ""
	}
	params := firstLine[idx:]
	fields := strings.Fields(params)
	return strings.Join(fields, " ")
}

func getSignature(val *py.Object, sym *symbol) string {
	// function, method, class, or implement __call__
	if val.Callable() == 0 {
		return ""
	}
	// get signature from inspect
	sigFromInspect := inspect.Signature(val)
	if sigFromInspect != nil {
		sig := c.GoString(sigFromInspect.Str().CStr())
		if sig != "(*args, **kwargs)" {
			return sig
		}
	}
	// get signature from doc
	sigFromDoc := extractSignatureFromDoc(sym.Doc, sym.Name)
	if sigFromDoc != "" {
		return sigFromDoc
	}
	// Paradigms
	if pyFuncTypes[sym.Type] {
		return "(*args, **kwargs)"
	}
	return ""
}

func getDoc(val *py.Object) string {
	doc := val.GetAttrString(c.Str("__doc__"))
	if doc != nil && doc.IsTrue() == 1 {
		return c.GoString(doc.Str().CStr())
	}
	return ""
}

// moduleName: Python module name
func pydump(moduleName string) (*module, error) {
	mod := py.ImportModule(c.AllocaCStr(moduleName))
	if mod == nil {
		return nil, fmt.Errorf("failed to import module %s", moduleName)
	}
	keys := mod.ModuleGetDict().DictKeys()
	if keys == nil {
		return nil, fmt.Errorf("failed to get dict keys of %s", moduleName)
	}
	modInstance := &module{
		Name: moduleName,
	}
	for i, n := 0, keys.ListLen(); i < n; i++ {
		key := keys.ListItem(i)
		val := mod.GetAttr(key)
		if val == nil {
			continue
		}
		sym := &symbol{}
		sym.Name = c.GoString(key.CStr())
		sym.Type = c.GoString(val.Type().TypeName().CStr())
		sym.Doc = getDoc(val)
		sym.Sig = getSignature(val, sym)
		modInstance.Items = append(modInstance.Items, sym)
		if sym.Type == "type" {
			cls, err := parseClass(val, sym)
			if err != nil {
				continue
			}
			modInstance.Classes = append(modInstance.Classes, cls)
		}
	}
	return modInstance, nil
}

func main() {
	depth := flag.Int("d", 1, "submodule depth for -list")
	list := flag.Bool("list", false, "list importable submodules instead of dumping")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pydump [-list [-d depth]] <py_module_name>")
		os.Exit(1)
	}
	moduleName := flag.Arg(0)

	var out any
	if *list {
		lib, err := listModules(moduleName, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		out = lib
	} else {
		mod, err := pydump(moduleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		out = mod
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal json: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
