package main

import (
	"fmt"
	"strings"
	_ "unsafe"

	"github.com/goplus/lib/c"
	"github.com/goplus/lib/py"
)

//go:linkname SequenceList C.PySequence_List
func SequenceList(o *py.Object) *py.Object { return nil }

type library struct {
	LibName string   `json:"libName"`
	Depth   int      `json:"depth"`
	Modules []string `json:"modules"`
}

// listModules walks a library's importable submodules up to depth levels,
// skipping test and underscore-private packages.
func listModules(libName string, depth int) (*library, error) {
	lib := &library{
		LibName: libName,
		Depth:   depth,
		Modules: []string{},
	}
	lib.walk(libName, 1)
	if len(lib.Modules) == 0 {
		return nil, fmt.Errorf("import module failed: %s", libName)
	}
	return lib, nil
}

func (lib *library) walk(moduleName string, depth int) {
	if depth > lib.Depth {
		return
	}
	mod := py.ImportModule(c.AllocaCStr(moduleName))
	if mod == nil {
		return
	}
	lib.Modules = append(lib.Modules, moduleName)
	if depth == lib.Depth {
		return
	}
	pyPath := mod.GetAttrString(c.Str("__path__"))
	if pyPath == nil {
		return
	}
	pkgUtil := py.ImportModule(c.Str("pkgutil"))
	iterModules := pkgUtil.GetAttrString(c.Str("iter_modules"))
	iter := iterModules.Call(py.Tuple(pyPath), nil)
	subModules := SequenceList(iter)
	for i := 0; i < subModules.ListLen(); i++ {
		subModule := subModules.ListItem(i)
		name := subModule.TupleItem(1)
		nameStr := c.GoString(name.CStr())
		if strings.HasPrefix(nameStr, "test") || strings.HasPrefix(nameStr, "_") {
			continue
		}
		subModuleName := moduleName + "." + nameStr
		isPkg := subModule.TupleItem(2)
		if isPkg.IsTrue() == 1 {
			lib.walk(subModuleName, depth+1)
		} else {
			subMod := py.ImportModule(c.AllocaCStr(subModuleName))
			if subMod == nil {
				continue
			}
			lib.Modules = append(lib.Modules, subModuleName)
		}
	}
}
