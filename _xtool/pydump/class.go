package main

import (
	"fmt"

	"github.com/goplus/lib/c"
	"github.com/goplus/lib/py"
)

// get builtins.dir function object, to enumerate class attributes
// including inherited ones
func getBuiltinDir() (*py.Object, error) {
	builtins := py.ImportModule(c.AllocaCStr("builtins"))
	if builtins == nil {
		return nil, fmt.Errorf("can't import builtins")
	}
	dirFunc := builtins.GetAttrString(c.Str("dir"))
	if dirFunc == nil {
		return nil, fmt.Errorf("can't get dir from builtins")
	}
	return dirFunc, nil
}

// parseClass dumps every attribute reachable on the class via dir(cls).
// Filtering (dunders, non-callable kinds) is the host's job: the stub
// generator decides eligibility, the dump just reports what exists.
func parseClass(pycls *py.Object, sym *symbol) (*class, error) {
	dirFunc, err := getBuiltinDir()
	if err != nil {
		return nil, err
	}
	names := dirFunc.CallOneArg(pycls)
	if names == nil {
		return nil, fmt.Errorf("can't list attributes of %s", sym.Name)
	}
	cls := &class{
		Name: sym.Name,
		Doc:  sym.Doc,
	}
	for i, n := 0, names.ListLen(); i < n; i++ {
		key := names.ListItem(i)
		val := pycls.GetAttr(key)
		if val == nil {
			continue
		}
		member := &symbol{}
		member.Name = c.GoString(key.CStr())
		member.Type = c.GoString(val.Type().TypeName().CStr())
		member.Doc = getDoc(val)
		member.Sig = getSignature(val, member)
		cls.Members = append(cls.Members, member)
	}
	return cls, nil
}
