package symbol

// Symbol describes one attribute of a Python module or class, as dumped
// by the pydump helper: its name, runtime type name, docstring and text
// signature. Sig is empty when the object exposes no usable signature.
type Symbol struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Doc  string `json:"doc"`
	Sig  string `json:"sig"`
}

type Class struct {
	Name    string    `json:"name"`
	Doc     string    `json:"doc"`
	Members []*Symbol `json:"members"` // dir(cls) order, unfiltered
}

type Module struct {
	Name    string    `json:"name"`    // python module name
	Items   []*Symbol `json:"items"`   // every module attribute
	Classes []*Class  `json:"classes"` // detail for items of class kind
}

// Kind classifies a dumped runtime type name. The set is closed: compiled
// extension modules only ever surface these kinds at stub level, everything
// else is unsupported.
type Kind int

const (
	KindUnsupported Kind = iota
	KindFunction
	KindClass
)

// Native-callable type names as reported by CPython. BuiltinMethodType
// shares the builtin_function_or_method name with BuiltinFunctionType.
var funcTypes = map[string]bool{
	"builtin_function_or_method": true,
	"method_descriptor":          true,
}

func KindOf(typeName string) Kind {
	switch {
	case funcTypes[typeName]:
		return KindFunction
	case typeName == "type":
		return KindClass
	}
	return KindUnsupported
}
