package pystub

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MusicalNinjas/pyigen/symbol"
)

func builtin(name, sig, doc string) *symbol.Symbol {
	return &symbol.Symbol{Name: name, Type: "builtin_function_or_method", Doc: doc, Sig: sig}
}

func methodDesc(name, sig, doc string) *symbol.Symbol {
	return &symbol.Symbol{Name: name, Type: "method_descriptor", Doc: doc, Sig: sig}
}

func TestGenFuncEntry(t *testing.T) {
	t.Run("single line doc", func(t *testing.T) {
		got, err := GenFuncEntry(builtin("add", "(a, b=0)", "Add two numbers."))
		require.NoError(t, err)
		assert.Equal(t, "def add(a, b=0):\n    \"\"\"Add two numbers.\"\"\"\n", got)
	})

	t.Run("multi line doc", func(t *testing.T) {
		got, err := GenFuncEntry(builtin("f", "(a)", "Compute.\n\nDetails here."))
		require.NoError(t, err)
		want := "def f(a):\n" +
			"    \"\"\"\n" +
			"    Compute.\n" +
			"\n" +
			"    Details here.\n" +
			"    \"\"\"\n"
		assert.Equal(t, want, got)
	})

	t.Run("no doc", func(t *testing.T) {
		got, err := GenFuncEntry(builtin("f", "(a)", ""))
		require.NoError(t, err)
		assert.Equal(t, "def f(a):\n    ...\n", got)
	})

	t.Run("self marker renamed", func(t *testing.T) {
		got, err := GenFuncEntry(methodDesc("update", "($self, value, flush=True)", ""))
		require.NoError(t, err)
		assert.Equal(t, "def update(self, value, flush=True):\n    ...\n", got)
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := GenFuncEntry(builtin("f", "", "doc"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingSignature))
	})
}

func TestGenClassEntry(t *testing.T) {
	t.Run("doc and methods", func(t *testing.T) {
		cls := &symbol.Class{
			Name: "Counter",
			Doc:  "A counter.",
			Members: []*symbol.Symbol{
				methodDesc("incr", "($self, by=1)", ""),
			},
		}
		got, err := GenClassEntry(cls)
		require.NoError(t, err)
		want := "class Counter:\n" +
			"    \"\"\"A counter.\"\"\"\n" +
			"    def incr(self, by=1):\n" +
			"        ...\n" +
			"\n"
		assert.Equal(t, want, got)
	})

	t.Run("methods without doc keep an empty doc line", func(t *testing.T) {
		cls := &symbol.Class{
			Name: "Counter",
			Members: []*symbol.Symbol{
				methodDesc("incr", "($self)", ""),
			},
		}
		got, err := GenClassEntry(cls)
		require.NoError(t, err)
		want := "class Counter:\n" +
			"\n" +
			"    def incr(self):\n" +
			"        ...\n" +
			"\n"
		assert.Equal(t, want, got)
	})

	t.Run("no doc no methods", func(t *testing.T) {
		got, err := GenClassEntry(&symbol.Class{Name: "Empty"})
		require.NoError(t, err)
		assert.Equal(t, "class Empty:\n    ...\n\n", got)
	})

	t.Run("dunder members excluded", func(t *testing.T) {
		cls := &symbol.Class{
			Name: "Counter",
			Members: []*symbol.Symbol{
				methodDesc("__eq__", "($self, other)", ""),
				methodDesc("__init__", "($self)", ""),
				methodDesc("incr", "($self)", ""),
			},
		}
		got, err := GenClassEntry(cls)
		require.NoError(t, err)
		assert.NotContains(t, got, "__eq__")
		assert.NotContains(t, got, "__init__")
		assert.Contains(t, got, "def incr(self):")
	})

	t.Run("ineligible members skipped", func(t *testing.T) {
		cls := &symbol.Class{
			Name: "Counter",
			Members: []*symbol.Symbol{
				{Name: "count", Type: "int"},                     // data attribute
				{Name: "mode", Type: "property", Sig: "($self)"}, // not a native callable
				methodDesc("broken", "", "no signature"),         // unparsable
				methodDesc("incr", "($self)", ""),
			},
		}
		got, err := GenClassEntry(cls)
		require.NoError(t, err)
		assert.NotContains(t, got, "count")
		assert.NotContains(t, got, "mode")
		assert.NotContains(t, got, "broken")
		assert.Contains(t, got, "def incr(self):")
	})
}

func TestGenEntry(t *testing.T) {
	t.Run("function", func(t *testing.T) {
		got, err := GenEntry(builtin("add", "(a, b=0)", ""))
		require.NoError(t, err)
		assert.Contains(t, got, "def add(a, b=0):")
	})

	t.Run("class", func(t *testing.T) {
		got, err := GenEntry(&symbol.Class{Name: "Empty"})
		require.NoError(t, err)
		assert.Contains(t, got, "class Empty:")
	})

	t.Run("class-kind symbol", func(t *testing.T) {
		got, err := GenEntry(&symbol.Symbol{Name: "Box", Type: "type", Doc: "A box."})
		require.NoError(t, err)
		assert.Equal(t, "class Box:\n    \"\"\"A box.\"\"\"\n\n", got)
	})

	t.Run("unsupported symbol kind", func(t *testing.T) {
		_, err := GenEntry(&symbol.Symbol{Name: "pi", Type: "float"})
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "float", unsupported.TypeName)
	})

	t.Run("unsupported object", func(t *testing.T) {
		_, err := GenEntry(42)
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "int", unsupported.TypeName)
	})
}

func TestGenModule(t *testing.T) {
	t.Run("end to end", func(t *testing.T) {
		mod := &symbol.Module{
			Name:  "demo",
			Items: []*symbol.Symbol{builtin("add", "(a, b=0)", "Add two numbers.")},
		}
		got, err := GenModule(mod)
		require.NoError(t, err)
		want := "# flake8: noqa: PYI021\n" +
			"\n" +
			"def add(a, b=0):\n" +
			"    \"\"\"Add two numbers.\"\"\"\n"
		assert.Equal(t, want, got)
	})

	t.Run("entries sorted by generated text", func(t *testing.T) {
		mod := &symbol.Module{
			Name: "demo",
			Items: []*symbol.Symbol{
				builtin("zeta", "()", ""),
				builtin("alpha", "()", ""),
				{Name: "Box", Type: "type"},
			},
			Classes: []*symbol.Class{{Name: "Box"}},
		}
		got, err := GenModule(mod)
		require.NoError(t, err)
		// "class Box" < "def alpha" < "def zeta"
		boxAt := indexOf(t, got, "class Box:")
		alphaAt := indexOf(t, got, "def alpha()")
		zetaAt := indexOf(t, got, "def zeta()")
		assert.Less(t, boxAt, alphaAt)
		assert.Less(t, alphaAt, zetaAt)
	})

	t.Run("unsupported items skipped", func(t *testing.T) {
		mod := &symbol.Module{
			Name: "demo",
			Items: []*symbol.Symbol{
				{Name: "VERSION", Type: "str"},
				{Name: "os", Type: "module"},
				builtin("add", "(a, b=0)", ""),
			},
		}
		got, err := GenModule(mod)
		require.NoError(t, err)
		assert.NotContains(t, got, "VERSION")
		assert.NotContains(t, got, "os")
		assert.Contains(t, got, "def add(a, b=0):")
	})

	t.Run("class without dumped detail still gets an entry", func(t *testing.T) {
		mod := &symbol.Module{
			Name:  "demo",
			Items: []*symbol.Symbol{{Name: "Box", Type: "type", Doc: "A box."}},
		}
		got, err := GenModule(mod)
		require.NoError(t, err)
		assert.Contains(t, got, "class Box:\n    \"\"\"A box.\"\"\"")
	})

	t.Run("malformed callable aborts generation", func(t *testing.T) {
		mod := &symbol.Module{
			Name: "demo",
			Items: []*symbol.Symbol{
				builtin("good", "()", ""),
				builtin("bad", "", ""),
			},
		}
		_, err := GenModule(mod)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingSignature))
	})

	t.Run("idempotent", func(t *testing.T) {
		mod := &symbol.Module{
			Name: "demo",
			Items: []*symbol.Symbol{
				builtin("add", "(a, b=0)", "Add two numbers."),
				{Name: "Box", Type: "type"},
			},
			Classes: []*symbol.Class{{
				Name:    "Box",
				Doc:     "A box.",
				Members: []*symbol.Symbol{methodDesc("open", "($self)", "")},
			}},
		}
		first, err := GenModule(mod)
		require.NoError(t, err)
		second, err := GenModule(mod)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	require.NotEqual(t, -1, idx, "%q not found in output", sub)
	return idx
}
