package pystub

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MusicalNinjas/pyigen/symbol"
)

// StubPath maps a dotted module name to its stub path under root:
// StubPath("python", "pypkg.rustlib") is python/pypkg/rustlib.pyi.
func StubPath(root, moduleName string) string {
	parts := strings.Split(moduleName, ".")
	parts[len(parts)-1] += ".pyi"
	return filepath.Join(append([]string{root}, parts...)...)
}

// WriteStub generates the stub document for mod and writes it under root,
// creating intermediate package directories as needed. Returns the path of
// the written file.
func WriteStub(root string, mod *symbol.Module) (string, error) {
	text, err := GenModule(mod)
	if err != nil {
		return "", err
	}
	path := StubPath(root, mod.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}
