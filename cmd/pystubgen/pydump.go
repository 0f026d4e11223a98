package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/MusicalNinjas/pyigen/symbol"
)

// library mirrors the JSON printed by pydump's -list mode.
type library struct {
	LibName string   `json:"libName"`
	Depth   int      `json:"depth"`
	Modules []string `json:"modules"`
}

// pydump shells out to the pydump helper, which imports the module in a
// live CPython and prints its symbol dump as JSON.
func pydump(moduleName string) (*symbol.Module, error) {
	var out bytes.Buffer
	cmd := exec.Command("pydump", moduleName)
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pydump %s failed: %w", moduleName, err)
	}
	var mod symbol.Module
	if err := json.Unmarshal(out.Bytes(), &mod); err != nil {
		return nil, fmt.Errorf("unmarshal %s failed: %w", moduleName, err)
	}
	if mod.Name != moduleName {
		return nil, fmt.Errorf("import module failed: %s", moduleName)
	}
	return &mod, nil
}

// pydumpList asks the helper for the importable submodules of a library,
// up to depth levels deep.
func pydumpList(libName string, depth int) (*library, error) {
	var out bytes.Buffer
	cmd := exec.Command("pydump", "-list", "-d", strconv.Itoa(depth), libName)
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pydump -list %s failed: %w", libName, err)
	}
	var lib library
	if err := json.Unmarshal(out.Bytes(), &lib); err != nil {
		return nil, fmt.Errorf("unmarshal %s failed: %w", libName, err)
	}
	if len(lib.Modules) == 0 {
		return nil, fmt.Errorf("get modules from package %s failed", libName)
	}
	return &lib, nil
}
