// Package pyenv prepares and validates the Python environment the pydump
// helper runs against.
package pyenv

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Check verifies that a Python 3 interpreter is available and that libName
// can be imported. Returns the library version reported by __version__, or
// "unknown" when the module does not expose one.
func Check(libName string) (version string, err error) {
	pycmd, err := checkPython()
	if err != nil {
		return "", err
	}
	return checkLibrary(pycmd, libName)
}

func checkPython() (pycmd string, err error) {
	var version string
	for _, candidate := range []string{"python3", "python"} {
		cmd := exec.Command(candidate, "--version")
		output, err := cmd.Output()
		if err != nil {
			continue
		}
		version = string(output)
		if strings.HasPrefix(version, "Python 3") {
			return candidate, nil
		}
	}
	if version != "" {
		return "", fmt.Errorf("python version is not 3.x: %s", strings.TrimSpace(version))
	}
	return "", fmt.Errorf("python is not installed or not found")
}

// Python library name to module name mapping
var libToModule = map[string]string{
	"scikit-learn": "sklearn",
	"pillow":       "PIL",
}

func ModuleName(libName string) string {
	if mod, ok := libToModule[libName]; ok {
		return mod
	}
	return libName
}

func checkLibrary(pycmd, libName string) (string, error) {
	moduleName := ModuleName(libName)
	code := fmt.Sprintf("import %s; print(getattr(%s, '__version__', 'unknown'))", moduleName, moduleName)
	cmd := exec.Command(pycmd, "-c", code)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("import check for %s failed: %s", libName, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
