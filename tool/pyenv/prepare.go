package pyenv

import (
	"os"
	"runtime"
)

// Prepare points PATH and the dynamic-library search path at PYTHONHOME so
// the pydump helper links against the intended interpreter. A no-op when
// PYTHONHOME is unset: the system Python is used.
func Prepare() {
	pyHome := os.Getenv("PYTHONHOME")
	if pyHome == "" {
		return
	}
	// bin
	binPath := os.Getenv("PATH")
	os.Setenv("PATH", pyHome+"/bin:"+binPath)
	// lib
	switch runtime.GOOS {
	case "darwin":
		libPath := os.Getenv("DYLD_LIBRARY_PATH")
		os.Setenv("DYLD_LIBRARY_PATH", pyHome+"/lib:"+libPath)
	case "linux":
		libPath := os.Getenv("LD_LIBRARY_PATH")
		os.Setenv("LD_LIBRARY_PATH", pyHome+"/lib:"+libPath)
	}
}
