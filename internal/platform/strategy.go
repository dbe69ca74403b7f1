package platform

import (
	"os/exec"
	"runtime"
)

// Strategy is the closed set of ways to obtain the current working
// directory as a Windows-style absolute path. It is resolved once at
// startup so the unsupported-platform failure path stays single-sourced.
type Strategy int

const (
	// Unsupported means neither native Windows nor a known POSIX
	// compatibility layer applies.
	Unsupported Strategy = iota
	// Native means the OS reports backslash-separated paths directly.
	Native
	// Cygpath means a POSIX compatibility layer hosts the process and
	// its cygpath utility performs the conversion.
	Cygpath
)

func (s Strategy) String() string {
	switch s {
	case Native:
		return "native"
	case Cygpath:
		return "cygpath"
	default:
		return "unsupported"
	}
}

// Detect picks the strategy for the given OS. goos is runtime.GOOS and
// lookPath is exec.LookPath; both are parameters so tests can fake them.
func Detect(goos string, lookPath func(string) (string, error)) Strategy {
	if goos == "windows" {
		return Native
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("cygpath"); err == nil {
		return Cygpath
	}
	return Unsupported
}

// Current detects the strategy for the running process.
func Current() Strategy {
	return Detect(runtime.GOOS, exec.LookPath)
}
