package winpath

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCygpathBinary is the conversion utility shipped by Cygwin and
// MSYS2 compatibility layers.
const DefaultCygpathBinary = "cygpath"

// Converter resolves the absolute Windows-style equivalent of a
// POSIX-style path. The exec-backed implementation below can be swapped
// for a fake in tests so nothing spawns a real process.
type Converter interface {
	Abs(ctx context.Context, posixPath string) (string, error)
}

// CygpathConverter shells out to `cygpath -wa <path>`. Binary overrides
// the executable name, e.g. when the utility is not on PATH.
type CygpathConverter struct {
	Binary string
}

func (c CygpathConverter) Abs(ctx context.Context, posixPath string) (string, error) {
	bin := c.Binary
	if bin == "" {
		bin = DefaultCygpathBinary
	}
	out, err := exec.CommandContext(ctx, bin, "-wa", posixPath).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("%s -wa %s: %s", bin, posixPath, strings.TrimSpace(string(ee.Stderr)))
		}
		return "", fmt.Errorf("%s -wa %s: %w", bin, posixPath, err)
	}
	return string(out), nil
}
