package winpath

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/loykin/wincwd/internal/platform"
)

// ErrUnsupportedPlatform is returned when no resolution strategy applies
// to the running platform.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Resolver produces the current working directory as a Windows-style
// absolute path according to a fixed strategy.
type Resolver struct {
	Strategy  platform.Strategy
	Converter Converter              // used by the Cygpath strategy; defaults to CygpathConverter{}
	Getwd     func() (string, error) // defaults to os.Getwd
	// KeepNewline leaves a trailing newline emitted by the converter in
	// place instead of trimming it before escaping.
	KeepNewline bool
}

// Resolve returns the Windows-style absolute path of the current working
// directory, or ErrUnsupportedPlatform when the strategy is Unsupported.
func (r Resolver) Resolve(ctx context.Context) (string, error) {
	getwd := r.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	switch r.Strategy {
	case platform.Native:
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		return wd, nil
	case platform.Cygpath:
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		conv := r.Converter
		if conv == nil {
			conv = CygpathConverter{}
		}
		out, err := conv.Abs(ctx, wd)
		if err != nil {
			return "", err
		}
		if !r.KeepNewline {
			out = strings.TrimRight(out, "\r\n")
		}
		return out, nil
	default:
		return "", ErrUnsupportedPlatform
	}
}

// ResolveEscaped resolves and escapes in one step.
func (r Resolver) ResolveEscaped(ctx context.Context) (string, error) {
	wd, err := r.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return Escape(wd), nil
}
