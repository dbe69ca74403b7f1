package wincwd

import (
	"context"

	"github.com/loykin/wincwd/internal/platform"
	"github.com/loykin/wincwd/internal/winpath"
)

// Re-export core types for external consumers, so a test harness can
// embed the resolver instead of shelling out to the CLI.

type Strategy = platform.Strategy

const (
	Unsupported = platform.Unsupported
	Native      = platform.Native
	Cygpath     = platform.Cygpath
)

type Converter = winpath.Converter

// ErrUnsupportedPlatform is returned by Resolve when neither native
// Windows nor a compatibility layer applies.
var ErrUnsupportedPlatform = winpath.ErrUnsupportedPlatform

// Resolver is a thin facade over internal/winpath.Resolver.
type Resolver struct{ inner winpath.Resolver }

// New returns a resolver for the running platform's detected strategy.
func New() *Resolver {
	return &Resolver{inner: winpath.Resolver{Strategy: platform.Current()}}
}

// NewWithConverter pins the strategy and conversion capability, for
// harnesses that substitute a fake converter.
func NewWithConverter(s Strategy, c Converter) *Resolver {
	return &Resolver{inner: winpath.Resolver{Strategy: s, Converter: c}}
}

// KeepNewline controls whether a trailing newline emitted by the
// conversion utility survives into the result. Off by default.
func (r *Resolver) KeepNewline(keep bool) { r.inner.KeepNewline = keep }

// Resolve returns the Windows-style absolute path of the current
// working directory.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	return r.inner.Resolve(ctx)
}

// ResolveEscaped resolves and doubles every backslash for embedding in a
// double-quoted string literal.
func (r *Resolver) ResolveEscaped(ctx context.Context) (string, error) {
	return r.inner.ResolveEscaped(ctx)
}

func Escape(s string) string   { return winpath.Escape(s) }
func Unescape(s string) string { return winpath.Unescape(s) }
