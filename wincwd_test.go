package wincwd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedConverter struct{ out string }

func (f fixedConverter) Abs(context.Context, string) (string, error) { return f.out, nil }

func TestNewWithConverter(t *testing.T) {
	r := NewWithConverter(Cygpath, fixedConverter{out: "D:\\work\\repo\n"})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `D:\work\repo`, got)

	esc, err := r.ResolveEscaped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `D:\\work\\repo`, esc)
}

func TestKeepNewline(t *testing.T) {
	r := NewWithConverter(Cygpath, fixedConverter{out: "D:\\work\\repo\n"})
	r.KeepNewline(true)
	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "D:\\work\\repo\n", got)
}

func TestUnsupportedSentinel(t *testing.T) {
	r := NewWithConverter(Unsupported, nil)
	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestEscapeUnescape(t *testing.T) {
	assert.Equal(t, `C:\\Users\\dev`, Escape(`C:\Users\dev`))
	assert.Equal(t, `C:\Users\dev`, Unescape(`C:\\Users\\dev`))
}

func TestNewUsesDetectedStrategy(t *testing.T) {
	assert.NotNil(t, New())
}
