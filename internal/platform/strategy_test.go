package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	found := func(string) (string, error) { return "/usr/bin/cygpath", nil }
	missing := func(string) (string, error) { return "", errors.New("executable file not found in $PATH") }

	tests := []struct {
		name     string
		goos     string
		lookPath func(string) (string, error)
		want     Strategy
	}{
		{"native windows", "windows", missing, Native},
		{"windows ignores lookup", "windows", found, Native},
		{"compatibility layer on PATH", "linux", found, Cygpath},
		{"plain linux", "linux", missing, Unsupported},
		{"darwin without cygpath", "darwin", missing, Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.goos, tt.lookPath))
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "native", Native.String())
	assert.Equal(t, "cygpath", Cygpath.String())
	assert.Equal(t, "unsupported", Unsupported.String())
	assert.Equal(t, "unsupported", Strategy(99).String())
}

func TestCurrentResolvesToAKnownStrategy(t *testing.T) {
	s := Current()
	assert.Contains(t, []Strategy{Native, Cygpath, Unsupported}, s)
}
