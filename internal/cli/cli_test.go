package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmdformats/pmxfile/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pmx")
	out := filepath.Join(dir, "out.pmx")
	require.NoError(t, os.WriteFile(in, []byte("PMX "), 0o644))

	f, err := Open([]string{in, out})
	require.NoError(t, err)
	b, err := io.ReadAll(f.Input)
	require.NoError(t, err)
	assert.Equal(t, "PMX ", string(b))
	_, err = io.WriteString(f.Output, "done")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "done", string(b))
}

func TestOpenStdio(t *testing.T) {
	f, err := Open(nil)
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, f.Input)
	assert.Equal(t, os.Stdout, f.Output)
	assert.NoError(t, f.Close())

	f, err = Open([]string{"-", "-"})
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, f.Input)
	assert.NoError(t, f.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open([]string{filepath.Join(t.TempDir(), "missing.pmx")})
	assert.Error(t, err)
}

func TestWarnings(t *testing.T) {
	assert.Nil(t, Warnings(nil))
	assert.Equal(t, []error{io.EOF}, Warnings(io.EOF))
	assert.Equal(t, []error{io.EOF, io.ErrShortWrite}, Warnings(errors.Errors{io.EOF, io.ErrShortWrite}))
}
