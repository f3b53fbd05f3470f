package xfile_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ouikit/pkg/util/xfile"
)

func TestCheckPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "oui.dat", "oui.dat", nil},
		{"cleaned", "./data//oui.dat", "data/oui.dat", nil},
		{"parent", "../oui.dat", "../oui.dat", nil},
		{"empty", "", "", xfile.ErrEmptyPath},
		{"null_byte", "oui\x00.dat", "", xfile.ErrNullByte},
		{"directory", "data/", "", xfile.ErrInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xfile.CheckPath(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "oui.dat")
	require.NoError(t, xfile.EnsureDir(target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, xfile.EnsureDir("oui.dat"))
}

func TestWriteAtomic(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "oui.dat")
	require.NoError(t, xfile.WriteAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	}))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(xfile.DefaultFilePerm), info.Mode().Perm())

	require.NoError(t, xfile.WriteAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "second")
		return err
	}))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteAtomic_WriterErrorKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "oui.dat")
	require.NoError(t, os.WriteFile(target, []byte("previous"), 0o600))

	boom := errors.New("convert failed")
	err := xfile.WriteAtomic(target, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteAtomic_InvalidPath(t *testing.T) {
	err := xfile.WriteAtomic("", func(io.Writer) error { return nil })
	assert.ErrorIs(t, err, xfile.ErrEmptyPath)
}
