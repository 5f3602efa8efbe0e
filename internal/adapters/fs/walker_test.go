package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/fs"
)

func TestWalker_WalkImages(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	top := mustCreateFile(t, tmpDir, "top.JPG")
	deep := mustCreateFile(t, tmpDir, "dir1/dir2/deep.webp")
	mustCreateFile(t, tmpDir, "dir1/readme.md")
	mustCreateFile(t, tmpDir, ".git/objects/x.png")
	mustCreateFile(t, tmpDir, ".dotfile.png")

	walker := fs.NewWalker()

	flat := slices.Collect(walker.WalkImages(tmpDir, false))
	assert.Equal(t, []string{top}, flat)

	all := slices.Collect(walker.WalkImages(tmpDir, true))
	assert.Equal(t, []string{deep, top}, all)
}

func TestWalker_StopsEarly(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0o600))
	}

	var got []string
	for path := range fs.NewWalker().WalkImages(tmpDir, false) {
		got = append(got, path)
		break
	}
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.png")}, got)
}
