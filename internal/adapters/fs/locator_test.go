package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/fs"
	"go.trai.ch/thumbs/internal/core/domain"
)

func TestLocator_FreedesktopKey(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("posix paths only")
	}

	root := t.TempDir()
	locator := fs.NewLocator(root, domain.DigestMD5, "thumbs-test")

	loc := locator.Locate("/home/jens/photos/me.png", domain.TierNormal)

	assert.Equal(t, "file:///home/jens/photos/me.png", loc.URI)
	assert.Equal(t, "c6ee772d9e49320e97ec29a7eb5b1697", loc.Key)
	assert.Equal(t, filepath.Join(root, "thumbnails", "normal", "c6ee772d9e49320e97ec29a7eb5b1697.png"), loc.Path)
	assert.Equal(t,
		filepath.Join(root, "thumbnails", "fail", "thumbs-test", "c6ee772d9e49320e97ec29a7eb5b1697.png"),
		loc.FailPath)
}

func TestLocator_Tiers(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	locator := fs.NewLocator(root, domain.DigestMD5, "thumbs-test")

	normal := locator.Locate("/photos/a.jpg", domain.TierNormal)
	large := locator.Locate("/photos/a.jpg", domain.TierLarge)

	assert.Equal(t, normal.Key, large.Key)
	assert.Equal(t, domain.TierLarge, large.Tier)
	assert.Equal(t, filepath.Join(root, "thumbnails", "large", large.Key+".png"), large.Path)
	assert.NotEqual(t, normal.Path, large.Path)
}

func TestLocator_SameCanonicalURI(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o750))
	target := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(target, []byte("img"), 0o600))
	link := filepath.Join(dir, "link.png")
	require.NoError(t, os.Symlink(target, link))

	locator := fs.NewLocator(t.TempDir(), domain.DigestMD5, "thumbs-test")
	want := locator.Locate(target, domain.TierNormal)

	variants := []string{
		link,
		filepath.Join(dir, "sub", "..", "a.png"),
		filepath.Join(dir, ".", "a.png"),
	}
	for _, v := range variants {
		got := locator.Locate(v, domain.TierNormal)
		assert.Equal(t, want, got, "variant %s", v)
	}
}

func TestLocator_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("img"), 0o600))
	t.Chdir(dir)

	locator := fs.NewLocator(t.TempDir(), domain.DigestMD5, "thumbs-test")
	assert.Equal(t,
		locator.Locate(filepath.Join(dir, "a.png"), domain.TierNormal),
		locator.Locate("a.png", domain.TierNormal))
}

func TestLocator_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	locator := fs.NewLocator(t.TempDir(), domain.DigestMD5, "thumbs-test")
	assert.Equal(t,
		locator.Locate(filepath.Join(home, "pic.jpg"), domain.TierNormal).URI,
		locator.Locate("~/pic.jpg", domain.TierNormal).URI)
	assert.Equal(t, "~user/pic.jpg", fs.ExpandHome("~user/pic.jpg"))
}

func TestLocator_XXHashDigest(t *testing.T) {
	t.Parallel()

	md5Locator := fs.NewLocator(t.TempDir(), domain.DigestMD5, "thumbs-test")
	xxLocator := fs.NewLocator(t.TempDir(), domain.DigestXXHash, "thumbs-test")

	uri := "file:///photos/a.jpg"
	key := xxLocator.Key(uri)
	assert.Len(t, key, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", key)
	assert.Equal(t, key, xxLocator.Key(uri))
	assert.Len(t, md5Locator.Key(uri), 32)
	assert.NotEqual(t, xxLocator.Key(uri), xxLocator.Key(uri+"x"))
}
