package thumbnailer_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/cas"
	"go.trai.ch/thumbs/internal/adapters/codec"
	"go.trai.ch/thumbs/internal/adapters/fs"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports/mocks"
	"go.trai.ch/thumbs/internal/engine/thumbnailer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const generator = "thumbs-test"

type fixture struct {
	cacheRoot string
	srcDir    string
	store     *cas.Store
	builder   *thumbnailer.Builder
}

func newFixture(t *testing.T, failMarkers bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &fixture{cacheRoot: t.TempDir(), srcDir: t.TempDir()}
	c := codec.New()
	f.store = cas.NewStore(c)
	f.builder = thumbnailer.New(
		fs.NewLocator(f.cacheRoot, domain.DigestMD5, generator),
		f.store,
		c,
		logger,
		thumbnailer.Options{Generator: generator, FailMarkers: failMarkers},
	)
	return f
}

func (f *fixture) writeSource(t *testing.T, name string, w, h int, fill uint8, mtime time.Time) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: fill, G: uint8(x), B: uint8(y), A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(f.srcDir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func (f *fixture) cacheFiles(t *testing.T) []string {
	t.Helper()
	var files []string
	_ = filepath.WalkDir(f.cacheRoot, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func TestBuilder_GeneratesAndCaches(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	mtime := time.Unix(1700000000, 0)
	src := f.writeSource(t, "a.png", 400, 300, 10, mtime)

	first := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.NoError(t, first.Err)
	assert.Equal(t, domain.StatusGenerated, first.Status)
	assert.Equal(t, image.Rect(0, 0, 128, 96), first.Image.Bounds())
	require.FileExists(t, first.Location.Path)

	entry, err := f.store.Read(first.Location)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), entry.SourceMTime)
	assert.Equal(t, 400, entry.SourceWidth)
	assert.Equal(t, 300, entry.SourceHeight)
	assert.Equal(t, generator, entry.Generator)

	before, err := os.ReadFile(first.Location.Path)
	require.NoError(t, err)
	beforeInfo, err := os.Stat(first.Location.Path)
	require.NoError(t, err)

	second := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.NoError(t, second.Err)
	assert.Equal(t, domain.StatusCached, second.Status)
	assert.Equal(t, image.Rect(0, 0, 128, 96), second.Image.Bounds())

	after, err := os.ReadFile(first.Location.Path)
	require.NoError(t, err)
	afterInfo, err := os.Stat(first.Location.Path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a cache hit never rewrites the file")
	assert.True(t, os.SameFile(beforeInfo, afterInfo))
}

func TestBuilder_RebuildsStaleEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := f.writeSource(t, "a.png", 300, 300, 10, time.Unix(1700000000, 0))

	first := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.Equal(t, domain.StatusGenerated, first.Status)
	oldEntry, err := f.store.Read(first.Location)
	require.NoError(t, err)

	f.writeSource(t, "a.png", 300, 300, 250, time.Unix(1700000100, 0))

	second := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.NoError(t, second.Err)
	assert.Equal(t, domain.StatusGenerated, second.Status)

	newEntry, err := f.store.Read(second.Location)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000100), newEntry.SourceMTime)
	assert.NotEqual(t, oldEntry.Image.At(5, 5), newEntry.Image.At(5, 5))
}

func TestBuilder_LargeTier(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := f.writeSource(t, "tall.png", 300, 600, 1, time.Unix(1, 0))

	got := f.builder.Thumbnail(t.Context(), src, domain.TierLarge)
	require.NoError(t, got.Err)
	assert.Equal(t, image.Rect(0, 0, 128, 256), got.Image.Bounds())
	assert.Equal(t, filepath.Join(f.cacheRoot, "thumbnails", "large"), filepath.Dir(got.Location.Path))
}

func TestBuilder_SmallImageIsNotUpscaled(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := f.writeSource(t, "icon.png", 32, 16, 1, time.Unix(1, 0))

	got := f.builder.Thumbnail(t.Context(), src, domain.TierLarge)
	require.NoError(t, got.Err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), got.Image.Bounds())
}

func TestBuilder_UnreadableSourceWritesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)

	got := f.builder.Thumbnail(t.Context(), filepath.Join(f.srcDir, "missing.png"), domain.TierNormal)
	assert.Equal(t, domain.StatusUnreadable, got.Status)
	require.ErrorIs(t, got.Err, domain.ErrSourceUnreadable)
	assert.Equal(t, thumbnailer.FailureIcon(domain.TierNormal), got.Image)
	assert.Empty(t, f.cacheFiles(t))

	got = f.builder.Thumbnail(t.Context(), f.srcDir, domain.TierNormal)
	assert.Equal(t, domain.StatusUnreadable, got.Status, "directories are not images")
	assert.Empty(t, f.cacheFiles(t))
}

func TestBuilder_PermissionDenied(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}

	f := newFixture(t, true)
	src := f.writeSource(t, "secret.png", 10, 10, 1, time.Unix(1, 0))
	require.NoError(t, os.Chmod(src, 0))

	got := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	assert.Equal(t, domain.StatusUnreadable, got.Status)
	assert.Empty(t, f.cacheFiles(t))
}

func TestBuilder_UndecodableSource(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := filepath.Join(f.srcDir, "broken.jpg")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o600))

	got := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	assert.Equal(t, domain.StatusFailed, got.Status)
	require.ErrorIs(t, got.Err, domain.ErrDecodeUnsupported)
	assert.Equal(t, image.Rect(0, 0, 128, 128), got.Image.Bounds())
	assert.Empty(t, f.cacheFiles(t), "failures are not persisted without markers")
}

func TestBuilder_FailMarkers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	src := filepath.Join(f.srcDir, "broken.png")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o600))
	mtime := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	first := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	assert.Equal(t, domain.StatusFailed, first.Status)
	require.FileExists(t, first.Location.FailPath)
	assert.NoFileExists(t, first.Location.Path)

	// Valid content with the old mtime keeps failing, the marker is authoritative.
	f.writeSource(t, "broken.png", 20, 20, 1, mtime)
	second := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	assert.Equal(t, domain.StatusFailed, second.Status)
	assert.ErrorContains(t, second.Err, "failure marker")

	// A new mtime retries the decode.
	f.writeSource(t, "broken.png", 20, 20, 1, mtime.Add(time.Second))
	third := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.NoError(t, third.Err)
	assert.Equal(t, domain.StatusGenerated, third.Status)
}

func TestBuilder_CorruptCacheIsRebuilt(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := f.writeSource(t, "a.png", 50, 50, 1, time.Unix(5, 0))

	first := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.Equal(t, domain.StatusGenerated, first.Status)
	require.NoError(t, os.WriteFile(first.Location.Path, []byte("garbage"), 0o600))

	second := f.builder.Thumbnail(t.Context(), src, domain.TierNormal)
	require.NoError(t, second.Err)
	assert.Equal(t, domain.StatusGenerated, second.Status)

	_, err := f.store.Read(second.Location)
	require.NoError(t, err)
}

func TestBuilder_StoreWriteFailureStillReturnsImage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockThumbnailStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "a.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 200, 100))))
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0o600))

	writeErr := zerr.Wrap(zerr.New("disk full"), domain.ErrStoreWriteFailed.Error())
	store.EXPECT().Read(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrCacheMiss, "absent"))
	store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(writeErr)
	logger.EXPECT().Error(writeErr)

	builder := thumbnailer.New(
		fs.NewLocator(t.TempDir(), domain.DigestMD5, generator),
		store,
		codec.New(),
		logger,
		thumbnailer.Options{Generator: generator},
	)

	got := builder.Thumbnail(t.Context(), src, domain.TierNormal)
	assert.Equal(t, domain.StatusGenerated, got.Status)
	assert.Equal(t, image.Rect(0, 0, 128, 64), got.Image.Bounds())
	require.ErrorIs(t, got.Err, writeErr)
}

func TestBuilder_CanceledContext(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	src := f.writeSource(t, "a.png", 10, 10, 1, time.Unix(1, 0))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	got := f.builder.Thumbnail(ctx, src, domain.TierNormal)
	assert.Equal(t, domain.StatusFailed, got.Status)
	require.ErrorIs(t, got.Err, context.Canceled)
	assert.Empty(t, f.cacheFiles(t))
}

func TestFailureIcon(t *testing.T) {
	t.Parallel()

	normal := thumbnailer.FailureIcon(domain.TierNormal)
	large := thumbnailer.FailureIcon(domain.TierLarge)

	assert.Equal(t, image.Rect(0, 0, 128, 128), normal.Bounds())
	assert.Equal(t, image.Rect(0, 0, 256, 256), large.Bounds())
	assert.Same(t, normal, thumbnailer.FailureIcon(domain.TierNormal))

	_, _, _, a := normal.At(0, 0).RGBA()
	assert.Zero(t, a, "corners are transparent")
	_, _, _, a = normal.At(64, 64).RGBA()
	assert.NotZero(t, a)
}
