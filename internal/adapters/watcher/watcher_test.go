package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/watcher"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/thumbs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const eventTimeout = 5 * time.Second

func startWatcher(t *testing.T, root string, recursive bool) <-chan ports.WatchEvent {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(log)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root, recursive))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	ch := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(ch)
		for ev := range w.Events() {
			ch <- ev
		}
	}()
	return ch
}

func waitFor(t *testing.T, ch <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "event stream closed before %s was seen", path)
			assert.NotEqual(t, ".txt", filepath.Ext(ev.Path), "non-image event reported")
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsImageChanges(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root, false)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.png"), []byte("x"), 0o600))

	img := filepath.Join(root, "a.png")
	require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))
	ev := waitFor(t, events, img)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)

	require.NoError(t, os.Remove(img))
	for {
		ev = waitFor(t, events, img)
		if ev.Operation == ports.OpRemove {
			break
		}
	}
}

func TestWatcher_RecursiveFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "existing")
	require.NoError(t, os.Mkdir(existing, 0o750))

	events := startWatcher(t, root, true)

	img := filepath.Join(existing, "a.jpg")
	require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))
	waitFor(t, events, img)

	created := filepath.Join(root, "created")
	require.NoError(t, os.Mkdir(created, 0o750))

	// The new directory is added asynchronously; keep touching until it is watched.
	img = filepath.Join(created, "b.webp")
	deadline := time.Now().Add(eventTimeout)
	for {
		require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))
		select {
		case ev := <-events:
			if ev.Path == img {
				return
			}
		case <-time.After(50 * time.Millisecond):
		}
		if time.Now().After(deadline) {
			t.Fatalf("no event for %s", img)
		}
	}
}

func TestWatcher_StartErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	t.Cleanup(func() { _ = w.Stop() })

	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"), false)
	require.ErrorContains(t, err, domain.ErrWatchFailed.Error())

	file := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	err = w.Start(context.Background(), file, false)
	require.ErrorIs(t, err, domain.ErrWatchFailed)

	require.NoError(t, w.Start(context.Background(), t.TempDir(), false))
	err = w.Start(context.Background(), t.TempDir(), false)
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Stop())
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	require.NoError(t, w.Start(context.Background(), t.TempDir(), false))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(eventTimeout):
		t.Fatal("events did not end after Stop")
	}
}
