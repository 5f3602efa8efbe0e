package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/watcher"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesSorted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/photos/c.png")
		d.Add("/photos/a.png")
		d.Add("/photos/c.png")
		d.Add("/photos/b.png")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		got := rec.get()
		require.Len(t, got, 1)
		assert.Equal(t, []string{"/photos/a.png", "/photos/b.png", "/photos/c.png"}, got[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/photos/a.png")
		time.Sleep(60 * time.Millisecond)
		d.Add("/photos/b.png")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.get())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.get(), 1)
	})
}

func TestDebouncer_MaxWait(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback, watcher.WithMaxWait(250*time.Millisecond))

		// Events keep arriving inside the quiet window, the cap still delivers at 250ms.
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			d.Add("/photos/" + name + ".png")
			time.Sleep(60 * time.Millisecond)
		}
		synctest.Wait()

		got := rec.get()
		require.Len(t, got, 1)
		assert.Len(t, got[0], 5)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Flush()
		assert.Empty(t, rec.get())

		d.Add("/photos/a.png")
		d.Flush()
		require.Len(t, rec.get(), 1)

		// The stopped window must not deliver again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.get(), 1)
	})
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/photos/a.png")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.get(), 1)

		d.Flush()
		assert.Len(t, rec.get(), 1)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/photos/a.png")
		d.Stop()
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.get())

		d.Add("/photos/b.png")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		got := rec.get()
		require.Len(t, got, 1)
		assert.Equal(t, []string{"/photos/b.png"}, got[0])
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/photos/a.png")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("/photos/b.png")
		d.Flush()
	})
}
