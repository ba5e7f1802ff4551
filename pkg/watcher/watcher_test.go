package watcher_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cjfreeze/stl/pkg/watcher"
)

func TestWatcherTriggersOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0o644))

	fw, err := watcher.NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 1)
	require.NoError(t, fw.Watch([]string{path}, func(p string) {
		select {
		case changed <- p:
		default:
		}
	}))
	fw.Start()

	require.NoError(t, os.WriteFile(path, []byte("solid b\nendsolid b\n"), 0o644))

	select {
	case p := <-changed:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		require.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0o644))

	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) {
		calls.Add(1)
	}))
	fw.Start()

	// A burst of writes inside the debounce window collapses into one
	// notification.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("solid b\nendsolid b\n"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 5*time.Second, 50*time.Millisecond)

	// No further notification once the burst has been delivered.
	time.Sleep(500 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}

func TestWatcherRemoveAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0o644))

	fw, err := watcher.NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) {
		calls.Add(1)
	}))
	fw.Start()
	require.NoError(t, fw.RemoveAll())

	require.NoError(t, os.WriteFile(path, []byte("solid b\nendsolid b\n"), 0o644))
	time.Sleep(300 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestWatcherMissingFile(t *testing.T) {
	fw, err := watcher.NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing.stl")}, func(string) {})
	require.Error(t, err)
}
