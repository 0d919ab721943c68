package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_DebouncesWritesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	changes := make(chan string, 8)
	w := NewWatcher(path, 100*time.Millisecond, nil, func(p string) { changes <- p })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	select {
	case got := <-changes:
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}

	select {
	case got := <-changes:
		t.Fatalf("burst produced a second notification for %s", got)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "content.yaml"), 0, nil, func(string) {})
	err := w.Run(context.Background())
	assert.ErrorContains(t, err, "watching")
}
