package mapdata

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestWatcherReportsMapChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "level.tmx")
	if err := os.WriteFile(path, []byte("<map/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %s, want %s", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a new map file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

// Close must not race the run goroutine's sends: the channels are closed by
// run on its way out, never while a send is pending.
func TestWatcherCloseDuringEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// keep events flowing while nobody drains the channel
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			name := filepath.Join(dir, "burst.tmx")
			_ = os.WriteFile(name, []byte{byte(i)}, 0o644)
			time.Sleep(time.Millisecond)
		}
	}()

	time.Sleep(50 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	close(stop)
	wg.Wait()

	// both channels end up closed once run exits
	deadline := time.After(5 * time.Second)
	for open := true; open; {
		select {
		case _, ok := <-w.Events:
			open = ok
		case <-deadline:
			t.Fatal("Events never closed after Close")
		}
	}
	select {
	case _, ok := <-w.Errors:
		if ok {
			t.Fatal("unexpected error after Close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Errors never closed after Close")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestIsMapFile(t *testing.T) {
	for _, path := range []string{"a.tmx", "b.TSX", "maps/act1_village.tmx"} {
		if !isMapFile(path) {
			t.Errorf("%s should count as a map file", path)
		}
	}
	for _, path := range []string{"a.png", "notes.txt", "tmx"} {
		if isMapFile(path) {
			t.Errorf("%s should not count as a map file", path)
		}
	}
}
