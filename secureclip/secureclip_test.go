package secureclip

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type memClipboard struct {
	mu       sync.Mutex
	contents string
	writes   int
	err      error
}

func (m *memClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.contents = text
	m.writes++
	return nil
}

func (m *memClipboard) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contents, nil
}

func TestSecureClip(t *testing.T) {
	mem := &memClipboard{}
	c := New(mem, 100*time.Millisecond)
	if err := c.Clip("test"); err != nil {
		t.Fatal(err)
	}
	contents, _ := mem.ReadAll()
	if contents != "test" {
		t.Fatal("Clip did not write to the clipboard")
	}

	time.Sleep(300 * time.Millisecond)
	contents, _ = mem.ReadAll()
	if contents != "" {
		t.Fatal("did not clear clipboard contents after timeout")
	}
}

func TestSecureClipStaggeredCalls(t *testing.T) {
	mem := &memClipboard{}
	c := New(mem, 400*time.Millisecond)
	if err := c.Clip("test1"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := c.Clip("test2"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	contents, _ := mem.ReadAll()
	if contents != "test2" {
		t.Fatal("clipboard prematurely cleared")
	}
	time.Sleep(400 * time.Millisecond)
	contents, _ = mem.ReadAll()
	if contents != "" {
		t.Fatal("clipboard was not cleared")
	}
}

func TestSecureClipEmpty(t *testing.T) {
	mem := &memClipboard{contents: "previous"}
	c := New(mem, time.Minute)
	if err := c.Clip(""); err != nil {
		t.Fatal(err)
	}
	if mem.writes != 0 || mem.contents != "previous" {
		t.Fatal("empty Clip should not touch the clipboard")
	}
}

func TestSecureClipNoTimeout(t *testing.T) {
	mem := &memClipboard{}
	c := New(mem, 0)
	if err := c.Clip("keep"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	contents, _ := mem.ReadAll()
	if contents != "keep" {
		t.Fatal("clipboard cleared with auto-clear disabled")
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	contents, _ = mem.ReadAll()
	if contents != "" {
		t.Fatal("Clear did not clear the clipboard")
	}
}

func TestSecureClipWriteError(t *testing.T) {
	writeErr := errors.New("no clipboard utility")
	c := New(&memClipboard{err: writeErr}, time.Minute)
	err := c.Clip("test")
	if !errors.Is(err, writeErr) {
		t.Fatal("expected Clip to return the clipboard error, got", err)
	}
}
