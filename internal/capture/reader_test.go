package capture

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// failingReader yields some bytes then a non-EOF error.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

// panicReader fails the test if anything tries to receive from it.
type panicReader struct{ t *testing.T }

func (r panicReader) Read([]byte) (int, error) {
	r.t.Fatal("read past deadline")
	return 0, nil
}

func TestReadUntilDrainsStreamToEOF(t *testing.T) {
	payload := strings.Repeat("x", 1000)
	got, err := ReadUntil(strings.NewReader(payload), time.Now().Add(time.Minute), 256)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, []byte(payload)) {
		t.Fatalf("payload mismatch: got %d bytes", len(got))
	}
}

func TestReadUntilExpiredDeadlineReadsNothing(t *testing.T) {
	got, err := ReadUntil(panicReader{t: t}, time.Now().Add(-time.Second), 256)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", len(got))
	}
}

func TestReadUntilAccumulatesChunks(t *testing.T) {
	payload := strings.Repeat("abc", 100)
	got, err := ReadUntil(strings.NewReader(payload), time.Now().Add(time.Minute), 7)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != payload {
		t.Fatalf("payload mismatch after chunked reads")
	}
}

func TestReadUntilPropagatesReceiveFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadUntil(&failingReader{data: []byte("partial"), err: boom}, time.Now().Add(time.Minute), 16)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped receive error, got %v", err)
	}
}
