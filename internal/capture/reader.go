package capture

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// ReadUntil accumulates chunks from r until the deadline passes. Each
// receive blocks, so the effective capture window can overrun the
// requested duration by up to one receive call's latency; the deadline is
// computed once by the caller and only checked between receives. An
// exhausted stream (EOF or a closed connection) ends input early and is
// not an error.
func ReadUntil(r io.Reader, deadline time.Time, chunkBytes int) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, chunkBytes)
	for time.Now().Before(deadline) {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return buf, nil
			}
			return nil, fmt.Errorf("capture: receive failed: %w", err)
		}
	}
	return buf, nil
}
