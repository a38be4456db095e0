// Package capture drives one timed acquisition from the headset bridge:
// dial, read until the deadline, then run the batch decode pipeline over
// the accumulated buffer.
package capture

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindwire/eegctl/internal/config"
	"github.com/mindwire/eegctl/internal/correlate"
	"github.com/mindwire/eegctl/internal/observability"
	"github.com/mindwire/eegctl/internal/protocol"
	"github.com/mindwire/eegctl/internal/protocol/frame"
	"github.com/mindwire/eegctl/internal/timeseries"
)

// Session captures one fixed-duration window from the bridge.
type Session struct {
	cfg config.CaptureConfig
}

func NewSession(cfg config.CaptureConfig) *Session {
	return &Session{cfg: cfg}
}

// Run connects to the bridge, reads for the configured duration and
// returns the reconstructed series. Decode and correlation failures are
// fatal: no partial result is returned.
func (s *Session) Run() (timeseries.Snapshot, error) {
	conn, err := net.DialTimeout("tcp", s.cfg.Addr, s.cfg.ConnectTimeout())
	if err != nil {
		return timeseries.Snapshot{}, fmt.Errorf("capture: connect %s: %w", s.cfg.Addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(s.cfg.CaptureDuration())
	raw, err := ReadUntil(conn, deadline, s.cfg.ChunkBytes)
	if err != nil {
		return timeseries.Snapshot{}, err
	}
	log.Info().
		Str("addr", s.cfg.Addr).
		Int("bytes", len(raw)).
		Dur("window", s.cfg.CaptureDuration()).
		Msg("capture window closed")

	return Assemble(raw)
}

// Assemble runs the batch pipeline over a complete capture buffer:
// split into frames, decode facets, correlate into records. It runs in
// the caller's goroutine; the assembler state is never shared.
func Assemble(raw []byte) (timeseries.Snapshot, error) {
	frames := frame.Split(string(raw))
	observability.RecordFrames(len(frames))

	msgs, err := protocol.DecodeFrames(frames)
	if err != nil {
		observability.RecordFailure("decode")
		return timeseries.Snapshot{}, err
	}

	collector := timeseries.NewCollector()
	assembler := correlate.NewAssembler(collector)
	for _, msg := range msgs {
		observability.RecordFacet(msg.Kind().String())
		if err := assembler.Process(msg); err != nil {
			observability.RecordFailure("correlate")
			return timeseries.Snapshot{}, err
		}
	}

	snap := collector.Snapshot()
	observability.RecordSeries(len(snap.RawSamples), len(snap.PowerRecords))
	log.Debug().
		Int("frames", len(frames)).
		Int("facets", len(msgs)).
		Int("raw_samples", len(snap.RawSamples)).
		Int("power_records", len(snap.PowerRecords)).
		Msg("capture buffer assembled")
	return snap, nil
}
