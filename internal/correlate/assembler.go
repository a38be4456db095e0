// Package correlate stitches the classified message stream back into
// domain records. The device emits the members of one power-band group as
// separate messages sharing a timestamp, with meditation always closing
// the group.
package correlate

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mindwire/eegctl/internal/protocol"
	"github.com/mindwire/eegctl/internal/timeseries"
)

// CorrelationError reports a complete group whose four timestamps
// disagree. The bridge is expected to emit every group with one shared
// timestamp, so a mismatch is a protocol assumption violation and fatal
// to the capture.
type CorrelationError struct {
	SignalQuality float64
	PowerBands    float64
	Attention     float64
	Meditation    float64
}

func (e *CorrelationError) Error() string {
	return fmt.Sprintf(
		"correlate: group timestamps disagree: poorSignalLevel=%.6f eegPower=%.6f attention=%.6f meditation=%.6f",
		e.SignalQuality, e.PowerBands, e.Attention, e.Meditation,
	)
}

// Sink receives completed records in emission order.
type Sink interface {
	AddRawSample(timeseries.RawSample)
	AddPowerRecord(timeseries.PowerBandRecord)
}

// Assembler consumes the classified message stream in order. Raw
// amplitude messages pass straight through to the sink; the three pending
// slots each hold at most one buffered message (a duplicate of a slot's
// kind overwrites, last value wins) until a meditation message closes the
// group. The assembler owns its slot state exclusively and must be driven
// by a single logical sequence of Process calls.
type Assembler struct {
	sink Sink

	pendingSignalQuality *protocol.SignalQuality
	pendingPowerBands    *protocol.PowerBands
	pendingAttention     *protocol.Attention
}

func NewAssembler(sink Sink) *Assembler {
	return &Assembler{sink: sink}
}

// Process consumes one message in arrival order.
func (a *Assembler) Process(msg protocol.Message) error {
	switch m := msg.(type) {
	case protocol.RawAmplitude:
		a.sink.AddRawSample(timeseries.RawSample{Timestamp: m.Timestamp, Amplitude: m.Amplitude})
	case protocol.SignalQuality:
		a.pendingSignalQuality = &m
	case protocol.PowerBands:
		a.pendingPowerBands = &m
	case protocol.Attention:
		a.pendingAttention = &m
	case protocol.Meditation:
		return a.closeGroup(m)
	}
	return nil
}

// ProcessAll drives a complete message batch through the assembler,
// stopping at the first failure.
func (a *Assembler) ProcessAll(msgs []protocol.Message) error {
	for _, msg := range msgs {
		if err := a.Process(msg); err != nil {
			return err
		}
	}
	return nil
}

// closeGroup finishes the group the meditation message m belongs to. The
// slots are cleared on every path so a partial leftover never leaks into
// the next group.
func (a *Assembler) closeGroup(m protocol.Meditation) error {
	defer a.reset()

	if a.pendingSignalQuality == nil || a.pendingPowerBands == nil || a.pendingAttention == nil {
		// Usually the first group of a capture, opened before the
		// connection was: drop it silently.
		log.Debug().Float64("timestamp", m.Timestamp).Msg("correlate: dropping incomplete group")
		return nil
	}

	sq, pb, at := *a.pendingSignalQuality, *a.pendingPowerBands, *a.pendingAttention
	if sq.Timestamp != m.Timestamp || pb.Timestamp != m.Timestamp || at.Timestamp != m.Timestamp {
		return &CorrelationError{
			SignalQuality: sq.Timestamp,
			PowerBands:    pb.Timestamp,
			Attention:     at.Timestamp,
			Meditation:    m.Timestamp,
		}
	}

	a.sink.AddPowerRecord(timeseries.PowerBandRecord{
		Timestamp:       m.Timestamp,
		PoorSignalLevel: sq.PoorSignalLevel,
		LowAlpha:        pb.LowAlpha,
		HighAlpha:       pb.HighAlpha,
		LowBeta:         pb.LowBeta,
		HighBeta:        pb.HighBeta,
		LowGamma:        pb.LowGamma,
		HighGamma:       pb.HighGamma,
		Attention:       at.Attention,
		Meditation:      m.Meditation,
	})
	return nil
}

func (a *Assembler) reset() {
	a.pendingSignalQuality = nil
	a.pendingPowerBands = nil
	a.pendingAttention = nil
}
