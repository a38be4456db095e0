package protocol

import (
	"errors"
	"testing"
)

func TestDecodeFrameRawAmplitude(t *testing.T) {
	msgs, err := DecodeFrame(`{"rawEeg":-42,"timestamp":1.25}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(msgs))
	}
	m, ok := msgs[0].(RawAmplitude)
	if !ok {
		t.Fatalf("expected RawAmplitude, got %T", msgs[0])
	}
	if m.Timestamp != 1.25 || m.Amplitude != -42 {
		t.Fatalf("unexpected facet: %+v", m)
	}
}

func TestDecodeFrameSignalQuality(t *testing.T) {
	msgs, err := DecodeFrame(`{"poorSignalLevel":0,"timestamp":1.0}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(msgs))
	}
	m, ok := msgs[0].(SignalQuality)
	if !ok {
		t.Fatalf("expected SignalQuality, got %T", msgs[0])
	}
	if m.PoorSignalLevel != 0 || m.Timestamp != 1.0 {
		t.Fatalf("unexpected facet: %+v", m)
	}
}

func TestDecodeFramePowerBands(t *testing.T) {
	raw := `{"eegPower":{"lowAlpha":10,"highAlpha":20,"lowBeta":30,"highBeta":40,"lowGamma":50,"highGamma":60},"timestamp":1.0}`
	msgs, err := DecodeFrame(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(msgs))
	}
	m, ok := msgs[0].(PowerBands)
	if !ok {
		t.Fatalf("expected PowerBands, got %T", msgs[0])
	}
	want := PowerBands{Timestamp: 1.0, LowAlpha: 10, HighAlpha: 20, LowBeta: 30, HighBeta: 40, LowGamma: 50, HighGamma: 60}
	if m != want {
		t.Fatalf("facet mismatch: got=%+v want=%+v", m, want)
	}
}

func TestDecodeFrameESenseBothFacets(t *testing.T) {
	msgs, err := DecodeFrame(`{"eSense":{"attention":55,"meditation":65},"timestamp":2.5}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 facets, got %d", len(msgs))
	}
	at, ok := msgs[0].(Attention)
	if !ok || at.Attention != 55 {
		t.Fatalf("expected Attention first, got %T %+v", msgs[0], msgs[0])
	}
	md, ok := msgs[1].(Meditation)
	if !ok || md.Meditation != 65 {
		t.Fatalf("expected Meditation second, got %T %+v", msgs[1], msgs[1])
	}
}

func TestDecodeFrameZeroValueFacetIsPresent(t *testing.T) {
	// Presence is keyed on the field, not on a non-zero value.
	msgs, err := DecodeFrame(`{"rawEeg":0,"timestamp":0}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(msgs))
	}
}

func TestDecodeFrameNoRecognizedKeys(t *testing.T) {
	msgs, err := DecodeFrame(`{"blinkStrength":10,"timestamp":1.0}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no facets, got %v", msgs)
	}
}

func TestDecodeFrameMalformed(t *testing.T) {
	_, err := DecodeFrame(`{"rawEeg":`)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Unwrap() == nil {
		t.Fatalf("expected wrapped cause")
	}
}

func TestDecodeFramesPreservesFrameOrder(t *testing.T) {
	frames := []string{
		`{"rawEeg":1,"timestamp":0.1}`,
		`{"poorSignalLevel":26,"timestamp":0.2}`,
		`{"rawEeg":2,"timestamp":0.3}`,
	}
	msgs, err := DecodeFrames(frames)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantKinds := []Kind{KindRawAmplitude, KindSignalQuality, KindRawAmplitude}
	if len(msgs) != len(wantKinds) {
		t.Fatalf("expected %d facets, got %d", len(wantKinds), len(msgs))
	}
	for i, k := range wantKinds {
		if msgs[i].Kind() != k {
			t.Fatalf("facet %d kind mismatch: got=%v want=%v", i, msgs[i].Kind(), k)
		}
	}
}

func TestDecodeFramesAbortsOnFirstBadFrame(t *testing.T) {
	frames := []string{`{"rawEeg":1,"timestamp":0.1}`, `garbage`}
	_, err := DecodeFrames(frames)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if decodeErr.Frame != "garbage" {
		t.Fatalf("unexpected offending frame: %q", decodeErr.Frame)
	}
}
