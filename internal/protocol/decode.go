package protocol

import "encoding/json"

// wireMessage mirrors one headset bridge JSON payload. Pointer fields
// distinguish an absent key from a zero value: absence means the facet is
// not present in this frame.
type wireMessage struct {
	Timestamp       float64     `json:"timestamp"`
	RawEeg          *int        `json:"rawEeg"`
	PoorSignalLevel *int        `json:"poorSignalLevel"`
	EegPower        *wirePower  `json:"eegPower"`
	ESense          *wireESense `json:"eSense"`
}

type wirePower struct {
	LowAlpha  int `json:"lowAlpha"`
	HighAlpha int `json:"highAlpha"`
	LowBeta   int `json:"lowBeta"`
	HighBeta  int `json:"highBeta"`
	LowGamma  int `json:"lowGamma"`
	HighGamma int `json:"highGamma"`
}

type wireESense struct {
	Attention  *int `json:"attention"`
	Meditation *int `json:"meditation"`
}

// DecodeFrame parses one frame and returns every facet it carries, in
// fixed inspection order: rawEeg, poorSignalLevel, eegPower,
// eSense.attention, eSense.meditation. A frame with no recognized keys
// yields an empty slice, not an error.
func DecodeFrame(raw string) ([]Message, error) {
	var w wireMessage
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, &DecodeError{Frame: raw, Cause: err}
	}

	var msgs []Message
	if w.RawEeg != nil {
		msgs = append(msgs, RawAmplitude{Timestamp: w.Timestamp, Amplitude: *w.RawEeg})
	}
	if w.PoorSignalLevel != nil {
		msgs = append(msgs, SignalQuality{Timestamp: w.Timestamp, PoorSignalLevel: *w.PoorSignalLevel})
	}
	if w.EegPower != nil {
		msgs = append(msgs, PowerBands{
			Timestamp: w.Timestamp,
			LowAlpha:  w.EegPower.LowAlpha,
			HighAlpha: w.EegPower.HighAlpha,
			LowBeta:   w.EegPower.LowBeta,
			HighBeta:  w.EegPower.HighBeta,
			LowGamma:  w.EegPower.LowGamma,
			HighGamma: w.EegPower.HighGamma,
		})
	}
	if w.ESense != nil {
		if w.ESense.Attention != nil {
			msgs = append(msgs, Attention{Timestamp: w.Timestamp, Attention: *w.ESense.Attention})
		}
		if w.ESense.Meditation != nil {
			msgs = append(msgs, Meditation{Timestamp: w.Timestamp, Meditation: *w.ESense.Meditation})
		}
	}
	return msgs, nil
}

// DecodeFrames decodes a frame sequence, flattening facets while
// preserving frame order. The first undecodable frame aborts the batch.
func DecodeFrames(frames []string) ([]Message, error) {
	msgs := make([]Message, 0, len(frames))
	for _, f := range frames {
		decoded, err := DecodeFrame(f)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, decoded...)
	}
	return msgs, nil
}
