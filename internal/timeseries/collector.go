// Package timeseries accumulates the two ordered series reconstructed
// from one capture: raw amplitude samples and correlated power-band
// records.
package timeseries

// RawSample is one raw amplitude reading, produced one-to-one from raw
// amplitude messages in arrival order.
type RawSample struct {
	Timestamp float64
	Amplitude int
}

// PowerBandRecord is one correlated group: signal quality, six band
// powers and both eSense values sharing a single timestamp.
type PowerBandRecord struct {
	Timestamp       float64
	PoorSignalLevel int
	LowAlpha        int
	HighAlpha       int
	LowBeta         int
	HighBeta        int
	LowGamma        int
	HighGamma       int
	Attention       int
	Meditation      int
}

// Collector holds the append-only series for one capture session.
// Emission order is preserved exactly; nothing is reordered or
// deduplicated.
type Collector struct {
	rawSamples   []RawSample
	powerRecords []PowerBandRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AddRawSample(s RawSample) {
	c.rawSamples = append(c.rawSamples, s)
}

func (c *Collector) AddPowerRecord(r PowerBandRecord) {
	c.powerRecords = append(c.powerRecords, r)
}

// Snapshot is a read-only copy of the collected series, taken for export
// once capture ends.
type Snapshot struct {
	RawSamples   []RawSample
	PowerRecords []PowerBandRecord
}

// Snapshot copies the current series so later mutation of either side
// cannot leak across.
func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		RawSamples:   make([]RawSample, len(c.rawSamples)),
		PowerRecords: make([]PowerBandRecord, len(c.powerRecords)),
	}
	copy(snap.RawSamples, c.rawSamples)
	copy(snap.PowerRecords, c.powerRecords)
	return snap
}
