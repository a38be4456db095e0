package protocol

// Kind identifies one facet carried by a decoded frame.
type Kind uint8

const (
	KindRawAmplitude Kind = iota + 1
	KindSignalQuality
	KindPowerBands
	KindAttention
	KindMeditation
)

func (k Kind) String() string {
	switch k {
	case KindRawAmplitude:
		return "raw_amplitude"
	case KindSignalQuality:
		return "signal_quality"
	case KindPowerBands:
		return "power_bands"
	case KindAttention:
		return "attention"
	case KindMeditation:
		return "meditation"
	default:
		return "unknown"
	}
}

// Message is one classified facet, delivered in arrival order.
type Message interface {
	Kind() Kind
	Time() float64
}

// RawAmplitude is one raw EEG amplitude update.
type RawAmplitude struct {
	Timestamp float64
	Amplitude int
}

func (m RawAmplitude) Kind() Kind    { return KindRawAmplitude }
func (m RawAmplitude) Time() float64 { return m.Timestamp }

// SignalQuality reports headset contact quality; zero means a clean signal.
type SignalQuality struct {
	Timestamp       float64
	PoorSignalLevel int
}

func (m SignalQuality) Kind() Kind    { return KindSignalQuality }
func (m SignalQuality) Time() float64 { return m.Timestamp }

// PowerBands carries the six frequency-band amplitudes of one update.
type PowerBands struct {
	Timestamp float64
	LowAlpha  int
	HighAlpha int
	LowBeta   int
	HighBeta  int
	LowGamma  int
	HighGamma int
}

func (m PowerBands) Kind() Kind    { return KindPowerBands }
func (m PowerBands) Time() float64 { return m.Timestamp }

// Attention is the eSense attention reading of one update.
type Attention struct {
	Timestamp float64
	Attention int
}

func (m Attention) Kind() Kind    { return KindAttention }
func (m Attention) Time() float64 { return m.Timestamp }

// Meditation is the eSense meditation reading; the device emits it as the
// closing element of each coherent update group.
type Meditation struct {
	Timestamp  float64
	Meditation int
}

func (m Meditation) Kind() Kind    { return KindMeditation }
func (m Meditation) Time() float64 { return m.Timestamp }
