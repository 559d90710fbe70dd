package sensor

import "time"

// Kind discriminates the closed set of sensor types. Consumers switch on the
// discriminant rather than probing the payload type.
type Kind int

const (
	KindCO Kind = iota
	KindTemperature
	KindPressure
)

func (k Kind) String() string {
	switch k {
	case KindCO:
		return "CoSensor"
	case KindTemperature:
		return "TempSensor"
	case KindPressure:
		return "PressureSensor"
	default:
		return "UnknownSensor"
	}
}

// FaultValue is the value reported by a faulty sensor reading.
const FaultValue = 0.0

// Reading is one sensor measurement. Readings are published by value and are
// immutable once enqueued.
type Reading struct {
	DeviceID  string
	Kind      Kind
	Timestamp time.Time
	Value     float64
}

// IsFault reports whether the reading carries the fault value.
func (r Reading) IsFault() bool { return r.Value == FaultValue }

// profile is the per-kind value model: readings fall in
// [base, base+spread), in kind-specific units.
type profile struct {
	base   float64
	spread int
}

func kindProfile(k Kind) profile {
	switch k {
	case KindCO:
		return profile{base: 50.0, spread: 100} // ppm
	case KindTemperature:
		return profile{base: 15.0, spread: 15} // degrees Celsius
	case KindPressure:
		return profile{base: 1013.25, spread: 20} // hPa
	default:
		return profile{}
	}
}
