package sensor

import (
	"fmt"
	"time"

	"sensord/internal/common/randutil"
)

const (
	// deviceIDWidth bounds the numeric suffix of generated device ids.
	deviceIDWidth = 10
	// faultOneIn: roughly 1% of readings simulate a sensor fault.
	faultOneIn = 100
)

// Device models a single simulated sensor producing successive readings.
// Not safe for concurrent use; a device belongs to one simulator.
type Device struct {
	id   string
	kind Kind
	prof profile
	rng  *randutil.Source
}

// NewDevice constructs a device of the given kind. The seed fixes the id
// suffix and the reading sequence, which keeps tests deterministic.
func NewDevice(kind Kind, seed uint32) *Device {
	d := &Device{
		kind: kind,
		prof: kindProfile(kind),
		rng:  randutil.New(seed),
	}
	d.id = fmt.Sprintf("%s_%d", kind, d.rng.Uniform(deviceIDWidth))
	return d
}

// ID returns the device identifier, e.g. "CoSensor_7".
func (d *Device) ID() string { return d.id }

// Kind returns the device's sensor kind.
func (d *Device) Kind() Kind { return d.kind }

// Next produces a fresh reading stamped with the current time. One in
// faultOneIn readings reports the fault value instead of a measurement.
func (d *Device) Next() Reading {
	v := FaultValue
	if !d.rng.OneIn(faultOneIn) {
		v = d.prof.base + float64(d.rng.Uniform(d.prof.spread))
	}
	return Reading{
		DeviceID:  d.id,
		Kind:      d.kind,
		Timestamp: time.Now(),
		Value:     v,
	}
}
