// Package sensor provides the producing side of the pipeline: simulated
// devices that generate typed readings and publish them onto the event bus.
//
//   - reading.go: Kind discriminant, Reading payload, per-kind value model.
//   - device.go: a single simulated device producing successive readings.
//   - simulator.go: the periodic publish loop with cooperative stop.
//   - fleet.go: group lifecycle, one goroutine per simulator.
package sensor
