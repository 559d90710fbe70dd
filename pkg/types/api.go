// Package types holds the public JSON payloads served by the HTTP API.
package types

// StatusResponse summarizes the pipeline for GET /status.
type StatusResponse struct {
	// Bus lifecycle state (stopped, running).
	// example: running
	State string `json:"state" example:"running"`
	// Events currently waiting for dispatch.
	// example: 0
	QueueDepth int `json:"queue_depth" example:"0"`
	// Registered handlers.
	// example: 2
	Handlers int `json:"handlers" example:"2"`
	// Total events accepted by publish.
	// example: 1042
	EventsPublished uint64 `json:"events_published" example:"1042"`
	// Total events fully dispatched to all handlers.
	// example: 1042
	EventsDelivered uint64 `json:"events_delivered" example:"1042"`
	// Seconds since the process started.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// One entry per managed simulator.
	Simulators []SimulatorStatus `json:"simulators"`
}

// SimulatorStatus summarizes one simulator for /status.
type SimulatorStatus struct {
	// Device identifier.
	// example: CoSensor_7
	DeviceID string `json:"device_id" example:"CoSensor_7"`
	// Sensor kind.
	// example: CoSensor
	Kind string `json:"kind" example:"CoSensor"`
	// Publish interval in seconds.
	// example: 10
	IntervalSeconds float64 `json:"interval_seconds" example:"10"`
	// Whether the owning fleet is running.
	// example: true
	Running bool `json:"running" example:"true"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: failed to encode response
	Error string `json:"error" example:"failed to encode response"`
	// HTTP status code.
	// example: 500
	Code int `json:"code" example:"500"`
}
