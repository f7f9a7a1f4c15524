package sqs

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the worker is running and polling successfully
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the worker is stopped or failing to poll
	StatusDown HealthStatus = "DOWN"
)
