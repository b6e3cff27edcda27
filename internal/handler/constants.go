package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Service identity reported by the banner and health endpoints.
const (
	ServiceName    = "Content API"
	ServiceVersion = "1.0.0"
)
