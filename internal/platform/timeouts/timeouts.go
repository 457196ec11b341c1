// Package timeouts defines shared timeout constants for the site processes.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// HealthProbe caps a single gRPC health check round trip.
const HealthProbe = time.Second

// TrackingFlush bounds how long the analytics dispatcher drains queued
// events after cancellation.
const TrackingFlush = 3 * time.Second
