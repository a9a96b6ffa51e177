package server

import "context"

// HealthChecker answers the /health probe. The Postgres backend pings its
// pool; backends without external state use OkHealthChecker.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. Used for the Elasticsearch and
// in-memory stores, which have no liveness check of their own.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}
