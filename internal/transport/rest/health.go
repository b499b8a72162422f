package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// bucketChecker probes the object store bucket that holds uploaded media.
type bucketChecker interface {
	CheckBucket(ctx context.Context, bucket string) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	store   bucketChecker
	bucket  string
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, store bucketChecker, bucket, version string) *HealthHandler {
	return &HealthHandler{db: db, store: store, bucket: bucket, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the database and the media bucket
// answer, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Components: onlyDown(components),
		Timestamp:  time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	healthy := true
	probe := func(name string, fn func(context.Context) error) {
		start := time.Now()
		if err := fn(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			healthy = false
			return
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	probe("database", h.db.Ping)
	probe("object_store", func(ctx context.Context) error {
		return h.store.CheckBucket(ctx, h.bucket)
	})
	return components, healthy
}

func onlyDown(components map[string]CompStatus) map[string]CompStatus {
	down := make(map[string]CompStatus)
	for name, c := range components {
		if c.Status != "ok" {
			down[name] = c
		}
	}
	return down
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
