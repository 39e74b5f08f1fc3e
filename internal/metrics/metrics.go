package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// dispatched commands, store operations and sync cycles. It is intentionally
// simple so tests can assert against it without an exporter.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	commands  map[string]int
	storeOps  int
	storeErrs int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		commands:  make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordCommand counts a dispatched chat command by its label.
func (r *Recorder) RecordCommand(command string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.commands[command]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCommand(command)
	}
}

// RecordStoreOp counts one store operation against an entity kind.
func (r *Recorder) RecordStoreOp(op, kind string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.storeOps++
	if err != nil {
		r.storeErrs++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOp(op, kind, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordSyncCycle tracks background sync cycles and errors.
func (r *Recorder) RecordSyncCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordSyncCycle(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.calls
	}
	return 0
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.errors
	}
	return 0
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.lastCallLatency
	}
	return 0
}

// CommandCount returns how many times a command label was dispatched.
func (r *Recorder) CommandCount(command string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.commands[command]
}

// StoreOps returns the total store operations recorded.
func (r *Recorder) StoreOps() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeOps
}

// StoreErrors returns the total failed store operations recorded.
func (r *Recorder) StoreErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeErrs
}
