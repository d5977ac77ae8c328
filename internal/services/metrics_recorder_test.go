package services

import (
	"sync"
	"time"
)

// recordingMetrics captures what services report so tests can assert on it
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string][]map[string]string
	timings  map[string]int
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: make(map[string][]map[string]string),
		timings:  make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] = append(m.counters[name], tags)
}

func (m *recordingMetrics) RecordProcessingTime(name string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name]++
}

func (m *recordingMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *recordingMetrics) tagsFor(name string) []map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]string(nil), m.counters[name]...)
}
