// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes prometheus counters for the sync layer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "group_sync"

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeConflict = "conflict"
	OutcomeSkipped  = "skipped"
)

// SyncMetrics groups the counters updated by the sync client. A nil
// *SyncMetrics is valid and records nothing.
type SyncMetrics struct {
	messagesSent      *prometheus.CounterVec
	messagesReceived  prometheus.Counter
	undecryptable     prometheus.Counter
	polls             *prometheus.CounterVec
	invites           *prometheus.CounterVec
	persistenceErrors prometheus.Counter
}

// New registers the sync counters on reg.
func New(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)

	return &SyncMetrics{
		messagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages posted to the rendezvous server by outcome",
		}, []string{"outcome"}),
		messagesReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Group messages decrypted and appended to a transcript",
		}),
		undecryptable: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_undecryptable_total",
			Help:      "Incoming records the engine could not open",
		}),
		polls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Poll ticks by outcome",
		}, []string{"outcome"}),
		invites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invites_sent_total",
			Help:      "Sealed invites delivered by outcome",
		}, []string{"outcome"}),
		persistenceErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_persist_failures_total",
			Help:      "Engine snapshots that could not be saved",
		}),
	}
}

func (m *SyncMetrics) MessageSent(outcome string) {
	if m == nil {
		return
	}
	m.messagesSent.WithLabelValues(outcome).Inc()
}

func (m *SyncMetrics) MessagesReceived(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.messagesReceived.Add(float64(n))
}

func (m *SyncMetrics) Undecryptable(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.undecryptable.Add(float64(n))
}

func (m *SyncMetrics) Poll(outcome string) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(outcome).Inc()
}

func (m *SyncMetrics) InviteSent(outcome string) {
	if m == nil {
		return
	}
	m.invites.WithLabelValues(outcome).Inc()
}

func (m *SyncMetrics) PersistFailed() {
	if m == nil {
		return
	}
	m.persistenceErrors.Inc()
}

// NewServer returns an HTTP server exposing the registry at /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &http.Server{Addr: address, Handler: mux}
}
