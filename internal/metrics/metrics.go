package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ViolationsReported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gatepass_violations_reported_total",
		Help: "Number of violations reported by guards.",
	})

	ViolationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_violation_transitions_total",
		Help: "Violation status transitions by target status.",
	}, []string{"status"})

	PenaltiesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_penalties_applied_total",
		Help: "Penalties applied by kind.",
	}, []string{"kind"})

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_notifications_emitted_total",
		Help: "Notifications emitted by type.",
	}, []string{"type"})

	SlotConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_slot_version_conflicts_total",
		Help: "Optimistic concurrency conflicts on record slots.",
	}, []string{"slot"})

	SlotReadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatepass_slot_read_failures_total",
		Help: "Unreadable or corrupt record slots that degraded to an empty collection.",
	}, []string{"slot"})
)
