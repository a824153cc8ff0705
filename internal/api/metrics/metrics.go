// Package metrics defines and registers all custom Prometheus metrics for the
// clinic agenda API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agenda"

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts successfully scheduled appointments.
// Label:
//   - slot: the booked time slot (e.g. "09:30")
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments scheduled, by time slot.",
	},
	[]string{"slot"},
)

// SlotConflictsTotal counts create attempts rejected because the slot was
// already occupied by a non-cancelled appointment.
var SlotConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_conflicts_total",
		Help:      "Total number of appointment creations rejected due to slot conflicts.",
	},
)

// PastDateRejectionsTotal counts create attempts rejected for a past date.
var PastDateRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "past_date_rejections_total",
		Help:      "Total number of appointment creations rejected for past dates.",
	},
)

// StatusChangesTotal counts status updates applied to appointments.
// Label:
//   - status: the new status ("scheduled", "completed", "cancelled")
var StatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_status_changes_total",
		Help:      "Total number of appointment status changes, by target status.",
	},
	[]string{"status"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of audit entries waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityWriteDuration measures how long persisting a single audit entry takes.
// Label:
//   - result: "ok" or "error"
var ActivityWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_write_duration_seconds",
		Help:      "Duration of audit entry persistence from dequeue to insert.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
