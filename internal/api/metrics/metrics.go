// Package metrics defines and registers all custom Prometheus metrics for the
// training API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "training"

// UsersRegisteredTotal counts successful user registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)

// AnimalsCreatedTotal counts successfully created animals.
var AnimalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animals_created_total",
		Help:      "Total number of animals created.",
	},
)

// TrainingLogsCreatedTotal counts successfully created training logs.
var TrainingLogsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "training_logs_created_total",
		Help:      "Total number of training logs created.",
	},
)

// TrainingHoursTotal accumulates the hours recorded across all training logs.
var TrainingHoursTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "training_hours_total",
		Help:      "Total training hours recorded across all logs.",
	},
)

// UploadsTotal counts successful file uploads.
// Label:
//   - type: "user", "animal", or "training"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files relayed to the storage worker.",
	},
	[]string{"type"},
)

// UploadErrorsTotal counts failed uploads.
// Label:
//   - reason: "ownership", "worker", or "persist"
var UploadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_errors_total",
		Help:      "Total number of failed upload attempts, by failure reason.",
	},
	[]string{"reason"},
)
