// Package metrics exposes Prometheus instrumentation for the catalog and
// its storage.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsAccepted counts uploads that produced a new catalog entry,
	// labelled by detected file type.
	UploadsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundgate_uploads_accepted_total",
		Help: "Uploads that produced a new catalog entry.",
	}, []string{"format"})

	// UploadsRejected counts uploads refused by validation.
	UploadsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundgate_uploads_rejected_total",
		Help: "Uploads refused by validation.",
	}, []string{"reason"})

	// Deletions counts removed catalog entries.
	Deletions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundgate_deletions_total",
		Help: "Catalog entries deleted.",
	})

	// Recoveries counts disk rebuilds of the uploaded set.
	Recoveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundgate_recoveries_total",
		Help: "Full rebuilds of the uploaded set from disk.",
	})

	// CatalogEntries tracks catalog sizes by subset (seed/uploaded).
	CatalogEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "soundgate_catalog_entries",
		Help: "Entries currently in the catalog.",
	}, []string{"subset"})

	// StorageDrift tracks files on disk that no catalog entry references.
	StorageDrift = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "soundgate_storage_drift_files",
		Help: "Audio files in storage not referenced by any catalog entry.",
	})
)

// SetCatalogSize updates the catalog size gauges.
func SetCatalogSize(seeds, uploaded int) {
	CatalogEntries.WithLabelValues("seed").Set(float64(seeds))
	CatalogEntries.WithLabelValues("uploaded").Set(float64(uploaded))
}
