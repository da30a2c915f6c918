package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ExtractionsTotal counts field extraction runs by outcome:
	// located, value_not_located, field_not_found, error.
	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autofill",
			Name:      "extractions_total",
			Help:      "Total number of field extraction runs by outcome",
		},
		[]string{"outcome"},
	)

	// ResolutionsTotal counts successful location resolutions by the
	// matcher strategy that won.
	ResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autofill",
			Name:      "resolutions_total",
			Help:      "Total number of location resolutions by matching strategy",
		},
		[]string{"strategy"},
	)
)

func init() {
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(ResolutionsTotal)
}
