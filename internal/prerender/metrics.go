package prerender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var renderCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "carmodels_render_cache_total",
		Help: "Results page lookups by cache outcome",
	},
	[]string{"result"},
)
