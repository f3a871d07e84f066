package stats

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the miner does. Every Metrics has its own registry so
// several runs (or tests) can live in one process.
type Metrics struct {
	Registry   *prometheus.Registry
	Reported   prometheus.Counter
	Projected  prometheus.Counter
	Embeddings prometheus.Counter
	Pruned     *prometheus.CounterVec
	MaxDepth   prometheus.Gauge
	depth      int
}

const (
	Infrequent = "infrequent"
	NotMinimal = "not-minimal"
	TooLarge   = "too-large"
)

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Reported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gspan",
			Name:      "patterns_reported_total",
			Help:      "Number of frequent patterns handed to the reporter.",
		}),
		Projected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gspan",
			Name:      "projections_total",
			Help:      "Number of projections (search tree nodes) visited.",
		}),
		Embeddings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gspan",
			Name:      "embeddings_total",
			Help:      "Number of embeddings created while growing patterns.",
		}),
		Pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gspan",
			Name:      "pruned_total",
			Help:      "Number of search tree branches cut, by reason.",
		}, []string{"reason"}),
		MaxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gspan",
			Name:      "max_depth",
			Help:      "Longest dfs code visited.",
		}),
	}
	m.Registry.MustRegister(m.Reported, m.Projected, m.Embeddings, m.Pruned, m.MaxDepth)
	return m
}

func (m *Metrics) Prune(reason string) {
	m.Pruned.WithLabelValues(reason).Inc()
}

func (m *Metrics) Depth(d int) {
	if d > m.depth {
		m.depth = d
		m.MaxDepth.Set(float64(d))
	}
}

// WriteTextfile writes the metrics in the prometheus text format (suitable
// for the node exporter's textfile collector).
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
