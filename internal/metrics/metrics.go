// Package metrics counts what happens during play on a private Prometheus
// registry. There is no server: at exit the registry is written once in the
// text exposition format, ready for node_exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kbseah/spelling-wasp/internal/game"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	reg *prometheus.Registry

	PuzzlesGenerated   prometheus.Counter
	GenerationAttempts prometheus.Histogram
	Guesses            *prometheus.CounterVec
	Hints              *prometheus.CounterVec
	Shuffles           prometheus.Counter
	FinalScore         prometheus.Gauge
	WordsRemaining     prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		PuzzlesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellingwasp_puzzles_generated_total",
			Help: "Puzzles accepted by the generator.",
		}),
		GenerationAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "spellingwasp_generation_attempts",
			Help:    "Letter combinations tried per accepted puzzle.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spellingwasp_guesses_total",
			Help: "Submitted guesses by classification.",
		}, []string{"classification"}),
		Hints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spellingwasp_hints_total",
			Help: "Hint requests by outcome.",
		}, []string{"outcome"}),
		Shuffles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellingwasp_shuffles_total",
			Help: "Letter shuffles.",
		}),
		FinalScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spellingwasp_final_score",
			Help: "Score of the last finished session.",
		}),
		WordsRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spellingwasp_words_remaining",
			Help: "Unfound solutions in the current session.",
		}),
	}
	m.reg.MustRegister(
		m.PuzzlesGenerated,
		m.GenerationAttempts,
		m.Guesses,
		m.Hints,
		m.Shuffles,
		m.FinalScore,
		m.WordsRemaining,
	)
	return m
}

// ObservePuzzle records an accepted puzzle.
func (m *Metrics) ObservePuzzle(attempts, solutions int) {
	m.PuzzlesGenerated.Inc()
	m.GenerationAttempts.Observe(float64(attempts))
	m.WordsRemaining.Set(float64(solutions))
}

// ObserveGuess records one SubmitGuess result.
func (m *Metrics) ObserveGuess(res game.Result) {
	m.Guesses.WithLabelValues(string(res.Class)).Inc()
	m.WordsRemaining.Set(float64(res.Remaining))
}

// ObserveHint records a hint request; ok is false when none was available.
func (m *Metrics) ObserveHint(ok bool) {
	outcome := "given"
	if !ok {
		outcome = "exhausted"
	}
	m.Hints.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes all metrics to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
