package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glgame_frames_rendered_total",
		Help: "Total number of frames rendered",
	})
	FramesSwapped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glgame_frames_swapped_total",
		Help: "Total number of back buffer swaps",
	})
	EventsSeen = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glgame_events_total",
		Help: "Total number of window events polled, by kind",
	}, []string{"kind"})
	ShadersCompiled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glgame_shaders_compiled_total",
		Help: "Total number of shader stages compiled, by kind",
	}, []string{"kind"})
)

// Totals is the sum of every series of each counter.
type Totals struct {
	FramesRendered  float64
	FramesSwapped   float64
	Events          float64
	ShadersCompiled float64
}

var totalNames = map[string]func(t *Totals) *float64{
	"glgame_frames_rendered_total":  func(t *Totals) *float64 { return &t.FramesRendered },
	"glgame_frames_swapped_total":   func(t *Totals) *float64 { return &t.FramesSwapped },
	"glgame_events_total":           func(t *Totals) *float64 { return &t.Events },
	"glgame_shaders_compiled_total": func(t *Totals) *float64 { return &t.ShadersCompiled },
}

// Gather reads the counters back from a registry.
func Gather(g prometheus.Gatherer) (Totals, error) {
	var t Totals
	families, err := g.Gather()
	if err != nil {
		return t, fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, mf := range families {
		field, ok := totalNames[mf.GetName()]
		if !ok {
			continue
		}
		for _, m := range mf.GetMetric() {
			*field(&t) += m.GetCounter().GetValue()
		}
	}
	return t, nil
}

// Snapshot gathers the process-wide counters.
func Snapshot() (Totals, error) {
	return Gather(prometheus.DefaultGatherer)
}

func (t Totals) String() string {
	return fmt.Sprintf("%.0f frames rendered, %.0f swapped, %.0f events, %.0f shaders compiled",
		t.FramesRendered, t.FramesSwapped, t.Events, t.ShadersCompiled)
}
