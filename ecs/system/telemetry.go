package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/telemetry"
)

// TelemetrySystem appends one sample per player per tick. After the first
// write error the recorder is dropped and the run continues untraced.
type TelemetrySystem struct {
	rec     *telemetry.Recorder
	logger  *log.Logger
	keep    bool
	samples []telemetry.Sample
}

// NewTelemetrySystem records to rec (which may be nil). With keep set the
// samples are also held in memory for Summary.
func NewTelemetrySystem(rec *telemetry.Recorder, keep bool, logger *log.Logger) *TelemetrySystem {
	return &TelemetrySystem{rec: rec, keep: keep, logger: loggerOrDefault(logger)}
}

func (s *TelemetrySystem) Update(w *ecs.World) {
	if w == nil || s == nil || (s.rec == nil && !s.keep) {
		return
	}
	var batch []telemetry.Sample
	forEachPlayer(w, func(e ecs.Entity, p *component.Player) {
		batch = append(batch, telemetry.NewSample(w.Tick(), e.ID, p.Body, p.Dash))
	})
	if s.keep {
		s.samples = append(s.samples, batch...)
	}
	if err := s.rec.Write(batch...); err != nil {
		s.logger.Error("telemetry disabled", "error", err)
		s.rec = nil
	}
}

func (s *TelemetrySystem) Samples() []telemetry.Sample {
	return s.samples
}

func (s *TelemetrySystem) Summary() telemetry.Summary {
	return telemetry.Summarize(s.samples)
}
