// Package system holds the per-tick systems, registered on the world in
// frame order: input, physics, dash timer, records, camera, telemetry and
// finally the event sink.
package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
)

func forEachPlayer(w *ecs.World, fn func(e ecs.Entity, p *component.Player)) {
	players := w.Players()
	for _, id := range players.Entities() {
		e, ok := w.EntityByID(id)
		if !ok {
			continue
		}
		p, ok := players.Get(id)
		if !ok {
			continue
		}
		fn(e, p)
	}
}

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
