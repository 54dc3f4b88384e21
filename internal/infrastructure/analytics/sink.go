package analytics

import (
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/pkg/logger"
)

var _ ports.AnalyticsSink = (*LogSink)(nil)

// LogSink emite los eventos de analítica al log estructurado. Sustituye al
// colector real en entornos donde no hay uno configurado; los eventos son
// fire-and-forget y nunca afectan la respuesta al cliente.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit registra el evento con sus dimensiones.
func (s *LogSink) Emit(event ports.AnalyticsEvent) {
	ev := s.log.Info().
		Str("event", event.Name).
		Str("category", event.Category).
		Str("label", event.Label)
	if event.Value != nil {
		ev = ev.Float64("value", *event.Value)
	}
	ev.Msg("evento de analítica")
}

var _ ports.AnalyticsSink = NopSink{}

// NopSink descarta todos los eventos. Útil en tests.
type NopSink struct{}

func (NopSink) Emit(ports.AnalyticsEvent) {}
