package literal

import (
	"github.com/VictoriaMetrics/metrics"
	"time"
)

// Metric names registered by NewInstrumentedSerializer
const (
	MetricCalls    = "dgs_literal_serialize_calls_total"
	MetricErrors   = "dgs_literal_serialize_errors_total"
	MetricBytes    = "dgs_literal_serialize_bytes_total"
	MetricDuration = "dgs_literal_serialize_duration_seconds"
)

// NewInstrumentedSerializer wraps next and records calls, failures, produced bytes and
// latency in set. The result and errors of next are returned unchanged.
func NewInstrumentedSerializer(next ISerializer, set *metrics.Set) ISerializer {
	return &instrumentedSerializerImpl{
		next:     next,
		calls:    set.GetOrCreateCounter(MetricCalls),
		errors:   set.GetOrCreateCounter(MetricErrors),
		bytes:    set.GetOrCreateCounter(MetricBytes),
		duration: set.GetOrCreateHistogram(MetricDuration),
	}
}

// instrumentedSerializerImpl implements ISerializer by delegating and counting
type instrumentedSerializerImpl struct {
	next     ISerializer
	calls    *metrics.Counter
	errors   *metrics.Counter
	bytes    *metrics.Counter
	duration *metrics.Histogram
}

// --------------------------------------------------------------------------
// Interface Methods (docu see literal.ISerializer)
// --------------------------------------------------------------------------

func (s *instrumentedSerializerImpl) Serialize(value any) (string, error) {
	start := time.Now()
	out, err := s.next.Serialize(value)
	s.duration.UpdateDuration(start)
	s.calls.Inc()
	if err != nil {
		s.errors.Inc()
		return "", err
	}
	s.bytes.Add(len(out))
	return out, nil
}
