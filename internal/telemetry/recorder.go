package telemetry

import (
	"context"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "uikit/interaction"

// Span names.
const (
	SpanDialogSession = "dialog.session"
	SpanTooltipShown  = "tooltip.visible"
	SpanTabChange     = "tabs.change"
	SpanPanelToggle   = "disclosure.toggle"
)

// Recorder turns interaction transitions into spans. Long-lived states
// (an open dialog, a visible tooltip) are spans keyed by element id that
// stay open until End; one-off transitions are zero-length spans.
//
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu     sync.Mutex
	tracer oteltrace.Tracer
	open   map[string]oteltrace.Span
}

// NewRecorder creates a recorder on tp. A nil tp records into a no-op
// tracer.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Recorder{
		tracer: tp.Tracer(instrumentationName),
		open:   make(map[string]oteltrace.Span),
	}
}

// Begin starts a span named name for key. A span already open for key is
// ended first.
func (r *Recorder) Begin(key, name string, attrs map[string]string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.open[key]; ok {
		prev.End()
	}
	_, span := r.tracer.Start(context.Background(), name,
		oteltrace.WithAttributes(attribute.String("uikit.element.id", key)),
		oteltrace.WithAttributes(mapAttributes(attrs)...),
	)
	r.open[key] = span
}

// End ends the span open for key, adding attrs. Unknown keys are ignored.
func (r *Recorder) End(key string, attrs map[string]string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.open[key]
	if !ok {
		return
	}
	delete(r.open, key)
	span.SetAttributes(mapAttributes(attrs)...)
	span.End()
}

// Event records a zero-length span.
func (r *Recorder) Event(key, name string, attrs map[string]string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(context.Background(), name,
		oteltrace.WithAttributes(attribute.String("uikit.element.id", key)),
		oteltrace.WithAttributes(mapAttributes(attrs)...),
	)
	span.End()
}

// Open returns the number of spans still open.
func (r *Recorder) Open() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// Close ends every open span.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, span := range r.open {
		span.SetAttributes(attribute.Bool("uikit.abandoned", true))
		span.End()
		delete(r.open, key)
	}
}

// mapAttributes namespaces attrs under uikit.*, in key order.
func mapAttributes(attrs map[string]string) []attribute.KeyValue {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		var name string
		switch k {
		case "placement":
			name = "uikit.tooltip.placement"
		case "from", "to":
			name = "uikit.tab." + k
		case "reason":
			name = "uikit.dialog.close_reason"
		default:
			name = "uikit." + k
		}
		out = append(out, attribute.String(name, attrs[k]))
	}
	return out
}
