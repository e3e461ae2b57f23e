package mocks

import (
	"sync"
	"todos/infras/otel"
)

// Recording collects what scopes were asked to trace. A nil Recording records nothing.
type Recording struct {
	mu         sync.Mutex
	spans      []string
	attributes map[string]any
	errors     []error
}

func (r *Recording) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

// Attribute returns the last value set for key on any scope.
func (r *Recording) Attribute(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.attributes[key]

	return value, ok
}

func (r *Recording) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recording) span(name string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans = append(r.spans, name)
}

func (r *Recording) attribute(key string, value any) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.attributes == nil {
		r.attributes = map[string]any{}
	}

	r.attributes[key] = value
}

func (r *Recording) traceError(err error) {
	if r == nil || err == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, err)
}

type scopeImpl struct {
	recording *Recording
}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(_ string) {}

// End implements otel.Scope.
func (s *scopeImpl) End() {}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(key string, value any) {
	s.recording.attribute(key, value)
}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.recording.attribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
	s.recording.traceError(err)
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
	s.recording.traceError(err)
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
