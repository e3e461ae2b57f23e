package mocks

import (
	"context"
	"todos/infras/otel"
)

type otelImpl struct {
	recording *Recording
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.recording.span(spanName)

	return ctx, &scopeImpl{recording: o.recording}
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns an otel.Otel whose scopes do nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// NewRecordingOtel returns an otel.Otel whose scopes report into the returned Recording.
func NewRecordingOtel() (otel.Otel, *Recording) {
	recording := &Recording{}

	return &otelImpl{recording: recording}, recording
}
