package logging

import (
	"context"
	"testing"
)

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithFields(fields map[string]any) Logger {
	return &recordingLogger{fields: fields}
}

func (l *recordingLogger) WithContext(context.Context) Logger {
	return l
}

func TestModuleLogger_NilProvider(t *testing.T) {
	logger := ModuleLogger(nil, "pagegen.page")
	if logger == nil {
		t.Fatalf("expected a logger even without a provider")
	}
	// No-op loggers must absorb every call without panicking.
	logger.Info("message", "key", "value")
	logger.WithFields(map[string]any{"k": "v"}).Warn("still fine")
}

func TestModuleLogger_AttachesModuleField(t *testing.T) {
	provider := &recordingProvider{}

	logger := PageLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != "pagegen.page" {
		t.Fatalf("expected pagegen.page namespace request, got %#v", provider.requested)
	}
	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected the provider logger to be returned, got %T", logger)
	}
	if rec.fields["module"] != "pagegen.page" {
		t.Fatalf("expected module field, got %#v", rec.fields)
	}
}
