// Package logging defines the logger contract shared by pagegen components
// and a no-op implementation for callers that disable logging. The gologger
// subpackage provides the production adapter.
package logging

import "context"

// Logger is the structured logging contract used across the tool.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithFields(fields map[string]any) Logger
	WithContext(ctx context.Context) Logger
}

// Provider supplies named child loggers.
type Provider interface {
	GetLogger(name string) Logger
}

const (
	rootModule   = "pagegen"
	pageModule   = "pagegen.page"
	parserModule = "pagegen.document"
	renderModule = "pagegen.render"
	watchModule  = "pagegen.watch"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider Provider, module string) Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return logger.WithFields(map[string]any{"module": module})
}

// PageLogger returns the logger namespace reserved for the page service.
func PageLogger(provider Provider) Logger {
	return ModuleLogger(provider, pageModule)
}

// ParserLogger returns the logger namespace reserved for document parsing.
func ParserLogger(provider Provider) Logger {
	return ModuleLogger(provider, parserModule)
}

// RenderLogger returns the logger namespace reserved for rendering.
func RenderLogger(provider Provider) Logger {
	return ModuleLogger(provider, renderModule)
}

// WatchLogger returns the logger namespace reserved for the watch loop.
func WatchLogger(provider Provider) Logger {
	return ModuleLogger(provider, watchModule)
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services can operate safely when logging is disabled.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) Logger {
	return n
}
