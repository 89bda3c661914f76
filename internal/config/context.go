package config

import (
	"context"
	"log/slog"
)

// loggerKey is used to store the logger in a context.
type loggerKey struct{}

// projectKey is used to store the loaded project in a context.
type projectKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// WithProject returns a context carrying the loaded project.
func WithProject(ctx context.Context, p *Project) context.Context {
	return context.WithValue(ctx, projectKey{}, p)
}

// GetProject retrieves the project from the command context, or the
// default project when none was loaded.
func GetProject(ctx context.Context) *Project {
	if p, ok := ctx.Value(projectKey{}).(*Project); ok {
		return p
	}
	return DefaultProject()
}
