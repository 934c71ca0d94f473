package lib

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
)

func newLogHandler(ts *TableSpec) slog.Handler {
	buf := &bytes.Buffer{}
	f := slog.NewTextHandler(buf, &slog.HandlerOptions{
		// zerolog stamps and levels the line itself
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return &logHandler{
		tablespec: ts,
		formatter: f,
		output:    buf,
	}
}

// logHandler lets library packages log through slog while the driver
// keeps ownership of level filtering and console output in zerolog
type logHandler struct {
	tablespec *TableSpec
	formatter slog.Handler
	output    *bytes.Buffer
}

// Enabled always returns true and let zerolog decide
func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return true
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{
		tablespec: h.tablespec,
		output:    h.output,
		formatter: h.formatter.WithAttrs(attrs),
	}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{
		tablespec: h.tablespec,
		output:    h.output,
		formatter: h.formatter.WithGroup(name),
	}
}

// Handle renders the record with the text handler, then hands the
// resulting line to zerolog at the matching level
func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	defer h.output.Reset()
	if err := h.formatter.Handle(ctx, r); err != nil {
		return err
	}
	msg := strings.TrimSpace(h.output.String())
	if msg == "" {
		msg = "<<logHandler received empty message>>"
	}
	logger := h.tablespec.logger
	switch {
	case r.Level < slog.LevelDebug:
		logger.Trace().Msg(msg)
	case r.Level < slog.LevelInfo:
		logger.Debug().Msg(msg)
	case r.Level < slog.LevelWarn:
		logger.Info().Msg(msg)
	case r.Level < slog.LevelError:
		logger.Warn().Msg(msg)
	default:
		logger.Error().Msg(msg)
	}
	return nil
}
