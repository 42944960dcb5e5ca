package concept

import (
	"context"
	"log/slog"
)

// Slog wraps a Concept as a slog.LogValuer so the canonical string is only
// rendered when the record is actually emitted
func Slog(c Concept) slog.LogValuer {
	return conceptLogValuer{c}
}

type conceptLogValuer struct{ Concept }

func (l conceptLogValuer) LogValue() slog.Value {
	return slog.StringValue(string(KeyOf(l.Concept)))
}

// Handler wraps underlying so that Concept attributes are rendered lazily
func Handler(underlying slog.Handler) slog.Handler {
	return &conceptLogHandler{underlying: underlying}
}

type conceptLogHandler struct {
	underlying slog.Handler
}

func (l *conceptLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *conceptLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *conceptLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapAttr(attr)
	}
	return Handler(l.underlying.WithAttrs(wrapped))
}

func (l *conceptLogHandler) WithGroup(name string) slog.Handler {
	return Handler(l.underlying.WithGroup(name))
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindAny {
		if asConcept, isConcept := attr.Value.Any().(Concept); isConcept {
			return slog.Any(attr.Key, Slog(asConcept))
		}
	}
	return attr
}
