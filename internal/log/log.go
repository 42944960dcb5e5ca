package log

import (
	"context"
	"fmt"
	"github.com/cottand/dlnf/concept"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Sections used by the packages of this module, as values of the "section" attribute
const (
	SectionParser    = "parser"
	SectionTBox      = "tbox"
	SectionExpand    = "expand"
	SectionABox      = "abox"
	SectionAggregate = "aggregate"
	SectionPipeline  = "pipeline"
	SectionCLI       = "cli"
)

var AllSections = []string{
	SectionParser,
	SectionTBox,
	SectionExpand,
	SectionABox,
	SectionAggregate,
	SectionPipeline,
	SectionCLI,
}

type Options struct {
	Level slog.Level
	// Sections enabled below slog.LevelWarn. Warnings and errors are always emitted.
	// An empty list enables every section.
	Sections  []string
	AddSource bool
}

// New returns a text logger writing to w that renders concept attributes lazily
// and filters records by section.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource: opts.AddSource,
		Level:     opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}
	sections := opts.Sections
	if len(sections) == 0 {
		sections = AllSections
	}
	return slog.New(concept.Handler(&filteringHandler{
		underlying: slog.NewTextHandler(w, handlerOpts),
		enabled:    sections,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// OrDiscard returns l, or Discard if l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level '%s': %w", s, err)
	}
	return level, nil
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	enabled    []string
	// sections attached through WithAttrs
	sections []string
}

func (f *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f *filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	wantSection := slices.ContainsFunc(f.sections, f.isEnabled)
	record.Attrs(func(attr slog.Attr) bool {
		wantSection = wantSection || attr.Key == "section" && f.isEnabled(attr.Value.String())
		// iterate as long as we have not found our section
		return !wantSection
	})
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f *filteringHandler) isEnabled(section string) bool {
	return slices.ContainsFunc(f.enabled, func(enabled string) bool {
		return strings.HasPrefix(section, enabled)
	})
}

func (f *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sections := slices.Clone(f.sections)
	for _, attr := range attrs {
		if attr.Key == "section" {
			sections = append(sections, attr.Value.String())
		}
	}
	return &filteringHandler{
		underlying: f.underlying.WithAttrs(attrs),
		enabled:    f.enabled,
		sections:   sections,
	}
}

func (f *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		underlying: f.underlying.WithGroup(name),
		enabled:    f.enabled,
		sections:   f.sections,
	}
}
