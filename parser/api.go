package parser

import (
	"context"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/kb"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"strings"
)

type Options struct {
	// Workers is the number of lines parsed concurrently, values below 2 parse sequentially
	Workers int
	Logger  *slog.Logger
}

// ParseTBox parses one TBox axiom per line, skipping blank lines and lines
// starting with '#'. Lines that fail to parse are left out of the TBox and
// reported in the returned dlerr.Errors with their line number. The error is
// only non-nil if ctx was cancelled.
func ParseTBox(ctx context.Context, text string, opts Options) (*kb.TBox, *dlerr.Errors, error) {
	logger := log.OrDiscard(opts.Logger).With("section", log.SectionParser)
	logger.Debug("parsing TBox")

	axioms, errs, err := parseLines(ctx, text, opts.Workers, ParseTBoxAxiom)
	if err != nil {
		return nil, nil, err
	}
	tbox := kb.NewTBox(kb.WithLogger(opts.Logger))
	for _, a := range axioms {
		if !tbox.Add(a) {
			logger.Debug("dropping duplicate axiom", "axiom", a.String())
		}
	}
	logger.Info("parsed TBox", "axioms", tbox.Len(), "errors", len(errs.Errors()))
	return tbox, errs, nil
}

// ParseABox parses one ABox axiom per line, see ParseTBox for blank lines,
// comments and error reporting.
func ParseABox(ctx context.Context, text string, opts Options) (*kb.ABox, *dlerr.Errors, error) {
	logger := log.OrDiscard(opts.Logger).With("section", log.SectionParser)
	logger.Debug("parsing ABox")

	axioms, errs, err := parseLines(ctx, text, opts.Workers, ParseABoxAxiom)
	if err != nil {
		return nil, nil, err
	}
	abox := kb.NewABox()
	for _, a := range axioms {
		if !abox.Add(a) {
			logger.Debug("dropping duplicate axiom", "axiom", a.String())
		}
	}
	logger.Info("parsed ABox", "axioms", abox.Len(), "errors", len(errs.Errors()))
	return abox, errs, nil
}

type sourceLine struct {
	number int
	text   string
}

type lineResult[A any] struct {
	axiom A
	err   error
}

// parseLines applies parse to every non-blank, non-comment line of text.
// Results keep the order of the lines regardless of workers.
func parseLines[A any](ctx context.Context, text string, workers int, parse func(string) (A, error)) ([]A, *dlerr.Errors, error) {
	var lines []sourceLine
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, sourceLine{number: i + 1, text: line})
	}

	results := make([]lineResult[A], len(lines))
	if workers < 2 {
		for i, line := range lines {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			results[i].axiom, results[i].err = parse(line.text)
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, line := range lines {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[i].axiom, results[i].err = parse(line.text)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	var axioms []A
	var errs *dlerr.Errors
	for i, res := range results {
		if res.err != nil {
			errs = errs.With(dlerr.AtLine(dlerr.From(res.err), lines[i].number))
			continue
		}
		axioms = append(axioms, res.axiom)
	}
	return axioms, errs, nil
}
