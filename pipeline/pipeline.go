// Package pipeline runs the front end of the reasoner over a TBox and an ABox
// text: parse the TBox, expand its definitions, parse the ABox, propagate the
// definitions, convert to NNF and aggregate the GCIs.
package pipeline

import (
	"context"
	"fmt"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/kb"
	"github.com/cottand/dlnf/parser"
	"log/slog"
)

type Sources struct {
	TBox string
	ABox string
}

type Settings struct {
	// Workers is passed on to the parser, see parser.Options
	Workers int
	Cycles  kb.CyclePolicy
	Logger  *slog.Logger
}

// Result is what the reasoning engine consumes: the normalized ABox and the
// aggregated GCI, along with per-line errors of each source.
type Result struct {
	TBox *kb.TBox
	ABox *kb.ABox
	// GCI is nil when the TBox has no usable inclusion
	GCI *concept.And

	TBoxErrors *dlerr.Errors
	ABoxErrors *dlerr.Errors

	// Complete is false when definitions could not be expanded, in which case
	// they were not propagated and GCI was not computed
	Complete bool
}

func (r *Result) HasError() bool {
	return r.TBoxErrors.HasError() || r.ABoxErrors.HasError()
}

// Normalize runs every phase in order. Malformed lines and cycles are reported in
// the Result; the returned error is reserved for cancellation of ctx and for
// internal invariant violations.
func Normalize(ctx context.Context, src Sources, settings Settings) (*Result, error) {
	logger := log.OrDiscard(settings.Logger).With("section", log.SectionPipeline)
	parseOpts := parser.Options{Workers: settings.Workers, Logger: settings.Logger}
	res := &Result{}

	// parse phase
	tbox, tboxErrs, err := parser.ParseTBox(ctx, src.TBox, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("parse TBox: %w", err)
	}
	res.TBox = tbox
	res.TBoxErrors = res.TBoxErrors.Merge(tboxErrs)

	// expansion phase
	expandErrs := tbox.ExpandAllDefinitions(settings.Cycles)
	res.TBoxErrors = res.TBoxErrors.Merge(expandErrs)
	cycles := expandErrs.WithCode(dlerr.DefinitionCycle)
	expanded := len(cycles) == 0 || settings.Cycles == kb.BestEffort

	abox, aboxErrs, err := parser.ParseABox(ctx, src.ABox, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("parse ABox: %w", err)
	}
	res.ABox = abox
	res.ABoxErrors = res.ABoxErrors.Merge(aboxErrs)

	if !expanded {
		logger.Warn("definitions were not expanded, skipping propagation and aggregation")
		return res, nil
	}

	// propagation phase
	tbox.ApplyDefinitionsToABox(abox)
	tbox.ApplyDefinitionsToInclusions()
	res.ABoxErrors = res.ABoxErrors.Merge(abox.ToNNF())

	// aggregation phase
	gci, aggErrs := tbox.AggregateInclusions()
	res.TBoxErrors = res.TBoxErrors.Merge(aggErrs)
	if gci != nil {
		if err := concept.Validate(gci); err != nil {
			return nil, fmt.Errorf("aggregated GCI is malformed: %w", err)
		}
	}
	res.GCI = gci
	res.Complete = true

	logger.Info("normalized knowledge base",
		"definitions", len(tbox.Definitions()),
		"inclusions", len(tbox.Inclusions()),
		"abox", abox.Len(),
		"tboxErrors", res.TBoxErrors,
		"aboxErrors", res.ABoxErrors,
	)
	return res, nil
}
