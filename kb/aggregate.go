package kb

import (
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
)

// AggregateInclusions folds all inclusions into one concept every individual
// must satisfy: each C -> D becomes ¬C ⊔ D in NNF, and these are conjoined in
// insertion order.
//
// gci is nil when the TBox has no inclusions, or when none of them could be
// converted; per-inclusion failures are returned in errs.
// Definitions are expected to have been applied to the inclusions already.
func (t *TBox) AggregateInclusions() (gci *concept.And, errs *dlerr.Errors) {
	logger := t.log(log.SectionAggregate)
	inclusions := t.Inclusions()
	if len(inclusions) == 0 {
		logger.Info("no GCIs to aggregate")
		return nil, nil
	}

	var subs []concept.Concept
	for _, inc := range inclusions {
		disjunction, err := inclusionAsConcept(inc)
		if err != nil {
			logger.Warn("skipping inclusion", "axiom", inc.String(), "error", err)
			errs = errs.With(dlerr.From(err))
			continue
		}
		subs = append(subs, disjunction)
	}
	if len(subs) == 0 {
		return nil, errs
	}
	gci = concept.NewAnd(subs...)
	logger.Info("aggregated GCIs", "count", len(subs), "gci", concept.Slog(gci))
	return gci, errs
}

// inclusionAsConcept rewrites lhs -> rhs into NNF(¬lhs ⊔ rhs)
func inclusionAsConcept(inc TBoxAxiom) (concept.Concept, error) {
	negated, err := concept.NNF(concept.Negate(inc.LHS))
	if err != nil {
		return nil, err
	}
	return concept.NNF(concept.NewOr(negated, inc.RHS))
}
