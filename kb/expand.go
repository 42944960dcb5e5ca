package kb

import (
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/util"
	"github.com/hashicorp/go-set/v3"
	"slices"
	"strings"
)

// CyclePolicy decides what ExpandAllDefinitions does with definitions that refer
// to each other, directly or through other definitions
type CyclePolicy int

const (
	// RejectCycles leaves the TBox untouched when a cycle is found
	RejectCycles CyclePolicy = iota
	// BestEffort expands anyway. Expansion still stops after one pass per definition,
	// but the cyclic definitions keep referring to each other afterwards
	BestEffort
)

func (p CyclePolicy) String() string {
	if p == BestEffort {
		return "best-effort"
	}
	return "reject"
}

// ExpandAllDefinitions rewrites every definition so that its right-hand side no
// longer mentions the left-hand side of any other definition.
//
// Definitions are popped one at a time. The popped definition D is substituted
// into the right-hand side of every other definition whose left-hand side differs
// from D's, then D's left-hand side is marked as applied and the remaining
// unapplied definitions are popped in turn. This takes one pass per distinct
// left-hand side.
//
// Cycles are reported as dlerr.NewDefinitionCycle whatever the policy; with
// RejectCycles the TBox is then left unchanged.
//
// A single pass per left-hand side is not a fixpoint when left-hand sides are
// compound: substituting one definition can create the left-hand side of a
// definition that was already applied. When no cycle was found, such leftovers
// (cycles that only appear after substitution included) are reported as
// dlerr.NewUnexpandedDefinition and the expanded definitions are kept.
func (t *TBox) ExpandAllDefinitions(policy CyclePolicy) *dlerr.Errors {
	logger := t.log(log.SectionExpand)
	defs := t.Definitions()

	cycles := FindDefinitionCycles(defs)
	if cycles.HasError() {
		if policy == RejectCycles {
			logger.Warn("refusing to expand cyclic definitions", "cycles", cycles)
			return cycles
		}
		logger.Warn("expanding cyclic definitions, result still contains defined symbols", "cycles", cycles)
	}

	updated := slices.Clone(defs)
	applied := set.New[concept.Key](len(defs))
	pending := util.NewStack(defs...)
	for {
		def, ok := pending.Pop()
		if !ok {
			break
		}
		lhs := concept.KeyOf(def.LHS)
		applied.Insert(lhs)
		logger.Debug("applying definition", "lhs", def.LHS, "rhs", def.RHS)

		for i, other := range updated {
			if concept.KeyOf(other.LHS) == lhs {
				continue
			}
			updated[i] = NewDefinition(other.LHS, concept.Replace(other.RHS, def.LHS, def.RHS))
		}

		pending = util.NewStack[TBoxAxiom]()
		for _, d := range updated {
			if !applied.Contains(concept.KeyOf(d.LHS)) {
				pending.Push(d)
			}
		}
	}

	t.replaceType(Definition, updated)
	logger.Info("expanded definitions", "count", len(updated), "applied", applied.Size())

	if cycles.HasError() {
		return cycles
	}
	leftovers := findUnexpanded(updated)
	if leftovers.HasError() {
		logger.Warn("definitions still mention defined concepts", "leftovers", leftovers)
	}
	return leftovers
}

// findUnexpanded reports every definition whose right-hand side mentions the
// left-hand side of a definition with a different left-hand side
func findUnexpanded(defs []TBoxAxiom) *dlerr.Errors {
	var errs *dlerr.Errors
	reported := set.New[string](0)
	for _, def := range defs {
		lhs := concept.KeyOf(def.LHS)
		for _, other := range defs {
			otherLHS := concept.KeyOf(other.LHS)
			if otherLHS == lhs || !concept.ContainsKey(def.RHS, otherLHS) {
				continue
			}
			if !reported.Insert(def.String() + " " + string(otherLHS)) {
				continue
			}
			errs = errs.With(dlerr.New(dlerr.NewUnexpandedDefinition{
				Definition: def.String(),
				Mentions:   string(otherLHS),
			}))
		}
	}
	return errs
}

// FindDefinitionCycles searches the dependency graph of defs, where a definition
// depends on every definition whose left-hand side occurs in its right-hand side.
// A definition mentioning its own left-hand side is a cycle of length one.
func FindDefinitionCycles(defs []TBoxAxiom) *dlerr.Errors {
	g := newDependencyGraph(defs)
	d := &cycleDetector{
		graph:    g,
		done:     set.New[concept.Key](len(g.nodes)),
		onPath:   set.New[concept.Key](len(g.nodes)),
		reported: set.New[string](0),
	}
	for _, node := range g.nodes {
		if !d.done.Contains(node) {
			d.visit(node)
		}
	}
	return d.errs
}

// dependencyGraph has one node per distinct definition left-hand side
type dependencyGraph struct {
	nodes []concept.Key
	edges map[concept.Key][]concept.Key
	seen  map[concept.Key]struct{}
}

func newDependencyGraph(defs []TBoxAxiom) *dependencyGraph {
	g := &dependencyGraph{
		edges: make(map[concept.Key][]concept.Key),
		seen:  make(map[concept.Key]struct{}),
	}
	for _, def := range defs {
		key := concept.KeyOf(def.LHS)
		if _, ok := g.seen[key]; !ok {
			g.nodes = append(g.nodes, key)
			g.seen[key] = struct{}{}
		}
	}
	for _, def := range defs {
		from := concept.KeyOf(def.LHS)
		for _, to := range g.nodes {
			if concept.ContainsKey(def.RHS, to) && !slices.Contains(g.edges[from], to) {
				g.edges[from] = append(g.edges[from], to)
			}
		}
	}
	return g
}

type cycleDetector struct {
	graph    *dependencyGraph
	done     *set.Set[concept.Key]
	onPath   *set.Set[concept.Key]
	path     []concept.Key
	reported *set.Set[string]
	errs     *dlerr.Errors
}

func (d *cycleDetector) visit(node concept.Key) {
	d.onPath.Insert(node)
	d.path = append(d.path, node)
	for _, next := range d.graph.edges[node] {
		switch {
		case d.onPath.Contains(next):
			d.report(next)
		case !d.done.Contains(next):
			d.visit(next)
		}
	}
	d.path = d.path[:len(d.path)-1]
	d.onPath.Remove(node)
	d.done.Insert(node)
}

// report records the cycle closed by an edge back to start, which is on the current path
func (d *cycleDetector) report(start concept.Key) {
	i := slices.Index(d.path, start)
	var cycle []string
	for _, k := range d.path[i:] {
		cycle = append(cycle, string(k))
	}
	cycle = append(cycle, string(start))
	key := canonicalCycle(cycle)
	if !d.reported.Insert(key) {
		return
	}
	d.errs = d.errs.With(dlerr.New(dlerr.NewDefinitionCycle{Path: cycle}))
}

// canonicalCycle names a cycle independently of the node it was entered from
func canonicalCycle(cycle []string) string {
	nodes := cycle[:len(cycle)-1]
	minAt := 0
	for i, n := range nodes {
		if n < nodes[minAt] {
			minAt = i
		}
	}
	rotated := append(slices.Clone(nodes[minAt:]), nodes[:minAt]...)
	return strings.Join(rotated, " ")
}

// ApplyDefinitionsToABox substitutes every definition into the concept
// assertions of abox, which must only be done once the definitions are expanded.
// Relation assertions are left as they are.
func (t *TBox) ApplyDefinitionsToABox(abox *ABox) {
	defs := t.Definitions()
	t.log(log.SectionABox).Info("applying expanded definitions to ABox", "definitions", len(defs), "axioms", abox.Len())
	abox.MapConcepts(func(c concept.Concept) concept.Concept {
		return unfold(c, defs)
	})
}

// ApplyDefinitionsToInclusions substitutes every definition into both sides of
// every inclusion, which must only be done once the definitions are expanded.
func (t *TBox) ApplyDefinitionsToInclusions() {
	defs := t.Definitions()
	inclusions := t.Inclusions()
	t.log(log.SectionTBox).Info("applying expanded definitions to GCIs", "definitions", len(defs), "inclusions", len(inclusions))
	for i, inc := range inclusions {
		inclusions[i] = NewInclusion(unfold(inc.LHS, defs), unfold(inc.RHS, defs))
	}
	t.replaceType(Inclusion, inclusions)
}

func unfold(c concept.Concept, defs []TBoxAxiom) concept.Concept {
	for _, def := range defs {
		c = concept.Replace(c, def.LHS, def.RHS)
	}
	return c
}
