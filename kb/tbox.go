package kb

import (
	"fmt"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/util"
	"log/slog"
)

type AxiomType int

const (
	// Definition axioms, written lhs == rhs, state that lhs is a synonym of rhs
	Definition AxiomType = iota
	// Inclusion axioms, written lhs -> rhs, state that lhs is subsumed by rhs (a GCI)
	Inclusion
)

// Delimiter is the token separating both sides of an axiom of this type
func (t AxiomType) Delimiter() string {
	if t == Definition {
		return "=="
	}
	return "->"
}

func (t AxiomType) String() string {
	if t == Definition {
		return "definition"
	}
	return "inclusion"
}

type TBoxAxiom struct {
	Type     AxiomType
	LHS, RHS concept.Concept
}

func NewDefinition(lhs, rhs concept.Concept) TBoxAxiom {
	return TBoxAxiom{Type: Definition, LHS: lhs, RHS: rhs}
}

func NewInclusion(lhs, rhs concept.Concept) TBoxAxiom {
	return TBoxAxiom{Type: Inclusion, LHS: lhs, RHS: rhs}
}

// String renders the axiom canonically, it is the identity of the axiom within a TBox
func (a TBoxAxiom) String() string {
	return fmt.Sprintf("%s %s %s", concept.KeyOf(a.LHS), a.Type.Delimiter(), concept.KeyOf(a.RHS))
}

// TBox is a set of TBoxAxiom, unique by canonical form, in insertion order.
//
// Operations that rewrite axioms replace the whole set, so slices previously
// returned by Axioms, Definitions or Inclusions are never modified.
type TBox struct {
	axioms axiomSet[TBoxAxiom]
	logger *slog.Logger
}

type TBoxOption func(*TBox)

// WithLogger sets the logger used by the TBox rewrites
func WithLogger(l *slog.Logger) TBoxOption {
	return func(t *TBox) {
		t.logger = l
	}
}

func NewTBox(opts ...TBoxOption) *TBox {
	t := &TBox{axioms: newAxiomSet[TBoxAxiom]()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TBox) log(section string) *slog.Logger {
	return log.OrDiscard(t.logger).With("section", section)
}

// Add inserts a unless an equal axiom is already present, and reports whether it was added.
func (t *TBox) Add(a TBoxAxiom) bool {
	var added bool
	t.axioms, added = t.axioms.insert(a)
	return added
}

func (t *TBox) Len() int {
	return t.axioms.len()
}

func (t *TBox) Contains(a TBoxAxiom) bool {
	return t.axioms.contains(a.String())
}

// Axioms returns all axioms in insertion order
func (t *TBox) Axioms() []TBoxAxiom {
	return t.axioms.slice()
}

func (t *TBox) Definitions() []TBoxAxiom {
	return t.ofType(Definition)
}

func (t *TBox) Inclusions() []TBoxAxiom {
	return t.ofType(Inclusion)
}

func (t *TBox) ofType(typ AxiomType) []TBoxAxiom {
	var res []TBoxAxiom
	for a := range t.axioms.all() {
		if a.Type == typ {
			res = append(res, a)
		}
	}
	return res
}

// DefinedKeys returns the canonical forms of the left-hand sides of all
// definitions, sorted and without duplicates
func (t *TBox) DefinedKeys() []concept.Key {
	var keys []string
	for _, def := range t.Definitions() {
		keys = append(keys, string(concept.KeyOf(def.LHS)))
	}
	uniq := util.SortedUniq(keys)
	res := make([]concept.Key, len(uniq))
	for i, k := range uniq {
		res[i] = concept.Key(k)
	}
	return res
}

// replaceType swaps every axiom of type typ for the one at the same position in
// replacements, keeping the other axioms and the overall order.
func (t *TBox) replaceType(typ AxiomType, replacements []TBoxAxiom) {
	i := 0
	t.axioms = t.axioms.mapped(func(a TBoxAxiom) TBoxAxiom {
		if a.Type != typ {
			return a
		}
		next := replacements[i]
		i++
		return next
	})
}

func (t *TBox) String() string {
	return "TBox:\n  - " + util.JoinString(t.Axioms(), "\n  - ")
}
