package kb

import (
	"fmt"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/util"
)

// ABoxAxiom is implemented by *ConceptAxiom and *RelationAxiom only.
type ABoxAxiom interface {
	aboxAxiom()
	// String renders the axiom in the syntax it is parsed from
	String() string
}

// ConceptAxiom asserts Individual is an instance of Concept, written C[a].
type ConceptAxiom struct {
	Concept    concept.Concept
	Individual concept.Individual
}

// RelationAxiom asserts (LHS, RHS) is in Relation, written r[a,b].
type RelationAxiom struct {
	Relation concept.Relation
	LHS, RHS concept.Individual
}

func (*ConceptAxiom) aboxAxiom()  {}
func (*RelationAxiom) aboxAxiom() {}

func (a *ConceptAxiom) String() string {
	return fmt.Sprintf("%s[%s]", concept.KeyOf(a.Concept), a.Individual.Name)
}

func (a *RelationAxiom) String() string {
	return fmt.Sprintf("%s[%s,%s]", a.Relation.Name, a.LHS.Name, a.RHS.Name)
}

// ABox is a set of ABoxAxiom, unique by canonical form. The zero value is empty.
type ABox struct {
	axioms axiomSet[ABoxAxiom]
}

func NewABox(axioms ...ABoxAxiom) *ABox {
	return &ABox{axioms: newAxiomSet(axioms...)}
}

// Add inserts a unless an equal axiom is already present, and reports whether it was added.
func (b *ABox) Add(a ABoxAxiom) bool {
	var added bool
	b.axioms, added = b.axioms.insert(a)
	return added
}

func (b *ABox) Len() int {
	return b.axioms.len()
}

// Contains reports whether an axiom with the canonical form of a is present.
func (b *ABox) Contains(a ABoxAxiom) bool {
	return b.axioms.contains(a.String())
}

// Axioms returns the axioms in insertion order.
func (b *ABox) Axioms() []ABoxAxiom {
	return b.axioms.slice()
}

// ConceptAxioms returns the concept assertions in insertion order.
func (b *ABox) ConceptAxioms() []*ConceptAxiom {
	var res []*ConceptAxiom
	for a := range b.axioms.all() {
		if ca, ok := a.(*ConceptAxiom); ok {
			res = append(res, ca)
		}
	}
	return res
}

// RelationAxioms returns the relation assertions in insertion order.
func (b *ABox) RelationAxioms() []*RelationAxiom {
	var res []*RelationAxiom
	for a := range b.axioms.all() {
		if ra, ok := a.(*RelationAxiom); ok {
			res = append(res, ra)
		}
	}
	return res
}

// MapConcepts replaces the axiom set with one where every concept assertion has
// its concept rewritten by f. Relation assertions are kept as they are.
func (b *ABox) MapConcepts(f func(concept.Concept) concept.Concept) {
	b.axioms = b.axioms.mapped(func(a ABoxAxiom) ABoxAxiom {
		ca, ok := a.(*ConceptAxiom)
		if !ok {
			return a
		}
		return &ConceptAxiom{Concept: f(ca.Concept), Individual: ca.Individual}
	})
}

// ToNNF converts every concept assertion to negation normal form. Assertions
// that cannot be converted are kept unchanged and reported.
func (b *ABox) ToNNF() *dlerr.Errors {
	var errs *dlerr.Errors
	b.MapConcepts(func(c concept.Concept) concept.Concept {
		nnf, err := concept.NNF(c)
		if err != nil {
			errs = errs.With(dlerr.From(err))
			return c
		}
		return nnf
	})
	return errs
}

func (b *ABox) String() string {
	return "ABox:\n  - " + util.JoinString(b.Axioms(), "\n  - ")
}
