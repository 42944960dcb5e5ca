// Package concept implements the concept algebra of the ALC description logic:
// a closed set of concept constructors plus the structural rewrites (negation,
// negation normal form, substitution) the knowledge-base front end relies on.
//
// Concept trees are never mutated after construction. Every rewrite returns a
// freshly built tree, so subtrees may be shared between results.
package concept

// Concept is implemented by *Atomic, *Not, *And, *Or, *Only and *Some only.
type Concept interface {
	conceptNode()
	// String returns the canonical syntax of the concept, see KeyOf.
	String() string
}

// Relation is a role name, as used in Only and Some.
type Relation struct {
	Name string
}

func (r Relation) String() string { return r.Name }

// Individual is a named ABox entity.
type Individual struct {
	Name string
}

func (i Individual) String() string { return i.Name }

// Atomic is a named primitive concept.
type Atomic struct {
	Name string
}

// Not is the complement of Sub.
type Not struct {
	Sub Concept
}

// And is the n-ary intersection of Subs, in order.
type And struct {
	Subs []Concept
}

// Or is the n-ary union of Subs, in order.
type Or struct {
	Subs []Concept
}

// Only is the universal restriction: every R-successor is a Sub.
type Only struct {
	Relation Relation
	Sub      Concept
}

// Some is the existential restriction: some R-successor is a Sub.
type Some struct {
	Relation Relation
	Sub      Concept
}

func (*Atomic) conceptNode() {}
func (*Not) conceptNode()    {}
func (*And) conceptNode()    {}
func (*Or) conceptNode()     {}
func (*Only) conceptNode()   {}
func (*Some) conceptNode()   {}

func NewAtomic(name string) *Atomic {
	return &Atomic{Name: name}
}

func NewNot(sub Concept) *Not {
	return &Not{Sub: sub}
}

func NewAnd(subs ...Concept) *And {
	return &And{Subs: subs}
}

func NewOr(subs ...Concept) *Or {
	return &Or{Subs: subs}
}

func NewOnly(relation string, sub Concept) *Only {
	return &Only{Relation: Relation{Name: relation}, Sub: sub}
}

func NewSome(relation string, sub Concept) *Some {
	return &Some{Relation: Relation{Name: relation}, Sub: sub}
}

// Kind names the constructor of c, mostly useful for logging.
func Kind(c Concept) string {
	switch c.(type) {
	case *Atomic:
		return "atomic"
	case *Not:
		return "not"
	case *And:
		return "and"
	case *Or:
		return "or"
	case *Only:
		return "only"
	case *Some:
		return "some"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}
