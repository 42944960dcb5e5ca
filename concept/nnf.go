package concept

import (
	"github.com/cottand/dlnf/dlerr"
)

// Negate wraps c in Not. It does not simplify, use NNF for that.
func Negate(c Concept) Concept {
	return &Not{Sub: c}
}

// NNF rewrites c into negation normal form, where Not only ever wraps an Atomic.
//
// The rewrite preserves equivalence:
//
//	¬¬C      => C
//	¬(C ⊓ D) => ¬C ⊔ ¬D
//	¬(C ⊔ D) => ¬C ⊓ ¬D
//	¬∀r.C    => ∃r.¬C
//	¬∃r.C    => ∀r.¬C
//
// NNF is idempotent. A shape outside the closed set of constructors, such as a nil
// subconcept, results in a dlerr.NewUnsupportedConstruct.
func NNF(c Concept) (Concept, error) {
	switch c := c.(type) {
	case *Atomic:
		return c, nil
	case *Not:
		return nnfNot(c)
	case *And:
		subs, err := nnfAll(c.Subs, false)
		if err != nil {
			return nil, err
		}
		return &And{Subs: subs}, nil
	case *Or:
		subs, err := nnfAll(c.Subs, false)
		if err != nil {
			return nil, err
		}
		return &Or{Subs: subs}, nil
	case *Only:
		sub, err := NNF(c.Sub)
		if err != nil {
			return nil, err
		}
		return &Only{Relation: c.Relation, Sub: sub}, nil
	case *Some:
		sub, err := NNF(c.Sub)
		if err != nil {
			return nil, err
		}
		return &Some{Relation: c.Relation, Sub: sub}, nil
	default:
		return nil, dlerr.New(dlerr.NewUnsupportedConstruct{Operation: "nnf", Kind: Kind(c)})
	}
}

func nnfNot(c *Not) (Concept, error) {
	switch sub := c.Sub.(type) {
	case *Atomic:
		return c, nil
	case *Not:
		return NNF(sub.Sub)
	case *And:
		subs, err := nnfAll(sub.Subs, true)
		if err != nil {
			return nil, err
		}
		return &Or{Subs: subs}, nil
	case *Or:
		subs, err := nnfAll(sub.Subs, true)
		if err != nil {
			return nil, err
		}
		return &And{Subs: subs}, nil
	case *Only:
		inner, err := NNF(Negate(sub.Sub))
		if err != nil {
			return nil, err
		}
		return &Some{Relation: sub.Relation, Sub: inner}, nil
	case *Some:
		inner, err := NNF(Negate(sub.Sub))
		if err != nil {
			return nil, err
		}
		return &Only{Relation: sub.Relation, Sub: inner}, nil
	default:
		return nil, dlerr.New(dlerr.NewUnsupportedConstruct{Operation: "nnf of negation", Kind: Kind(sub)})
	}
}

// nnfAll converts every element of subs, negating each one first if negate is set.
func nnfAll(subs []Concept, negate bool) ([]Concept, error) {
	res := make([]Concept, len(subs))
	for i, sub := range subs {
		if negate {
			sub = Negate(sub)
		}
		converted, err := NNF(sub)
		if err != nil {
			return nil, err
		}
		res[i] = converted
	}
	return res, nil
}

// IsNNF reports whether Not only occurs directly above Atomic concepts in c.
func IsNNF(c Concept) bool {
	nnf := true
	Walk(c, func(c Concept) bool {
		if not, ok := c.(*Not); ok {
			if _, atomic := not.Sub.(*Atomic); !atomic {
				nnf = false
			}
		}
		return nnf
	})
	return nnf
}
