package kb

import (
	"fmt"
	"github.com/benbjohnson/immutable"
	"iter"
)

// axiomSet is a persistent set of axioms, unique by their canonical String and
// iterated in insertion order. Insert returns a new set and leaves the receiver
// untouched, so a TBox or ABox can hand out its current set while computing the
// next one.
type axiomSet[A fmt.Stringer] struct {
	order *immutable.List[A]
	index *immutable.Map[string, int]
}

func newAxiomSet[A fmt.Stringer](axioms ...A) axiomSet[A] {
	s := axiomSet[A]{
		order: immutable.NewList[A](),
		index: immutable.NewMap[string, int](immutable.NewHasher("")),
	}
	for _, a := range axioms {
		s, _ = s.insert(a)
	}
	return s
}

// insert adds a unless an axiom with the same canonical form is present.
func (s axiomSet[A]) insert(a A) (axiomSet[A], bool) {
	if s.order == nil {
		s = newAxiomSet[A]()
	}
	key := a.String()
	if _, ok := s.index.Get(key); ok {
		return s, false
	}
	return axiomSet[A]{
		order: s.order.Append(a),
		index: s.index.Set(key, s.order.Len()),
	}, true
}

func (s axiomSet[A]) contains(key string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index.Get(key)
	return ok
}

func (s axiomSet[A]) len() int {
	if s.order == nil {
		return 0
	}
	return s.order.Len()
}

func (s axiomSet[A]) all() iter.Seq[A] {
	return func(yield func(A) bool) {
		if s.order == nil {
			return
		}
		itr := s.order.Iterator()
		for !itr.Done() {
			_, a := itr.Next()
			if !yield(a) {
				return
			}
		}
	}
}

func (s axiomSet[A]) slice() []A {
	res := make([]A, 0, s.len())
	for a := range s.all() {
		res = append(res, a)
	}
	return res
}

// mapped builds a new set from f applied to every axiom, in order.
// Axioms that become equal after f collapse into the first one.
func (s axiomSet[A]) mapped(f func(A) A) axiomSet[A] {
	next := newAxiomSet[A]()
	for a := range s.all() {
		next, _ = next.insert(f(a))
	}
	return next
}
