package concept

import (
	"fmt"
	"github.com/cottand/dlnf/dlerr"
)

// Replace returns a copy of target where every subtree equal to old is
// replaced by replacement, at any depth. Composite nodes are rebuilt, atomic
// leaves and the replacement itself are shared.
func Replace(target, old, replacement Concept) Concept {
	r := replacer{old: KeyOf(old), replacement: replacement}
	return r.replace(target)
}

type replacer struct {
	old         Key
	replacement Concept
}

func (r replacer) replace(c Concept) Concept {
	if KeyOf(c) == r.old {
		return r.replacement
	}
	switch c := c.(type) {
	case *Not:
		return &Not{Sub: r.replace(c.Sub)}
	case *And:
		return &And{Subs: r.replaceAll(c.Subs)}
	case *Or:
		return &Or{Subs: r.replaceAll(c.Subs)}
	case *Only:
		return &Only{Relation: c.Relation, Sub: r.replace(c.Sub)}
	case *Some:
		return &Some{Relation: c.Relation, Sub: r.replace(c.Sub)}
	default:
		return c
	}
}

func (r replacer) replaceAll(subs []Concept) []Concept {
	res := make([]Concept, len(subs))
	for i, sub := range subs {
		res[i] = r.replace(sub)
	}
	return res
}

// Walk visits c and its subconcepts depth-first, parents before children.
// Returning false from visit stops the walk.
func Walk(c Concept, visit func(Concept) bool) bool {
	if !visit(c) {
		return false
	}
	switch c := c.(type) {
	case *Not:
		return Walk(c.Sub, visit)
	case *And:
		for _, sub := range c.Subs {
			if !Walk(sub, visit) {
				return false
			}
		}
	case *Or:
		for _, sub := range c.Subs {
			if !Walk(sub, visit) {
				return false
			}
		}
	case *Only:
		return Walk(c.Sub, visit)
	case *Some:
		return Walk(c.Sub, visit)
	}
	return true
}

// Contains reports whether sub occurs in c as a subtree, c itself included.
func Contains(c, sub Concept) bool {
	return ContainsKey(c, KeyOf(sub))
}

// ContainsKey is Contains for an already rendered subtree.
func ContainsKey(c Concept, sub Key) bool {
	found := false
	Walk(c, func(c Concept) bool {
		found = KeyOf(c) == sub
		return !found
	})
	return found
}

// Atoms returns the names of the atomic concepts occurring in c, in order of
// first occurrence.
func Atoms(c Concept) []string {
	var names []string
	seen := make(map[string]struct{})
	Walk(c, func(c Concept) bool {
		if a, ok := c.(*Atomic); ok {
			if _, dup := seen[a.Name]; !dup {
				seen[a.Name] = struct{}{}
				names = append(names, a.Name)
			}
		}
		return true
	})
	return names
}

// Validate checks that c is a well formed tree: no nil nodes, non-empty names
// and non-empty conjunctions and disjunctions.
func Validate(c Concept) error {
	var err error
	Walk(c, func(c Concept) bool {
		err = validateNode(c)
		return err == nil
	})
	return err
}

func validateNode(c Concept) error {
	invariant := func(format string, args ...any) error {
		return dlerr.New(dlerr.NewInvariant{Reason: fmt.Sprintf(format, args...)})
	}
	switch c := c.(type) {
	case nil:
		return invariant("nil concept")
	case *Atomic:
		if c == nil || c.Name == "" {
			return invariant("atomic concept without a name")
		}
	case *Not:
		if c == nil || c.Sub == nil {
			return invariant("negation without a subconcept")
		}
	case *And:
		if c == nil || len(c.Subs) == 0 {
			return invariant("empty conjunction")
		}
	case *Or:
		if c == nil || len(c.Subs) == 0 {
			return invariant("empty disjunction")
		}
	case *Only:
		if c == nil || c.Sub == nil || c.Relation.Name == "" {
			return invariant("universal restriction without a relation or subconcept")
		}
	case *Some:
		if c == nil || c.Sub == nil || c.Relation.Name == "" {
			return invariant("existential restriction without a relation or subconcept")
		}
	}
	return nil
}
