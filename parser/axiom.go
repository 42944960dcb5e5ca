package parser

import (
	"fmt"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/kb"
	"github.com/cottand/dlnf/util"
	"strings"
)

// ParseABoxAxiom parses a line of the form C[a] into a *kb.ConceptAxiom or
// r[a,b] into a *kb.RelationAxiom. The predicate of a relation axiom is taken
// literally as the relation name.
func ParseABoxAxiom(line string) (kb.ABoxAxiom, error) {
	s := strings.TrimSpace(line)
	predicate, tail, found := util.StringTakeUntil(s, '[')
	if !found {
		return nil, syntaxErr(s, "missing '[' before the arguments")
	}
	predicate = strings.TrimSpace(predicate)
	if predicate == "" {
		return nil, syntaxErr(s, "missing predicate before '['")
	}
	if !strings.HasSuffix(tail, "]") {
		return nil, syntaxErr(s, "missing closing ']'")
	}
	argList := tail[:len(tail)-1]
	if strings.ContainsAny(argList, "[]") {
		return nil, syntaxErr(s, "unexpected bracket in the arguments")
	}

	args := strings.Split(argList, ",")
	individuals := make([]concept.Individual, len(args))
	for i, arg := range args {
		name := strings.TrimSpace(arg)
		if name == "" {
			return nil, syntaxErr(s, fmt.Sprintf("argument %d is empty", i+1))
		}
		if !validName(name) {
			return nil, syntaxErr(s, fmt.Sprintf("invalid individual name '%s'", name))
		}
		individuals[i] = concept.Individual{Name: name}
	}

	switch len(individuals) {
	case 1:
		c, err := parseConcept(predicate)
		if err != nil {
			return nil, err
		}
		return &kb.ConceptAxiom{Concept: c, Individual: individuals[0]}, nil
	case 2:
		if !validName(predicate) {
			return nil, syntaxErr(s, fmt.Sprintf("invalid relation name '%s'", predicate))
		}
		return &kb.RelationAxiom{
			Relation: concept.Relation{Name: predicate},
			LHS:      individuals[0],
			RHS:      individuals[1],
		}, nil
	default:
		return nil, syntaxErr(s, fmt.Sprintf("expected 1 or 2 arguments, got %d", len(individuals)))
	}
}

// ParseTBoxAxiom parses a definition "C == D" or an inclusion "C -> D", splitting
// on the first delimiter found ("==" is looked for first). Both sides are
// converted to negation normal form.
func ParseTBoxAxiom(line string) (kb.TBoxAxiom, error) {
	s := strings.TrimSpace(line)
	var typ kb.AxiomType
	switch {
	case strings.Contains(s, kb.Definition.Delimiter()):
		typ = kb.Definition
	case strings.Contains(s, kb.Inclusion.Delimiter()):
		typ = kb.Inclusion
	default:
		return kb.TBoxAxiom{}, syntaxErr(s, "expected '==' or '->'")
	}
	at := strings.Index(s, typ.Delimiter())

	lhs, err := parseNNF(s[:at])
	if err != nil {
		return kb.TBoxAxiom{}, err
	}
	rhs, err := parseNNF(s[at+len(typ.Delimiter()):])
	if err != nil {
		return kb.TBoxAxiom{}, err
	}
	return kb.TBoxAxiom{Type: typ, LHS: lhs, RHS: rhs}, nil
}

func parseNNF(s string) (concept.Concept, error) {
	c, err := parseConcept(s)
	if err != nil {
		return nil, err
	}
	return concept.NNF(c)
}
