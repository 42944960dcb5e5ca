package parser

import (
	"github.com/cottand/dlnf/concept"
	"strings"
)

// ParseConcept parses s in the concept syntax:
//
//	concept := atomic | "(" concept ")" | "not" concept
//	         | "and" "(" concept+ ")" | "or" "(" concept+ ")"
//	         | "only" relation concept | "some" relation concept
//
// The parenthesised list after and/or holds atomic names or parenthesised
// concepts separated by whitespace; the parentheses around the list may be left
// out. Failures are dlerr.NewSyntax errors naming the offending input.
func ParseConcept(s string) (concept.Concept, error) {
	return parseConcept(s)
}

func parseConcept(input string) (concept.Concept, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, syntaxErr(input, "expected a concept")
	}

	if s[0] == '(' {
		end, err := matchParen(s, 0)
		if err != nil {
			return nil, err
		}
		if end != len(s)-1 {
			return nil, syntaxErr(s, "unexpected input after closing parenthesis")
		}
		return parseConcept(s[1:end])
	}

	head, rest := leadingToken(s)
	switch head {
	case "and":
		subs, err := parseList(s, rest)
		if err != nil {
			return nil, err
		}
		return concept.NewAnd(subs...), nil
	case "or":
		subs, err := parseList(s, rest)
		if err != nil {
			return nil, err
		}
		return concept.NewOr(subs...), nil
	case "not":
		if rest == "" {
			return nil, syntaxErr(s, "expected a concept after 'not'")
		}
		sub, err := parseConcept(rest)
		if err != nil {
			return nil, err
		}
		return concept.NewNot(sub), nil
	case "only", "some":
		relation, body := leadingToken(rest)
		if !validName(relation) {
			return nil, syntaxErr(s, "expected a relation name after '"+head+"'")
		}
		if body == "" {
			return nil, syntaxErr(s, "expected a concept after relation '"+relation+"'")
		}
		sub, err := parseConcept(body)
		if err != nil {
			return nil, err
		}
		if head == "only" {
			return concept.NewOnly(relation, sub), nil
		}
		return concept.NewSome(relation, sub), nil
	}

	if rest != "" {
		return nil, syntaxErr(s, "unexpected input after atomic concept '"+head+"'")
	}
	if !validName(head) {
		return nil, syntaxErr(s, "invalid concept name")
	}
	return concept.NewAtomic(head), nil
}

// parseList parses the operands of and/or, where whole is the full expression
// for error reporting and body is what follows the keyword
func parseList(whole, body string) ([]concept.Concept, error) {
	if body == "" {
		return nil, syntaxErr(whole, "expected a list of concepts")
	}
	if body[0] == '(' {
		end, err := matchParen(body, 0)
		if err != nil {
			return nil, err
		}
		if end == len(body)-1 {
			body = strings.TrimSpace(body[1:end])
		}
	}
	items, err := splitSiblings(body)
	if err != nil {
		return nil, err
	}
	// a list starting with a keyword is a single concept, as in "and (not A)"
	if isKeyword(items[0]) {
		sub, err := parseConcept(body)
		if err != nil {
			return nil, err
		}
		return []concept.Concept{sub}, nil
	}
	subs := make([]concept.Concept, len(items))
	for i, item := range items {
		if subs[i], err = parseConcept(item); err != nil {
			return nil, err
		}
	}
	return subs, nil
}
