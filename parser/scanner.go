package parser

import (
	"slices"
	"strings"
	"unicode"
)

var keywords = []string{"and", "or", "not", "only", "some"}

func isKeyword(token string) bool {
	return slices.Contains(keywords, token)
}

// leadingToken splits trimmed input s into its first token and the trimmed
// remainder. A token ends at whitespace or at an opening parenthesis.
func leadingToken(s string) (token, rest string) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '('
	})
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimSpace(s[end:])
}

// matchParen returns the index of the parenthesis closing the one at s[open].
func matchParen(s string, open int) (int, error) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, syntaxErr(s[open:], "unbalanced parenthesis")
}

// splitSiblings splits a space-joined list of concepts at whitespace outside of
// parentheses, so "A (not B) (or (C D))" yields "A", "(not B)" and "(or (C D))".
func splitSiblings(s string) ([]string, error) {
	var items []string
	depth := 0
	start := -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, syntaxErr(s, "unexpected closing parenthesis")
			}
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				items = append(items, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if depth != 0 {
		return nil, syntaxErr(s, "unbalanced parenthesis")
	}
	if start >= 0 {
		items = append(items, s[start:])
	}
	if len(items) == 0 {
		return nil, syntaxErr(s, "expected at least one concept")
	}
	return items, nil
}

// validName checks that name can be used as an atomic concept, relation or individual name
func validName(name string) bool {
	if name == "" || isKeyword(name) {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("()[],", r)
	})
}
