package concept_test

import (
	"github.com/cottand/dlnf/concept"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCanonicalForm(t *testing.T) {
	cases := map[string]struct {
		c        concept.Concept
		expected concept.Key
	}{
		"atomic":      {A, "A"},
		"not":         {concept.NewNot(A), "(not A)"},
		"and":         {concept.NewAnd(A, B), "(and (A B))"},
		"single or":   {concept.NewOr(A), "(or (A))"},
		"nested list": {concept.NewOr(A, concept.NewNot(B)), "(or (A (not B)))"},
		"only":        {concept.NewOnly("r", concept.NewSome("s", A)), "(only r (some s A))"},
		"long role":   {concept.NewSome("hasChild", concept.NewAnd(A, B, C)), "(some hasChild (and (A B C)))"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, concept.KeyOf(tc.c))
			assert.Equal(t, string(tc.expected), tc.c.String())
		})
	}
}

func TestEqualIsStructural(t *testing.T) {
	assert.True(t, concept.Equal(concept.NewAnd(A, B), concept.NewAnd(concept.NewAtomic("A"), concept.NewAtomic("B"))))
	// commutativity is not taken into account
	assert.False(t, concept.Equal(concept.NewAnd(A, B), concept.NewAnd(B, A)))
	assert.False(t, concept.Equal(concept.NewOnly("r", A), concept.NewSome("r", A)))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "atomic", concept.Kind(A))
	assert.Equal(t, "some", concept.Kind(concept.NewSome("r", A)))
	assert.Equal(t, "nil", concept.Kind(nil))
}
