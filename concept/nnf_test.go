package concept_test

import (
	"errors"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	A = concept.NewAtomic("A")
	B = concept.NewAtomic("B")
	C = concept.NewAtomic("C")
)

func corpus() []concept.Concept {
	return []concept.Concept{
		A,
		concept.NewNot(A),
		concept.NewNot(concept.NewNot(A)),
		concept.NewNot(concept.NewAnd(A, concept.NewOr(B, concept.NewNot(C)))),
		concept.NewSome("r", concept.NewNot(concept.NewOnly("s", concept.NewAnd(A, B)))),
		concept.NewNot(concept.NewOr(concept.NewSome("r", A), concept.NewOnly("s", concept.NewNot(concept.NewNot(B))))),
		concept.NewAnd(concept.NewNot(concept.NewSome("r", concept.NewOr(A, B))), C),
		concept.NewNot(concept.NewNot(concept.NewNot(concept.NewOnly("hasChild", concept.NewNot(A))))),
	}
}

func mustNNF(t *testing.T, c concept.Concept) concept.Concept {
	t.Helper()
	nnf, err := concept.NNF(c)
	require.NoError(t, err)
	return nnf
}

func TestNNFRules(t *testing.T) {
	cases := map[string]struct {
		input    concept.Concept
		expected string
	}{
		"atomic": {
			input:    A,
			expected: "A",
		},
		"negated atomic": {
			input:    concept.NewNot(A),
			expected: "(not A)",
		},
		"double negation": {
			input:    concept.NewNot(concept.NewNot(A)),
			expected: "A",
		},
		"de morgan over and": {
			input:    concept.NewNot(concept.NewAnd(A, concept.NewOr(B, concept.NewNot(C)))),
			expected: "(or ((not A) (and ((not B) C))))",
		},
		"de morgan over or": {
			input:    concept.NewNot(concept.NewOr(A, B)),
			expected: "(and ((not A) (not B)))",
		},
		"negated only": {
			input:    concept.NewNot(concept.NewOnly("r", A)),
			expected: "(some r (not A))",
		},
		"negated some": {
			input:    concept.NewNot(concept.NewSome("r", concept.NewAnd(A, B))),
			expected: "(only r (or ((not A) (not B))))",
		},
		"recurses under quantifiers": {
			input:    concept.NewSome("r", concept.NewNot(concept.NewOnly("s", concept.NewAnd(A, B)))),
			expected: "(some r (some s (or ((not A) (not B)))))",
		},
		"triple negation": {
			input:    concept.NewNot(concept.NewNot(concept.NewNot(A))),
			expected: "(not A)",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			nnf := mustNNF(t, tc.input)
			assert.Equal(t, tc.expected, string(concept.KeyOf(nnf)))
			assert.True(t, concept.IsNNF(nnf), "result %s is not in NNF", nnf)
		})
	}
}

func TestNNFIsIdempotent(t *testing.T) {
	for _, c := range corpus() {
		t.Run(c.String(), func(t *testing.T) {
			once := mustNNF(t, c)
			twice := mustNNF(t, once)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("NNF not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestNNFDoubleNegation(t *testing.T) {
	for _, c := range corpus() {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t,
				concept.KeyOf(mustNNF(t, c)),
				concept.KeyOf(mustNNF(t, concept.NewNot(concept.NewNot(c)))),
			)
		})
	}
}

func TestNNFDeMorganDuality(t *testing.T) {
	cs := corpus()
	for i := 0; i+1 < len(cs); i++ {
		a, b := cs[i], cs[i+1]
		t.Run(a.String()+" and "+b.String(), func(t *testing.T) {
			got := mustNNF(t, concept.NewNot(concept.NewAnd(a, b)))
			wantOr := concept.NewOr(mustNNF(t, concept.NewNot(a)), mustNNF(t, concept.NewNot(b)))
			assert.Equal(t, concept.KeyOf(wantOr), concept.KeyOf(got))

			got = mustNNF(t, concept.NewNot(concept.NewOr(a, b)))
			wantAnd := concept.NewAnd(mustNNF(t, concept.NewNot(a)), mustNNF(t, concept.NewNot(b)))
			assert.Equal(t, concept.KeyOf(wantAnd), concept.KeyOf(got))
		})
	}
}

func TestNNFQuantifierDuality(t *testing.T) {
	for _, c := range corpus() {
		t.Run(c.String(), func(t *testing.T) {
			negatedSub := mustNNF(t, concept.NewNot(c))

			got := mustNNF(t, concept.NewNot(concept.NewOnly("r", c)))
			assert.Equal(t, concept.KeyOf(concept.NewSome("r", negatedSub)), concept.KeyOf(got))

			got = mustNNF(t, concept.NewNot(concept.NewSome("r", c)))
			assert.Equal(t, concept.KeyOf(concept.NewOnly("r", negatedSub)), concept.KeyOf(got))
		})
	}
}

func TestNNFUnsupported(t *testing.T) {
	cases := map[string]concept.Concept{
		"nil":                  nil,
		"negated nil":          concept.NewNot(nil),
		"nil inside and":       concept.NewAnd(A, nil),
		"nil under negated or": concept.NewNot(concept.NewOr(nil)),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := concept.NNF(c)
			require.Error(t, err)
			var dlErr dlerr.DLError
			require.True(t, errors.As(err, &dlErr))
			assert.Equal(t, dlerr.UnsupportedConstruct, dlErr.Code())
		})
	}
}

func TestNegateDoesNotSimplify(t *testing.T) {
	negated := concept.Negate(concept.NewNot(A))
	assert.Equal(t, "(not (not A))", negated.String())
	assert.False(t, concept.IsNNF(negated))
}
