package kb_test

import (
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAggregateNoInclusions(t *testing.T) {
	tbox := mustTBox(t, "A == B")
	gci, errs := tbox.AggregateInclusions()
	assert.Nil(t, gci)
	assert.False(t, errs.HasError())
}

func TestAggregateInclusions(t *testing.T) {
	cases := map[string]struct {
		lines    []string
		expected string
	}{
		"single inclusion": {
			lines:    []string{"A -> B"},
			expected: "(and ((or ((not A) B))))",
		},
		"insertion order": {
			lines:    []string{"B -> C", "A -> B"},
			expected: "(and ((or ((not B) C)) (or ((not A) B))))",
		},
		"negated compound lhs": {
			lines:    []string{"and (A (some r B)) -> C"},
			expected: "(and ((or ((or ((not A) (only r (not B)))) C))))",
		},
		"expanded definition": {
			lines:    []string{"A == or (B C)", "A -> D"},
			expected: "(and ((or ((and ((not B) (not C))) D))))",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tbox := mustTBox(t, tc.lines...)
			require.False(t, tbox.ExpandAllDefinitions(kb.RejectCycles).HasError())
			tbox.ApplyDefinitionsToInclusions()

			gci, errs := tbox.AggregateInclusions()
			require.False(t, errs.HasError(), errs.String())
			require.NotNil(t, gci)
			assert.Equal(t, tc.expected, gci.String())
			assert.True(t, concept.IsNNF(gci))
			assert.Len(t, gci.Subs, len(tbox.Inclusions()))
		})
	}
}

func TestAggregateSkipsBrokenInclusions(t *testing.T) {
	tbox := kb.NewTBox()
	tbox.Add(kb.NewInclusion(concept.NewAtomic("A"), concept.NewAtomic("B")))
	tbox.Add(kb.NewInclusion(concept.NewOr(nil), concept.NewAtomic("B")))

	gci, errs := tbox.AggregateInclusions()
	require.NotNil(t, gci)
	assert.Equal(t, "(and ((or ((not A) B))))", gci.String())
	require.Len(t, errs.Errors(), 1)
	assert.Equal(t, dlerr.UnsupportedConstruct, errs.Errors()[0].Code())

	only := kb.NewTBox()
	only.Add(kb.NewInclusion(concept.NewNot(nil), concept.NewAtomic("B")))
	gci, errs = only.AggregateInclusions()
	assert.Nil(t, gci)
	assert.True(t, errs.HasError())
}
