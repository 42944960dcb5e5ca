package pipeline

import (
	"bytes"
	"context"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"log/slog"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func axiomStrings[A interface{ String() string }](axioms []A) []string {
	res := make([]string, len(axioms))
	for i, a := range axioms {
		res[i] = a.String()
	}
	return res
}

func TestNormalizeExample(t *testing.T) {
	src := Sources{
		TBox: "A == (or B C)\nA -> D\n",
		ABox: "(and (C D))[x]\nA[y]\nr[x,y]\n",
	}
	res, err := Normalize(context.Background(), src, Settings{})
	require.NoError(t, err)

	assert.True(t, res.Complete)
	assert.False(t, res.HasError())
	assert.Equal(t, []string{"A == (or (B C))", "(or (B C)) -> D"}, axiomStrings(res.TBox.Axioms()))
	assert.Equal(t, []string{"(and (C D))[x]", "(or (B C))[y]", "r[x,y]"}, axiomStrings(res.ABox.Axioms()))
	require.NotNil(t, res.GCI)
	assert.Equal(t, "(and ((or ((and ((not B) (not C))) D))))", res.GCI.String())
}

func TestNormalizeConvertsABoxToNNF(t *testing.T) {
	src := Sources{
		TBox: "Parent == some hasChild Person",
		ABox: "(not Parent)[ann]\n(not (and (A (only r B))))[bob]",
	}
	res, err := Normalize(context.Background(), src, Settings{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(only hasChild (not Person))[ann]",
		"(or ((not A) (some r (not B))))[bob]",
	}, axiomStrings(res.ABox.Axioms()))
	assert.Nil(t, res.GCI)
	assert.True(t, res.Complete)
}

func TestNormalizeReportsLineErrors(t *testing.T) {
	src := Sources{
		TBox: "A -> B\nA => C\n\nB -> (C\n",
		ABox: "A[x]\nA[x,y,z]\n",
	}
	res, err := Normalize(context.Background(), src, Settings{})
	require.NoError(t, err)

	assert.True(t, res.HasError())
	assert.True(t, res.Complete)
	var lines []int
	for _, e := range res.TBoxErrors.Errors() {
		assert.Equal(t, dlerr.Syntax, e.Code())
		lines = append(lines, e.Line())
	}
	assert.Equal(t, []int{2, 4}, lines)
	require.Len(t, res.ABoxErrors.Errors(), 1)
	assert.Equal(t, 2, res.ABoxErrors.Errors()[0].Line())

	assert.Equal(t, "(and ((or ((not A) B))))", res.GCI.String())
	assert.Equal(t, []string{"A[x]"}, axiomStrings(res.ABox.Axioms()))
}

func TestNormalizeRejectsCycles(t *testing.T) {
	src := Sources{
		TBox: "A == and (B C)\nB == A\nA -> D",
		ABox: "A[x]",
	}
	res, err := Normalize(context.Background(), src, Settings{Cycles: kb.RejectCycles})
	require.NoError(t, err)

	assert.False(t, res.Complete)
	assert.Nil(t, res.GCI)
	require.Len(t, res.TBoxErrors.WithCode(dlerr.DefinitionCycle), 1)
	assert.Equal(t, []string{"A[x]"}, axiomStrings(res.ABox.Axioms()))
}

func TestNormalizeContinuesAfterLeftovers(t *testing.T) {
	src := Sources{
		TBox: "S == and (T Q)\nT == P\nand (P Q) == R\nS -> V",
		ABox: "S[x]",
	}
	res, err := Normalize(context.Background(), src, Settings{})
	require.NoError(t, err)

	assert.True(t, res.Complete)
	require.Len(t, res.TBoxErrors.WithCode(dlerr.UnexpandedDefinition), 1)
	// propagation substitutes in TBox order, so the leftover is rewritten on the way
	assert.Equal(t, []string{"R[x]"}, axiomStrings(res.ABox.Axioms()))
	require.NotNil(t, res.GCI)
	assert.Equal(t, "(and ((or ((not R) V))))", res.GCI.String())
}

func TestNormalizeBestEffort(t *testing.T) {
	src := Sources{
		TBox: "A == and (B C)\nB == A\nA -> D",
		ABox: "A[x]",
	}
	res, err := Normalize(context.Background(), src, Settings{Cycles: kb.BestEffort})
	require.NoError(t, err)

	assert.True(t, res.Complete)
	assert.Len(t, res.TBoxErrors.WithCode(dlerr.DefinitionCycle), 1)
	require.NotNil(t, res.GCI)
	assert.Equal(t, "(and ((or ((or ((not A) (not C))) D))))", res.GCI.String())
}

func TestNormalizeWorkersAgree(t *testing.T) {
	var tbox, abox strings.Builder
	tbox.WriteString("Q == or (P (not R))\n")
	for i := range 40 {
		tbox.WriteString("A" + string(rune('a'+i%26)) + " -> some r Q\n")
		abox.WriteString("(and (Q A" + string(rune('a'+i%26)) + "))[x]\n")
	}
	src := Sources{TBox: tbox.String(), ABox: abox.String()}

	sequential, err := Normalize(context.Background(), src, Settings{Workers: 1})
	require.NoError(t, err)
	concurrent, err := Normalize(context.Background(), src, Settings{Workers: 6})
	require.NoError(t, err)

	assert.Equal(t, sequential.TBox.String(), concurrent.TBox.String())
	assert.Equal(t, sequential.ABox.String(), concurrent.ABox.String())
	assert.Equal(t, sequential.GCI.String(), concurrent.GCI.String())
}

func TestNormalizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Normalize(ctx, Sources{TBox: "A -> B"}, Settings{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(buf, log.Options{Level: slog.LevelInfo, Sections: []string{log.SectionPipeline}})

	_, err := Normalize(context.Background(), Sources{TBox: "A -> B"}, Settings{Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "normalized knowledge base")
	assert.NotContains(t, buf.String(), "parsed TBox")
}
