package cmd

import (
	"bytes"
	"context"
	"github.com/cottand/dlnf/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNNFCommand(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	NNFCmd.SetOut(out)
	NNFCmd.SetErr(errOut)
	NNFCmd.SetArgs([]string{"not (and (A (some r B)))", "A B", "not not C"})

	err := NNFCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 concepts")
	assert.Equal(t, "(or ((not A) (only r (not B))))\nC\n", out.String())
	assert.Contains(t, errOut.String(), "A B: ")
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	tbox := writeFile(t, dir, "family.tbox", "A == (or B C)\nA -> D\n")
	abox := writeFile(t, dir, "family.abox", "(and (C D))[x]\nA[y]\nbroken\n")

	out := &bytes.Buffer{}
	NormalizeCmd.SetOut(out)
	NormalizeCmd.SetErr(&bytes.Buffer{})
	NormalizeCmd.SetArgs([]string{"--tbox", tbox, "--abox", abox, "--workers", "2", "--log-level", "error"})

	err := NormalizeCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), abox+": line 3: (E001)")
	assert.Contains(t, out.String(), "  - (or (B C))[y]")
	assert.Contains(t, out.String(), "GCI: (and ((or ((and ((not B) (not C))) D))))")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	tbox := writeFile(t, dir, "cyclic.tbox", "A == and (B C)\nB == A\nC -> D\n")

	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	CheckCmd.SetErr(&bytes.Buffer{})
	CheckCmd.SetArgs([]string{"--tbox", tbox})

	err := CheckCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic definitions: A -> B -> A")
	assert.Equal(t, "definitions: 2\ninclusions: 1\ndefined symbols:\n  - A\n  - B\n", out.String())
}

func TestWatchFiles(t *testing.T) {
	dir := t.TempDir()
	watched := writeFile(t, dir, "kb.tbox", "A -> B\n")

	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, log.Discard(), []string{watched, ""}, func() {
			runs.Add(1)
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	// files next to the watched one are ignored
	writeFile(t, dir, "other.tbox", "C -> D\n")
	writeFile(t, dir, "kb.tbox", "A -> C\n")
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
