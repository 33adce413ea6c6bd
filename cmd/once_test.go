package cmd

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pickr/internal/clipboard"
	"github.com/zjrosen/pickr/internal/config"
	"github.com/zjrosen/pickr/internal/mocks"
	"github.com/zjrosen/pickr/internal/testutil"
)

type onceResult struct {
	stdout string
	stderr string
	err    error
}

// runOnceCmd runs once against a throwaway command so flag state does not
// carry between tests.
func runOnceCmd(t *testing.T, stdin io.Reader, args []string, copyFlag bool, seq *testutil.Sequence) onceResult {
	t.Helper()

	prev := onceRandomizer
	onceRandomizer = seq
	t.Cleanup(func() { onceRandomizer = prev })

	c := &cobra.Command{}
	c.Flags().Bool("copy", false, "")
	if copyFlag {
		require.NoError(t, c.Flags().Set("copy", "true"))
	}

	var out, errOut bytes.Buffer
	c.SetIn(stdin)
	c.SetOut(&out)
	c.SetErr(&errOut)

	err := runOnce(c, args)
	return onceResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func useClipboard(t *testing.T, cb clipboard.Clipboard) {
	t.Helper()
	prev := newClipboard
	newClipboard = func(config.Config) clipboard.Clipboard { return cb }
	t.Cleanup(func() { newClipboard = prev })
}

func TestOnce_PicksFromArgs(t *testing.T) {
	isolate(t)
	seq := testutil.NewSequence(2)

	res := runOnceCmd(t, strings.NewReader(""), []string{"pizza, sushi", "tacos"}, false, seq)

	require.NoError(t, res.err)
	require.Equal(t, "tacos\n", res.stdout)
	require.Equal(t, []int{3}, seq.Calls(), "one draw over every parsed choice")
}

func TestOnce_ReadsStdin(t *testing.T) {
	isolate(t)

	res := runOnceCmd(t, strings.NewReader("red\ngreen\n\nblue\n"), nil, false, testutil.NewSequence(1))

	require.NoError(t, res.err)
	require.Equal(t, "green\n", res.stdout)
}

func TestOnce_ArgsWinOverStdin(t *testing.T) {
	isolate(t)

	res := runOnceCmd(t, strings.NewReader("ignored"), []string{"only"}, false, testutil.NewSequence(0))

	require.NoError(t, res.err)
	require.Equal(t, "only\n", res.stdout)
}

func TestOnce_DuplicatesKeepTheirWeight(t *testing.T) {
	isolate(t)
	seq := testutil.NewSequence(1)

	res := runOnceCmd(t, strings.NewReader(""), []string{"a, a, b"}, false, seq)

	require.NoError(t, res.err)
	require.Equal(t, "a\n", res.stdout)
	require.Equal(t, []int{3}, seq.Calls())
}

func TestOnce_EmptyInput(t *testing.T) {
	isolate(t)

	res := runOnceCmd(t, strings.NewReader(" , ,\n"), nil, false, testutil.NewSequence(0))

	require.ErrorIs(t, res.err, errNoChoices)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, config.DefaultEmptyMessage)
}

func TestOnce_EmptyMessageFromConfig(t *testing.T) {
	isolate(t)
	writeFile(t, config.LocalConfigPath, "ui:\n  empty_message: \"Nothing to pick\"\n")

	res := runOnceCmd(t, strings.NewReader(""), []string{","}, false, testutil.NewSequence(0))

	require.ErrorIs(t, res.err, errNoChoices)
	require.Contains(t, res.stderr, "Nothing to pick")
}

func TestOnce_Copy(t *testing.T) {
	isolate(t)
	cb := mocks.NewMockClipboard(t)
	cb.EXPECT().Copy("sushi").Return(nil).Once()
	useClipboard(t, cb)

	res := runOnceCmd(t, strings.NewReader(""), []string{"pizza", "sushi"}, true, testutil.NewSequence(1))

	require.NoError(t, res.err)
	require.Equal(t, "sushi\n", res.stdout)
	require.Contains(t, res.stderr, "Copied!")
}

func TestOnce_CopyFailureStillPrints(t *testing.T) {
	isolate(t)
	cb := mocks.NewMockClipboard(t)
	cb.EXPECT().Copy("pizza").Return(errors.New("no clipboard utility available")).Once()
	useClipboard(t, cb)

	res := runOnceCmd(t, strings.NewReader(""), []string{"pizza"}, true, testutil.NewSequence(0))

	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "copying result")
	require.Equal(t, "pizza\n", res.stdout)
}

func TestOnce_NoCopyWithoutFlag(t *testing.T) {
	isolate(t)
	useClipboard(t, mocks.NewMockClipboard(t))

	res := runOnceCmd(t, strings.NewReader(""), []string{"pizza"}, false, testutil.NewSequence(0))

	require.NoError(t, res.err)
}

func TestOnceInput(t *testing.T) {
	got, err := onceInput(strings.NewReader("a\nb"), nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)

	got, err = onceInput(strings.NewReader("ignored"), []string{"x", "y, z"})
	require.NoError(t, err)
	require.Equal(t, "x,y, z", got)
}
