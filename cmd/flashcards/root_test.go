package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_SessionOnEachBackend(t *testing.T) {
	script := strings.Join([]string{
		"1", "2+2", "4",
		"1", "2+2", "4",
		"2", "5",
		"3", "1",
		"4",
	}, "\n") + "\n"

	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			out, _, err := execute(t, script, "--backend", backend, "--shuffle=false")
			require.NoError(t, err)

			assert.Contains(t, out, "Flashcard added!")
			assert.Contains(t, out, "Duplicate flashcard not added.")
			assert.Contains(t, out, "Incorrect! The correct answer is: 4")
			assert.Contains(t, out, "1. 2+2")
			assert.Contains(t, out, "Flashcard deleted!")
			assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
		})
	}
}

func TestRoot_WindowsLineEndings(t *testing.T) {
	out, _, err := execute(t, "1\r\nA\r\nB\r\n2\r\nB\r\n4\r\n", "--shuffle=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Correct!")
}

func TestRoot_InvalidBackend(t *testing.T) {
	_, _, err := execute(t, "", "--backend", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLASHCARDS_BACKEND")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "", "extra")
	assert.Error(t, err)
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "1\nq\na\n4\n", "--log-level", "debug", "--backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, errOut, "backend=sqlite")
	assert.Contains(t, errOut, "flashcard added")
	assert.NotContains(t, out, "DEBUG")
}
