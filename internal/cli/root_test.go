package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflylabs/prefly/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "prefly")
	assert.Contains(t, out, "next")
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "score")
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"tasks", "--output", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCmd_VerboseAndQuietAreExclusive(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"tasks", "--verbose", "--quiet"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	got := formatVersion(BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-03-01"})
	assert.Equal(t, "1.2.3 (commit: abc1234, built: 2026-03-01)", got)

	fallback := formatVersion(BuildInfo{})
	assert.Contains(t, fallback, "commit: none")
	assert.Contains(t, fallback, "built: unknown")
}
