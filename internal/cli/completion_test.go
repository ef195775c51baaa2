package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a bare root command so generated scripts don't
// depend on which subcommands are registered.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swipr",
		Short: "A looping swipe-to-continue animation",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for swipr")
	assert.Contains(t, output, "__swipr_debug")
	assert.Contains(t, output, "complete -o default -F __start_swipr swipr")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef swipr")
	assert.Contains(t, output, "_swipr()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "fish completion for swipr")
	assert.Contains(t, output, "complete -c swipr")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_swipr", "should have start function")
	assert.Contains(t, output, "_swipr_root_command", "should have root command function")

	assert.Contains(t, output, "_swipr_window()")
	assert.Contains(t, output, "_swipr_snapshot()")
	assert.Contains(t, output, "_swipr_timeline()")
	assert.Contains(t, output, "_swipr_init()")
	assert.Contains(t, output, "_swipr_completion()")
}

func TestCompletionCommandWritesToCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	completionCmd.SetOut(&buf)
	defer completionCmd.SetOut(nil)

	err := completionCmd.RunE(completionCmd, []string{"zsh"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#compdef swipr")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	err := completionCmd.RunE(completionCmd, []string{"tcsh"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown shell: tcsh")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestCompletionCommandWriteFailure(t *testing.T) {
	completionCmd.SetOut(failingWriter{})
	defer completionCmd.SetOut(nil)

	err := completionCmd.RunE(completionCmd, []string{"bash"})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, ErrCodeCommandFailed, ErrorToJSON(err).Code)
}
