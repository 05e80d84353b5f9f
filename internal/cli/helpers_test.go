package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with fresh flag state, the given stdin and a
// temporary HOME so nothing leaks into the real user directory.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	cfgFile, logLevel, envFile = "", "", filepath.Join(t.TempDir(), ".env")

	var stdout, stderr bytes.Buffer
	cmd := GetRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writeConfig writes a config file into dir and returns its path.
func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "jokebot.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}
