package cli

import (
	"fmt"

	"github.com/harun/jokebot/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration a session would run with, after the config
file, the dotenv file and JOKEBOT_* environment variables are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n", config.NewLoader(cfgFile).GetConfigPath())
	fmt.Fprintln(out, cfg.String())

	return nil
}
