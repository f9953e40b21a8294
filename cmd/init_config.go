package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filerelay/filerelay-dock/internal/config"
	"github.com/filerelay/filerelay-dock/internal/platform"
)

var editConfig bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default config file and exit",
	Long: `Writes the commented default configuration to the config path.
An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().BoolVar(&editConfig, "edit", false, "Open the config file with the default application")
	rootCmd.AddCommand(initConfigCmd)
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	written, err := config.EnsureDefaultFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		fmt.Fprintf(out, "%s already exists\n", path)
	}

	if editConfig {
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
	}
	return nil
}
