package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pickr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pickr config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write a commented default config file to --config, or to
~/.config/pickr/config.yaml when no path is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		force, _ := cmd.Flags().GetBool("force")
		if err := initConfigFile(path, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file pickr would load",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		path := resolveConfigFile()
		if path == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "no config file (defaults in use; run 'pickr config init' to create %s)\n",
				config.DefaultConfigPath())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfigFile writes the default template to path. An existing file is
// only replaced when force is set.
func initConfigFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	return config.WriteDefaultConfig(path)
}
