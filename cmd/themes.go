package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pickr/internal/config"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		listThemes(cmd.OutOrStdout(), cfg.Theme.Preset)
		return nil
	},
}

var themesUseCmd = &cobra.Command{
	Use:   "use <preset>",
	Short: "Set theme.preset in the config file",
	Long: `Set theme.preset in the config file. The file is created when it does
not exist yet; comments and other settings are kept.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: styles.PresetNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigFile()
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := useTheme(path, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s in %s\n", args[0], path)
		return nil
	},
}

func init() {
	themesCmd.AddCommand(themesUseCmd)
	rootCmd.AddCommand(themesCmd)
}

// swatchTokens are the colors previewed next to each preset.
var swatchTokens = []styles.ColorToken{
	styles.TokenTagActiveBg,
	styles.TokenButtonPrimaryBg,
	styles.TokenResultText,
	styles.TokenStatusError,
}

// listThemes writes one line per preset, marking current with an asterisk.
func listThemes(w io.Writer, current string) {
	if current == "" {
		current = "default"
	}
	nameStyle := lipgloss.NewStyle().Width(18)

	for _, name := range styles.PresetNames() {
		preset := styles.Presets[name]

		marker := " "
		if name == current {
			marker = "*"
		}

		var swatch string
		for _, token := range swatchTokens {
			swatch += lipgloss.NewStyle().Background(lipgloss.Color(preset.Colors[token])).Render("  ")
		}

		fmt.Fprintf(w, "%s %s %s  %s\n", marker, nameStyle.Render(name), swatch, preset.Description)
	}
}

// useTheme validates preset and saves it to the config file at path.
func useTheme(path, preset string) error {
	if _, err := styles.ResolveTheme(styles.ThemeConfig{Preset: preset}); err != nil {
		return err
	}
	if err := config.SaveThemePreset(path, preset); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
