package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/pickr/internal/app"
	"github.com/zjrosen/pickr/internal/choices"
	"github.com/zjrosen/pickr/internal/clipboard"
	"github.com/zjrosen/pickr/internal/config"
	"github.com/zjrosen/pickr/internal/log"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version    = "dev"
	cfgFile    string
	debug      bool
	logCleanup func()

	v = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "pickr [choices...]",
	Short: "A random choice picker for the terminal",
	Long: `pickr picks one option at random from a list you type, with a short
shuffle animation before the winner is revealed.

Arguments are joined with commas and prefilled into the entry box:

  pickr pizza sushi tacos
  pickr "pad thai, ramen"`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .pickr/config.yaml, then ~/.config/pickr/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write debug logs to pickr.log (or set PICKR_DEBUG)")

	rootCmd.Flags().Int("flashes", config.Defaults().Picker.Flashes,
		"number of shuffle flashes before the pick lands")
	rootCmd.Flags().Duration("interval", config.Defaults().Picker.Interval,
		"delay between shuffle flashes")
	rootCmd.Flags().Duration("settle", config.Defaults().Picker.Settle,
		"pause between the last flash and the final pick")
	rootCmd.Flags().Bool("no-mouse", false, "disable mouse support")

	bindFlags(v, rootCmd.Flags())
}

// bindFlags binds the animation flags to vp. Unchanged flags fall back to the
// config file.
func bindFlags(vp *viper.Viper, flags *pflag.FlagSet) {
	for _, name := range []string{"flashes", "interval", "settle"} {
		_ = vp.BindPFlag(config.Key("picker", name), flags.Lookup(name))
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	if !debug && !log.DebugFromEnv() {
		return nil
	}
	cleanup, err := log.InitWithTeaLog("pickr.log", "pickr")
	if err != nil {
		return err
	}
	logCleanup = cleanup
	log.Info(log.CatConfig, "Debug logging enabled", "version", version)
	return nil
}

// resolveConfigFile returns the config file to load, or "" when none exists.
// Lookup order:
//  1. --config flag
//  2. .pickr/config.yaml (current directory)
//  3. ~/.config/pickr/config.yaml (user config)
func resolveConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	if _, err := os.Stat(config.LocalConfigPath); err == nil {
		return config.LocalConfigPath
	}
	if p := config.DefaultConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadConfig reads the resolved config file (if any) into v and decodes it.
// It returns the path that was loaded so the caller can watch it.
func loadConfig() (config.Config, string, error) {
	path := resolveConfigFile()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, "", err
	}
	log.Debug(log.CatConfig, "Config loaded", "path", path)
	return cfg, path, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	noMouse, _ := cmd.Flags().GetBool("no-mouse")
	if noMouse {
		cfg.UI.Mouse = false
	}

	if err := styles.ApplyTheme(app.ThemeFromConfig(cfg.Theme)); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	zone.NewGlobal()

	services := app.Services{
		Clipboard: clipboard.SystemClipboard{OSC52: cfg.Copy.OSC52},
	}
	initial := choices.Join(choices.Parse(strings.Join(args, ",")))
	model := app.NewWithConfig(cfg, services, initial)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&model, opts...)

	if path != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			log.Info(log.CatConfig, "Config file changed", "path", e.Name, "op", e.Op.String())
			p.Send(reloadConfig(path, cmd.Flags(), noMouse))
		})
		v.WatchConfig()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// reloadConfig reads path into a fresh viper so a broken file surfaces as an
// error instead of silently keeping the last good values. Command line
// overrides stay in effect across reloads.
func reloadConfig(path string, flags *pflag.FlagSet, noMouse bool) app.ConfigReloadedMsg {
	fresh := config.NewViper()
	bindFlags(fresh, flags)
	fresh.SetConfigFile(path)
	if err := fresh.ReadInConfig(); err != nil {
		return app.ConfigReloadedMsg{Err: fmt.Errorf("reading config %s: %w", path, err)}
	}

	cfg, err := config.Load(fresh)
	if err != nil {
		return app.ConfigReloadedMsg{Err: err}
	}
	if noMouse {
		cfg.UI.Mouse = false
	}
	return app.ConfigReloadedMsg{Config: cfg}
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(s string) {
	version = s
	rootCmd.Version = s
}
