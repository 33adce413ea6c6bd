package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pickr/internal/choices"
	"github.com/zjrosen/pickr/internal/clipboard"
	"github.com/zjrosen/pickr/internal/config"
	"github.com/zjrosen/pickr/internal/log"
	"github.com/zjrosen/pickr/internal/picker"
)

// errNoChoices is returned by once when the input held no options.
var errNoChoices = errors.New("no choices given")

// Swapped out in tests.
var (
	onceRandomizer picker.Randomizer = picker.RandSource{}
	newClipboard                     = func(cfg config.Config) clipboard.Clipboard {
		return clipboard.SystemClipboard{OSC52: cfg.Copy.OSC52}
	}
)

var onceCmd = &cobra.Command{
	Use:   "once [choices...]",
	Short: "Pick once and print the result without the TUI",
	Long: `Pick one option and print it to stdout.

Choices come from the arguments, or from stdin when no arguments are given.
Commas and newlines both separate options:

  pickr once pizza sushi tacos
  printf 'red\ngreen\nblue\n' | pickr once`,
	RunE: runOnce,
}

func init() {
	onceCmd.Flags().Bool("copy", false, "also copy the result to the clipboard")
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := onceInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	list := choices.Parse(raw)
	if len(list) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), cfg.UI.EmptyMessage)
		return errNoChoices
	}

	result := pickOne(list, onceRandomizer)
	log.Debug(log.CatPicker, "Picked once", "choices", len(list), "result", result)
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		if err := newClipboard(cfg).Copy(result); err != nil {
			return fmt.Errorf("copying result: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}
	return nil
}

// onceInput returns the raw choice text. Arguments win; otherwise stdin is
// read unless it is an interactive terminal.
func onceInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ","), nil
	}
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// pickOne draws a single uniform choice. list must be non-empty.
func pickOne(list []string, rng picker.Randomizer) string {
	return list[rng.IntN(len(list))]
}
