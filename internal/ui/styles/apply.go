// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := ResolveTheme(cfg)
	if err != nil {
		return err
	}
	applyColors(colors)
	rebuildStyles()
	return nil
}

// ResolveTheme validates cfg and returns the final token map without
// touching the active styles.
func ResolveTheme(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	return colors, nil
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes once a theme is applied
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenTextPlaceholder: &TextPlaceholderColor,

		TokenBorderDefault:   &BorderDefaultColor,
		TokenBorderFocus:     &BorderFocusColor,
		TokenBorderHighlight: &BorderHighlightFocusColor,

		TokenStatusSuccess: &StatusSuccessColor,
		TokenStatusWarning: &StatusWarningColor,
		TokenStatusError:   &StatusErrorColor,

		TokenButtonText:             &ButtonTextColor,
		TokenButtonPrimaryBg:        &ButtonPrimaryBgColor,
		TokenButtonPrimaryFocusBg:   &ButtonPrimaryFocusBgColor,
		TokenButtonSecondaryBg:      &ButtonSecondaryBgColor,
		TokenButtonSecondaryFocusBg: &ButtonSecondaryFocusBgColor,
		TokenButtonDisabledBg:       &ButtonDisabledBgColor,

		TokenTagText:       &TagTextColor,
		TokenTagBorder:     &TagBorderColor,
		TokenTagActiveText: &TagActiveTextColor,
		TokenTagActiveBg:   &TagActiveBgColor,

		TokenResultText: &ResultTextColor,

		TokenOverlayTitle:  &OverlayTitleColor,
		TokenOverlayBorder: &OverlayBorderColor,

		TokenToastSuccess: &ToastBorderSuccessColor,
		TokenToastError:   &ToastBorderErrorColor,
		TokenToastInfo:    &ToastBorderInfoColor,
		TokenToastWarn:    &ToastBorderWarnColor,
	}

	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

// rebuildStyles recreates all styles from the current color variables.
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimaryColor)

	HintStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor).
		Padding(0, 1)

	InputFocusedStyle = InputStyle.
		BorderForeground(BorderFocusColor)

	baseButtonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DisabledButtonStyle = baseButtonStyle.
		Bold(false).
		Faint(true).
		Foreground(TextMutedColor).
		Background(ButtonDisabledBgColor)

	ConfirmButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(StatusSuccessColor)

	TagStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TagBorderColor).
		Foreground(TagTextColor).
		Padding(0, 1)

	TagActiveStyle = TagStyle.
		BorderForeground(TagActiveBgColor).
		Foreground(TagActiveTextColor).
		Background(TagActiveBgColor).
		Bold(true)

	ResultBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderHighlightFocusColor).
		Padding(0, 1)

	ResultLabelStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor)

	ResultValueStyle = lipgloss.NewStyle().
		Foreground(ResultTextColor).
		Bold(true)

	ResultNoticeStyle = lipgloss.NewStyle().
		Foreground(StatusWarningColor)

	ResultEmptyStyle = lipgloss.NewStyle().
		Foreground(TextPlaceholderColor)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
