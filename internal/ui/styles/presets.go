// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the pickr color scheme (Dark values of styles.go).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default pickr theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDisabledBg:       "#2D2D2D",

		// Tags
		TokenTagText:       "#CCCCCC",
		TokenTagBorder:     "#696969",
		TokenTagActiveText: "#1E1E1E",
		TokenTagActiveBg:   "#FECA57",

		// Result
		TokenResultText: "#73F59F",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Toast notifications
		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha palette.
// https://github.com/catppuccin/catppuccin
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CDD6F4", // text
		TokenBorderHighlight: "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2
		TokenButtonDisabledBg:       "#313244", // surface0

		TokenTagText:       "#CDD6F4", // text
		TokenTagBorder:     "#6C7086", // overlay0
		TokenTagActiveText: "#1E1E2E", // base
		TokenTagActiveBg:   "#F5C2E7", // pink

		TokenResultText: "#A6E3A1", // green

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow
	},
}

// DraculaPreset is the Dracula palette.
// https://draculatheme.com
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextPlaceholder: "#6272A4", // comment

		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderFocus:     "#F8F8F2", // foreground
		TokenBorderHighlight: "#BD93F9", // purple

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDisabledBg:       "#21222C",

		TokenTagText:       "#F8F8F2", // foreground
		TokenTagBorder:     "#6272A4", // comment
		TokenTagActiveText: "#282A36", // background
		TokenTagActiveBg:   "#FF79C6", // pink

		TokenResultText: "#50FA7B", // green

		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#F1FA8C", // yellow
	},
}

// NordPreset is the Nord palette.
// https://www.nordtheme.com
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#4C566A", // polar night 4

		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderFocus:     "#ECEFF4", // snow storm 3
		TokenBorderHighlight: "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenButtonText:             "#ECEFF4", // snow storm 3
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#434C5E", // polar night 3
		TokenButtonSecondaryFocusBg: "#4C566A", // polar night 4
		TokenButtonDisabledBg:       "#3B4252", // polar night 2

		TokenTagText:       "#ECEFF4", // snow storm 3
		TokenTagBorder:     "#4C566A", // polar night 4
		TokenTagActiveText: "#2E3440", // polar night 1
		TokenTagActiveBg:   "#EBCB8B", // aurora yellow

		TokenResultText: "#A3BE8C", // aurora green

		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4

		TokenToastSuccess: "#A3BE8C", // aurora green
		TokenToastError:   "#BF616A", // aurora red
		TokenToastInfo:    "#88C0D0", // frost 2
		TokenToastWarn:    "#EBCB8B", // aurora yellow
	},
}

// HighContrastPreset maximizes contrast for readability.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextMuted:       "#FFFFFF", // no muted colors in high contrast
		TokenTextPlaceholder: "#CCCCCC", // slightly dimmed but still readable

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenBorderHighlight: "#00FFFF", // cyan for highlights

		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red

		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF", // cyan
		TokenButtonPrimaryFocusBg:   "#FFFFFF", // white when focused
		TokenButtonSecondaryBg:      "#808080", // gray
		TokenButtonSecondaryFocusBg: "#FFFFFF",
		TokenButtonDisabledBg:       "#333333",

		TokenTagText:       "#FFFFFF",
		TokenTagBorder:     "#FFFFFF",
		TokenTagActiveText: "#000000",
		TokenTagActiveBg:   "#FFFF00",

		TokenResultText: "#00FF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",
	},
}
