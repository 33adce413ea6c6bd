// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor          = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"} // Focused input
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Button colors
	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDisabledBgColor       = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}

	// Tag colors
	TagTextColor       = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TagBorderColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	TagActiveTextColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}
	TagActiveBgColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#FECA57"}

	// Result colors
	ResultTextColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	TitleStyle lipgloss.Style
	HintStyle  lipgloss.Style

	// Entry control
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style

	// Buttons
	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DisabledButtonStyle         lipgloss.Style
	ConfirmButtonStyle          lipgloss.Style

	// Tags
	TagStyle       lipgloss.Style
	TagActiveStyle lipgloss.Style

	// Result
	ResultBoxStyle    lipgloss.Style
	ResultLabelStyle  lipgloss.Style
	ResultValueStyle  lipgloss.Style
	ResultNoticeStyle lipgloss.Style
	ResultEmptyStyle  lipgloss.Style
)

func init() {
	rebuildStyles()
}
