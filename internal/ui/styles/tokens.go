// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Buttons
	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDisabledBg       ColorToken = "button.disabled.bg"

	// Tags
	TokenTagText       ColorToken = "tag.text"
	TokenTagBorder     ColorToken = "tag.border"
	TokenTagActiveText ColorToken = "tag.active.text"
	TokenTagActiveBg   ColorToken = "tag.active.bg"

	// Result
	TokenResultText ColorToken = "result.text"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextMuted,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,
		TokenBorderHighlight,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Buttons
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,
		TokenButtonDisabledBg,

		// Tags
		TokenTagText,
		TokenTagBorder,
		TokenTagActiveText,
		TokenTagActiveBg,

		// Result
		TokenResultText,

		// Overlays/Modals
		TokenOverlayTitle,
		TokenOverlayBorder,

		// Toast notifications
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,
	}
}
