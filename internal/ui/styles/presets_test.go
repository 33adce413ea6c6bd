package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets_DefineEveryToken(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, preset.Name)
			require.NotEmpty(t, preset.Description)
			for _, token := range AllTokens() {
				hex, ok := preset.Colors[token]
				require.True(t, ok, "preset %s is missing token %s", name, token)
				require.True(t, isValidHexColor(hex), "preset %s has invalid color %s for %s", name, hex, token)
			}
		})
	}
}

func TestPresets_NoUnknownTokens(t *testing.T) {
	for name, preset := range Presets {
		for token := range preset.Colors {
			require.True(t, isValidToken(token), "preset %s uses unknown token %s", name, token)
		}
	}
}

func TestPresets_ApplyAll(t *testing.T) {
	defer func() { _ = ApplyTheme(ThemeConfig{}) }()

	for _, name := range PresetNames() {
		require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}), "preset %s", name)
		require.Equal(t, Presets[name].Colors[TokenTagActiveBg], TagActiveBgColor.Dark)
	}
}
