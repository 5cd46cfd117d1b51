package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, names)

	for _, name := range names {
		_, ok := GetPalette(name)
		assert.True(t, ok, name)
	}

	_, ok := GetPalette("missing")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
	require.NotNil(t, cfg.Document.Margin)
	assert.Equal(t, uint(0), *cfg.Document.Margin)
}
