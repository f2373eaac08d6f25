// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"
)

// fontURL is the name the embedded Go font is registered under in engo.Files
const fontURL = "goregular.ttf"

// Default text style
const (
	defaultFontSize = 16
	lineHeight      = 26
	marginX         = 16
	marginY         = 14
)

// AssetManager handles loading and managing the form's assets
type AssetManager struct {
	fontSize   float64
	foreground color.Color
	background color.Color
	font       *common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		fontSize:   defaultFontSize,
		foreground: color.Black,
		background: color.White,
	}
}

// Preload registers the embedded font with engo's file loader.
// It must run from Scene.Preload.
func (am *AssetManager) Preload() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	return nil
}

// LoadAssets creates the text font from the preloaded data.
// It needs an OpenGL context and must run from Scene.Setup.
func (am *AssetManager) LoadAssets() error {
	font := &common.Font{
		URL:  fontURL,
		FG:   am.foreground,
		BG:   color.Transparent,
		Size: am.fontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to create font: %w", err)
	}
	am.font = font
	return nil
}

// Font returns the loaded font, or nil before LoadAssets
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// Background returns the window clear color
func (am *AssetManager) Background() color.Color {
	return am.background
}

// SetFontSize changes the size used by the next LoadAssets
func (am *AssetManager) SetFontSize(size float64) {
	if size > 0 {
		am.fontSize = size
	}
}

// FontSize returns the configured font size
func (am *AssetManager) FontSize() float64 {
	return am.fontSize
}
