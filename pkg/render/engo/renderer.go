// pkg/render/engo/renderer.go
package engo

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-vector/pkg/calculator"
)

// ErrNotInitialized is returned by Present before Initialize succeeded
var ErrNotInitialized = errors.New("engo renderer not initialized")

// formLineCount is the number of text rows FormLines produces
const formLineCount = calculator.FieldCount + 5

const keyHelp = "Tab: field  Up/Down: operation  Enter: calculate  Esc: clear"

var (
	textColor      = color.RGBA{0, 0, 0, 255}
	highlightColor = color.RGBA{0, 90, 200, 255}
	errorColor     = color.RGBA{190, 0, 0, 255}
	hintColor      = color.RGBA{120, 120, 120, 255}
)

// FormLine is one row of text in the window
type FormLine struct {
	Text  string
	Color color.Color
}

// FormLines lays out view as rows of text, top to bottom
func FormLines(view calculator.FormView) []FormLine {
	lines := make([]FormLine, 0, formLineCount)

	for _, field := range view.Fields {
		line := FormLine{Text: field.Name + ": " + field.Text, Color: textColor}
		if field.Focused {
			line.Text += "_"
			line.Color = highlightColor
		}
		lines = append(lines, line)
	}

	op := view.Operations[view.Selected]
	lines = append(lines,
		FormLine{Text: " ", Color: textColor},
		FormLine{Text: fmt.Sprintf("Operation %d/%d: %s", view.Selected+1, len(view.Operations), op), Color: textColor},
	)

	result := FormLine{Text: "Result: " + view.Label, Color: textColor}
	if view.Failed {
		result.Color = errorColor
	}
	lines = append(lines,
		result,
		FormLine{Text: " ", Color: textColor},
		FormLine{Text: keyHelp, Color: hintColor},
	)

	return lines
}

// textEntity is a single line of text in the ecs world
type textEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements render.Renderer by updating text entities
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	assets       *AssetManager
	entities     []*textEntity
	pending      []FormLine
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(renderSystem *common.RenderSystem, assets *AssetManager) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: renderSystem,
		assets:       assets,
	}
}

// Initialize loads the font and adds one text entity per form line to the render system
func (r *EngoRenderer) Initialize() error {
	if err := r.assets.LoadAssets(); err != nil {
		return err
	}

	r.entities = make([]*textEntity, formLineCount)
	for i := range r.entities {
		e := &textEntity{BasicEntity: ecs.NewBasic()}
		e.RenderComponent = common.RenderComponent{
			Drawable: common.Text{Font: r.assets.Font(), Text: " "},
			Color:    textColor,
		}
		e.SpaceComponent = common.SpaceComponent{
			Position: engo.Point{X: marginX, Y: float32(marginY + i*lineHeight)},
			Width:    float32(len(keyHelp) * defaultFontSize),
			Height:   lineHeight,
		}
		r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
		r.entities[i] = e
	}

	return nil
}

// Clear implements render.Renderer
func (r *EngoRenderer) Clear() {
	r.pending = r.pending[:0]
}

// RenderForm implements render.Renderer
func (r *EngoRenderer) RenderForm(view calculator.FormView) {
	r.pending = append(r.pending, FormLines(view)...)
}

// Present implements render.Renderer by swapping the text of each entity.
// The render system draws them on the next frame.
func (r *EngoRenderer) Present() error {
	if r.entities == nil {
		return ErrNotInitialized
	}

	for i, e := range r.entities {
		line := FormLine{Text: " ", Color: textColor}
		if i < len(r.pending) {
			line = r.pending[i]
		}
		e.RenderComponent.Drawable = common.Text{Font: r.assets.Font(), Text: line.Text}
		e.RenderComponent.Color = line.Color
	}

	return nil
}
