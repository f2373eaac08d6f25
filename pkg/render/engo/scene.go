// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/config"
)

// FormScene is the calculator window
type FormScene struct {
	form     *calculator.Form
	assets   *AssetManager
	renderer *EngoRenderer
	input    *InputSystem
}

// NewFormScene creates a new scene showing form
func NewFormScene(form *calculator.Form) *FormScene {
	return &FormScene{
		form:   form,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *FormScene) Type() string {
	return "VectorScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *FormScene) Preload() {
	if err := scene.assets.Preload(); err != nil {
		ctx := scene.form.Session().Context(context.Background())
		scene.form.Session().Logger().Error(ctx, "failed to preload assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *FormScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("FormScene requires an *ecs.World updater")
	}

	common.SetBackground(scene.assets.Background())

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()

	scene.renderer = NewEngoRenderer(renderSystem, scene.assets)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	scene.input = NewInputSystem(scene.form, scene.renderer)
	world.AddSystem(scene.input)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *FormScene) Exit() {
	ctx := scene.form.Session().Context(context.Background())
	scene.form.Session().Logger().Info(ctx, "window closed")
}

// Run opens the calculator window and blocks until it is closed
func Run(form *calculator.Form, window config.WindowConfig) {
	opts := engo.RunOptions{
		Title:      window.Title,
		Width:      window.Width,
		Height:     window.Height,
		Fullscreen: window.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, NewFormScene(form))
}
