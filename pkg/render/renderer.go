// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/logging"
)

// Renderer draws calculator forms. A frame is Clear, RenderForm, Present.
type Renderer interface {
	Clear()
	RenderForm(view calculator.FormView)
	Present() error
}

// Draw renders a single frame of view with r.
func Draw(r Renderer, view calculator.FormView) error {
	r.Clear()
	r.RenderForm(view)
	return r.Present()
}

// NullRenderer draws nothing and logs each call at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// RenderForm implements Renderer.
func (d *NullRenderer) RenderForm(view calculator.FormView) {
	d.logger.Debug(context.Background(), "RenderForm called",
		"operation", view.Operations[view.Selected].String(),
		"label", view.Label,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present() error {
	d.logger.Debug(context.Background(), "Present called")
	return nil
}
