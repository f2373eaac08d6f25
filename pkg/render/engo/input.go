// pkg/render/engo/input.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/render"
)

// ActionKind identifies what a key press does to the form
type ActionKind int

const (
	InsertRune ActionKind = iota
	Backspace
	ClearField
	NextField
	PrevField
	NextOperation
	PrevOperation
	Calculate
)

// Action is a form edit produced by a key press
type Action struct {
	Kind ActionKind
	Rune rune
}

// keyBinding maps a registered engo button to an action
type keyBinding struct {
	name   string
	keys   []engo.Key
	action Action
}

var keyBindings = []keyBinding{
	{"digit0", []engo.Key{engo.KeyZero}, Action{Kind: InsertRune, Rune: '0'}},
	{"digit1", []engo.Key{engo.KeyOne}, Action{Kind: InsertRune, Rune: '1'}},
	{"digit2", []engo.Key{engo.KeyTwo}, Action{Kind: InsertRune, Rune: '2'}},
	{"digit3", []engo.Key{engo.KeyThree}, Action{Kind: InsertRune, Rune: '3'}},
	{"digit4", []engo.Key{engo.KeyFour}, Action{Kind: InsertRune, Rune: '4'}},
	{"digit5", []engo.Key{engo.KeyFive}, Action{Kind: InsertRune, Rune: '5'}},
	{"digit6", []engo.Key{engo.KeySix}, Action{Kind: InsertRune, Rune: '6'}},
	{"digit7", []engo.Key{engo.KeySeven}, Action{Kind: InsertRune, Rune: '7'}},
	{"digit8", []engo.Key{engo.KeyEight}, Action{Kind: InsertRune, Rune: '8'}},
	{"digit9", []engo.Key{engo.KeyNine}, Action{Kind: InsertRune, Rune: '9'}},
	{"point", []engo.Key{engo.KeyPeriod}, Action{Kind: InsertRune, Rune: '.'}},
	{"minus", []engo.Key{engo.KeyDash}, Action{Kind: InsertRune, Rune: '-'}},
	{"exponent", []engo.Key{engo.KeyE}, Action{Kind: InsertRune, Rune: 'e'}},
	{"backspace", []engo.Key{engo.KeyBackspace}, Action{Kind: Backspace}},
	{"escape", []engo.Key{engo.KeyEscape}, Action{Kind: ClearField}},
	{"tab", []engo.Key{engo.KeyTab}, Action{Kind: NextField}},
	{"operationNext", []engo.Key{engo.KeyArrowDown}, Action{Kind: NextOperation}},
	{"operationPrev", []engo.Key{engo.KeyArrowUp}, Action{Kind: PrevOperation}},
	{"calculate", []engo.Key{engo.KeyEnter}, Action{Kind: Calculate}},
}

// SetupInputBindings registers the form's key bindings with engo
func SetupInputBindings() {
	for _, b := range keyBindings {
		engo.Input.RegisterButton(b.name, b.keys...)
	}
	engo.Input.RegisterButton("modifier", engo.KeyLeftShift, engo.KeyRightShift)
}

// InputSystem turns key presses into form edits and redraws the form when it changes
type InputSystem struct {
	form     *calculator.Form
	renderer render.Renderer
	dirty    bool
}

// NewInputSystem creates a new input system. The first Update draws the form.
func NewInputSystem(form *calculator.Form, renderer render.Renderer) *InputSystem {
	return &InputSystem{
		form:     form,
		renderer: renderer,
		dirty:    true,
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update applies the buttons pressed this frame and redraws if needed
func (is *InputSystem) Update(dt float32) {
	ctx := is.form.Session().Context(context.Background())

	for _, action := range pressedActions() {
		is.Apply(ctx, action)
	}

	if !is.dirty {
		return
	}
	if err := render.Draw(is.renderer, is.form.View()); err != nil {
		is.form.Session().Logger().Error(ctx, "failed to draw form", err)
		return
	}
	is.dirty = false
}

// pressedActions returns the actions whose buttons went down this frame
func pressedActions() []Action {
	var actions []Action
	shift := engo.Input.Button("modifier").Down()

	for _, b := range keyBindings {
		if !engo.Input.Button(b.name).JustPressed() {
			continue
		}
		action := b.action
		if shift && action.Kind == NextField {
			action.Kind = PrevField
		}
		if shift && action.Kind == InsertRune && action.Rune == 'e' {
			action.Rune = 'E'
		}
		actions = append(actions, action)
	}

	return actions
}

// Apply performs a single action on the form
func (is *InputSystem) Apply(ctx context.Context, action Action) {
	switch action.Kind {
	case InsertRune:
		is.form.InsertRune(action.Rune)
	case Backspace:
		is.form.Backspace()
	case ClearField:
		is.form.ClearField()
	case NextField:
		is.form.FocusNext()
	case PrevField:
		is.form.FocusPrev()
	case NextOperation:
		is.form.NextOperation()
	case PrevOperation:
		is.form.PrevOperation()
	case Calculate:
		// errors are shown in the result label
		_, _ = is.form.Submit(ctx)
	default:
		return
	}
	is.dirty = true
}

// IsDirty reports whether the form changed since the last draw
func (is *InputSystem) IsDirty() bool {
	return is.dirty
}
