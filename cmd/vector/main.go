// cmd/vector/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/config"
	"github.com/opd-ai/go-vector/pkg/event"
	"github.com/opd-ai/go-vector/pkg/logging"
	"github.com/opd-ai/go-vector/pkg/render"
	engorender "github.com/opd-ai/go-vector/pkg/render/engo"
)

// terminalWidth is the inner width of the terminal form box
const terminalWidth = 48

type options struct {
	configPath  string
	writeConfig string
	renderer    string
	width       int
	height      int
	fullscreen  bool
	op          string
	x1, y1      string
	x2, y2      string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file")
	flag.StringVar(&opts.writeConfig, "write-config", "", "Write the effective configuration to this path and exit")
	flag.StringVar(&opts.renderer, "renderer", config.RendererTerminal, "Renderer type: 'terminal', 'engo' or 'null'")
	flag.IntVar(&opts.width, "width", 500, "Window width (Engo only)")
	flag.IntVar(&opts.height, "height", 300, "Window height (Engo only)")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "Run in fullscreen mode (Engo only)")
	flag.StringVar(&opts.op, "op", "", "Calculate once with this operation (name or 1-based index) and exit")
	flag.StringVar(&opts.x1, "x1", "1", "Vector 1 X (with -op)")
	flag.StringVar(&opts.y1, "y1", "1", "Vector 1 Y (with -op)")
	flag.StringVar(&opts.x2, "x2", "1", "Vector 2 X (with -op)")
	flag.StringVar(&opts.y2, "y2", "1", "Vector 2 Y (with -op)")
	flag.Parse()

	os.Exit(run(opts))
}

// run starts the selected front end and returns the process exit code
func run(opts options) int {
	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	appConfig, err := loadConfig(opts)
	if err != nil {
		logger.Error(ctx, "failed to load configuration", err)
		return 1
	}

	if opts.writeConfig != "" {
		if err := config.SaveConfig(appConfig, opts.writeConfig); err != nil {
			logger.Error(ctx, "failed to write configuration", err)
			return 1
		}
		logger.Info(ctx, "configuration written", "path", opts.writeConfig)
		return 0
	}

	bus := event.NewEventBus()
	subscriptions := subscribeAuditLog(bus, logger)
	defer func() {
		for _, sub := range subscriptions {
			sub.Cancel()
		}
	}()

	session := newSession(appConfig, bus, logger)

	if opts.op != "" {
		return runOnce(session, opts, os.Stdout)
	}

	op, _ := appConfig.Operation()
	form := calculator.NewForm(session, op)

	ctx, stop := signal.NotifyContext(session.Context(context.Background()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch appConfig.Renderer {
	case config.RendererEngo:
		engorender.Run(form, appConfig.Window)
	case config.RendererNull:
		err = render.NewConsole(form, render.NewNullRenderer(logger), os.Stdin, os.Stdout).Run(ctx)
	default:
		terminal := render.NewTerminalRenderer(os.Stdout, appConfig.Window.Title, terminalWidth)
		terminal.SetClearScreen(true)
		err = render.NewConsole(form, terminal, os.Stdin, os.Stdout).Run(ctx)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "console stopped", err)
		return 1
	}
	logger.Info(ctx, "session finished")
	return 0
}

// loadConfig reads the config file if present, otherwise the environment alone,
// then applies any flags given on the command line.
func loadConfig(opts options) (*config.AppConfig, error) {
	var appConfig *config.AppConfig

	if _, err := os.Stat(opts.configPath); os.IsNotExist(err) {
		appConfig, err = config.LoadConfigFromEnv()
		if err != nil {
			return nil, err
		}
	} else {
		appConfig, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyEnv(appConfig); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			appConfig.Renderer = opts.renderer
		case "width":
			appConfig.Window.Width = opts.width
		case "height":
			appConfig.Window.Height = opts.height
		case "fullscreen":
			appConfig.Window.Fullscreen = opts.fullscreen
		}
	})

	if err := appConfig.Validate(); err != nil {
		return nil, err
	}
	return appConfig, nil
}

// subscribeAuditLog logs session and calculation events from bus
func subscribeAuditLog(bus *event.Bus, logger *logging.Logger) []*event.Subscription {
	subscriptions := []*event.Subscription{
		bus.Subscribe(event.SessionStarted, func(e event.Event) {
			if session, ok := e.GetSource().(*calculator.Session); ok {
				logger.Info(session.Context(context.Background()), "session started")
			}
		}),
		bus.Subscribe(event.OperationSelected, func(e event.Event) {
			sel, ok := e.(*event.SelectionEvent)
			if !ok {
				return
			}
			ctx := context.Background()
			if form, ok := sel.GetSource().(*calculator.Form); ok {
				ctx = form.Session().Context(ctx)
			}
			logger.Info(ctx, "operation selected", "operation", sel.Operation, "index", sel.Index+1)
		}),
		bus.Subscribe(event.CalculationCompleted, func(e event.Event) {
			if calc, ok := e.(*event.CalculationEvent); ok {
				ctx := logging.WithSessionID(context.Background(), calc.SessionID)
				logger.Info(ctx, "calculation completed", "operation", calc.Operation, "result", calc.Result)
			}
		}),
	}

	for _, t := range []event.Type{event.CalculationFailed, event.InputRejected} {
		subscriptions = append(subscriptions, bus.Subscribe(t, func(e event.Event) {
			if calc, ok := e.(*event.CalculationEvent); ok {
				ctx := logging.WithSessionID(context.Background(), calc.SessionID)
				logger.Warn(ctx, "calculation failed", "operation", calc.Operation, "error", calc.Err)
			}
		}))
	}

	return subscriptions
}

// newSession creates the calculation session publishing on bus
func newSession(appConfig *config.AppConfig, bus *event.Bus, logger *logging.Logger) *calculator.Session {
	return calculator.NewSession(
		calculator.WithEventBus(bus),
		calculator.WithLogger(logger),
		calculator.WithInitialVectors(appConfig.InitialVectors[0].Vector(), appConfig.InitialVectors[1].Vector()),
	)
}

// runOnce performs a single calculation and writes its result to out.
// It returns the process exit code.
func runOnce(session *calculator.Session, opts options, out io.Writer) int {
	op, err := calculator.ParseOperation(opts.op)
	if err != nil {
		fmt.Fprintln(out, calculator.Message(err))
		return 2
	}

	in := calculator.Input{FirstX: opts.x1, FirstY: opts.y1, SecondX: opts.x2, SecondY: opts.y2}
	result, err := session.Calculate(session.Context(context.Background()), in, op)
	if err != nil {
		fmt.Fprintln(out, calculator.Message(err))
		return 1
	}

	fmt.Fprintln(out, result.Text())
	return 0
}
