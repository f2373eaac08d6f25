package calculator

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-vector/pkg/event"
	"github.com/opd-ai/go-vector/pkg/logging"
	"github.com/opd-ai/go-vector/pkg/validation"
	"github.com/opd-ai/go-vector/pkg/vector"
)

// Input holds the raw text of the four input fields.
type Input struct {
	FirstX  string
	FirstY  string
	SecondX string
	SecondY string
}

// Get returns the text of field f.
func (in Input) Get(f Field) string {
	switch f {
	case FirstX:
		return in.FirstX
	case FirstY:
		return in.FirstY
	case SecondX:
		return in.SecondX
	case SecondY:
		return in.SecondY
	}
	return ""
}

// Session owns the two vectors reused by every calculation.
// It is not safe for concurrent use; front ends call it from their event loop.
type Session struct {
	id     string
	first  *vector.Vector
	second *vector.Vector
	bus    *event.Bus
	logger *logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithEventBus publishes calculation events on bus.
func WithEventBus(bus *event.Bus) Option {
	return func(s *Session) { s.bus = bus }
}

// WithLogger replaces the default stderr logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithInitialVectors sets the vectors held before the first calculation.
func WithInitialVectors(first, second vector.Vector) Option {
	return func(s *Session) {
		s.first = vector.Copy(first)
		s.second = vector.Copy(second)
	}
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession creates a session holding (1, 1) and (1, 1).
func NewSession(opts ...Option) *Session {
	s := &Session{
		first:  vector.New(1, 1),
		second: vector.New(1, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = logging.NewSessionID()
	}
	if s.bus == nil {
		s.bus = event.NewEventBus()
	}
	if s.logger == nil {
		s.logger = logging.NewLogger()
	}

	s.bus.Publish(&event.BaseEvent{EventType: event.SessionStarted, Source: s})
	return s
}

// ID returns the session ID attached to logs and events.
func (s *Session) ID() string {
	return s.id
}

// Bus returns the event bus the session publishes on.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// Logger returns the session's logger.
func (s *Session) Logger() *logging.Logger {
	return s.logger
}

// Vectors returns copies of the two session vectors.
func (s *Session) Vectors() (vector.Vector, vector.Vector) {
	return *s.first, *s.second
}

// Context attaches the session ID to ctx unless one is already present.
func (s *Session) Context(ctx context.Context) context.Context {
	if logging.GetSessionID(ctx) != "" {
		return ctx
	}
	return logging.WithSessionID(ctx, s.id)
}

// Calculate parses in into the session vectors and applies op.
// Parse failures return an *InputError and leave both vectors untouched.
// Angle operations on a zero first vector return an error wrapping vector.ErrZeroVector.
func (s *Session) Calculate(ctx context.Context, in Input, op Operation) (Result, error) {
	ctx = s.Context(ctx)

	if !op.Valid() {
		err := fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
		s.fail(ctx, event.CalculationFailed, op, err)
		return Result{}, err
	}

	values, err := parseInput(in)
	if err != nil {
		s.fail(ctx, event.InputRejected, op, err)
		return Result{}, err
	}

	s.first.X, s.first.Y = values[FirstX], values[FirstY]
	s.second.X, s.second.Y = values[SecondX], values[SecondY]

	result, err := s.apply(op)
	if err != nil {
		err = logging.WrapError(err, "%s", op)
		s.fail(ctx, event.CalculationFailed, op, err)
		return Result{}, err
	}

	text := result.Text()
	s.logger.Info(ctx, "calculation completed", "operation", op.String(), "result", text)
	s.bus.Publish(event.NewCalculationEvent(event.CalculationCompleted, s, s.id, op.String(), text, nil))
	return result, nil
}

func (s *Session) apply(op Operation) (Result, error) {
	result := Result{Operation: op, Kind: ScalarResult}

	switch op {
	case Length:
		result.Scalar = s.first.Length()
	case Addition:
		s.first.Add(*s.second)
	case Subtraction:
		s.first.Sub(*s.second)
	case ComponentMultiply:
		s.first.MulComponents(*s.second)
	case AngleToXAxis:
		angle, err := s.first.AngleToXAxis()
		if err != nil {
			return Result{}, err
		}
		result.Scalar = angle
	case AngleToYAxis:
		angle, err := s.first.AngleToYAxis()
		if err != nil {
			return Result{}, err
		}
		result.Scalar = angle
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}

	if op.Operands() == 2 {
		result.Kind = VectorResult
		result.Vector = *s.first
	}
	return result, nil
}

func (s *Session) fail(ctx context.Context, eventType event.Type, op Operation, err error) {
	s.logger.Warn(ctx, "calculation rejected", "operation", op.String(), "reason", err.Error())
	s.bus.Publish(event.NewCalculationEvent(eventType, s, s.id, op.String(), "", err))
}

func parseInput(in Input) ([FieldCount]float64, error) {
	var values [FieldCount]float64
	for f := FirstX; f <= SecondY; f++ {
		text := in.Get(f)
		value, err := validation.ValidateComponent(text)
		if err != nil {
			return values, &InputError{Field: f, Text: text, Err: err}
		}
		values[f] = value
	}
	return values, nil
}
