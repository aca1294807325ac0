package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/study-input/internal/logging/events"
	"github.com/atomicstack/study-input/internal/plan"
)

const generateLabel = "generate"

// ErrNoGenerator is reported when a request reaches a bus without a generator.
var ErrNoGenerator = errors.New("no plan generator configured")

// Result is delivered to the model once a generation request finishes.
type Result struct {
	Request plan.Request
	Plan    plan.Result
	Err     error
}

// Bus coordinates the execution of generation requests.
type Bus struct {
	generator plan.Generator
}

// New initialises a command bus backed by gen. gen may be nil.
func New(gen plan.Generator) *Bus {
	return &Bus{generator: gen}
}

// Ready reports whether the bus can run requests.
func (b *Bus) Ready() bool {
	return b != nil && b.generator != nil
}

// Execute wraps a generation request into a Bubble Tea command while emitting
// trace logs. The command always yields a Result.
func (b *Bus) Execute(ctx context.Context, req plan.Request) tea.Cmd {
	events.Command.Queue(req.ID, generateLabel)
	events.Plan.Request(req.ID, len(req.Goal))
	return func() tea.Msg {
		if !b.Ready() {
			events.Command.Skip(req.ID, generateLabel)
			return Result{Request: req, Err: ErrNoGenerator}
		}
		start := time.Now()
		res, err := b.generator.Generate(ctx, req)
		if res.Elapsed == 0 {
			res.Elapsed = time.Since(start)
		}
		if res.Request.ID == "" {
			res.Request = req
		}
		if err != nil {
			events.Plan.Error(req.ID, err)
		} else {
			events.Plan.Result(req.ID, res.Elapsed, len(res.Text))
		}
		msg := Result{Request: req, Plan: res, Err: err}
		events.Command.Result(req.ID, generateLabel, fmt.Sprintf("%T", msg))
		return msg
	}
}
