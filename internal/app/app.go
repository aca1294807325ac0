package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/study-input/internal/logging/events"
	"github.com/atomicstack/study-input/internal/plan"
	"github.com/atomicstack/study-input/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	// Generator is a shell command that receives the goal on stdin. When empty
	// a submission ends the program and the goal is printed instead.
	Generator  string
	Timeout    time.Duration
	StartDir   string
	ShowHidden bool
	Width      int
	Height     int
	ShowFooter bool
}

// Outcome reports how the program ended.
type Outcome = ui.Outcome

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Outcome, error) {
	gen, err := newGenerator(cfg)
	if err != nil {
		return Outcome{}, fmt.Errorf("configure generator: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, closeOut := programOutput(os.Stdout, openControllingTTY)
	defer closeOut()
	matchColorProfile(out)

	model := NewModel(ctx, cfg, gen)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out))
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	outcome := model.Outcome()
	if m, ok := final.(*ui.Model); ok && m != nil {
		outcome = m.Outcome()
	}
	events.App.Exit(describe(outcome))
	return outcome, err
}

// NewModel builds the UI model for cfg. gen may be nil.
func NewModel(ctx context.Context, cfg Config, gen plan.Generator) *ui.Model {
	return ui.NewModel(ctx, ui.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		StartDir:   cfg.StartDir,
		ShowHidden: cfg.ShowHidden,
	}, gen)
}

func newGenerator(cfg Config) (plan.Generator, error) {
	if cfg.Generator == "" {
		return nil, nil
	}
	gen, err := plan.NewCommandGenerator(cfg.Generator, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return gen, nil
}

func describe(o Outcome) string {
	switch {
	case o.Submitted:
		return "submitted"
	case o.Plan != "":
		return "planned"
	default:
		return "cancelled"
	}
}
