// Package plan defines the boundary between the study-input popup and the
// program that turns a learning goal into a study plan.
package plan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyPlan is returned when a generator finishes without producing text.
var ErrEmptyPlan = errors.New("generator returned an empty plan")

// Request is a single generation attempt for a goal.
type Request struct {
	ID   string
	Goal string
}

// NewRequest tags goal with a fresh request ID. The goal is kept verbatim.
func NewRequest(goal string) Request {
	return Request{ID: uuid.NewString(), Goal: goal}
}

// Result carries the generated plan text.
type Result struct {
	Request Request
	Text    string
	Elapsed time.Duration
}

// Generator produces a plan for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (Result, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}
