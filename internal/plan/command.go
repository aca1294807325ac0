package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/muesli/reflow/truncate"
)

const (
	defaultShell   = "/bin/sh"
	envRequestID   = "STUDY_INPUT_REQUEST_ID"
	maxStderrWidth = 512
	waitDelay      = time.Second
)

// CommandGenerator runs a shell command with the goal on stdin and treats its
// stdout as the plan.
type CommandGenerator struct {
	Command string
	Timeout time.Duration
	Shell   string
	Dir     string
}

// NewCommandGenerator validates command and returns a generator for it. A
// zero timeout disables the deadline.
func NewCommandGenerator(command string, timeout time.Duration) (*CommandGenerator, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("generator command required")
	}
	return &CommandGenerator{Command: command, Timeout: timeout, Shell: defaultShell}, nil
}

func (g *CommandGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	if g == nil {
		return Result{}, errors.New("generator not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	shell := g.Shell
	if shell == "" {
		shell = defaultShell
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, shell, "-c", g.Command)
	cmd.Stdin = strings.NewReader(req.Goal)
	cmd.Env = append(os.Environ(), envRequestID+"="+req.ID)
	cmd.Dir = g.Dir
	// children of the shell may hold the pipes open after a kill
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{}, fmt.Errorf("generator timed out after %s", g.Timeout)
	}
	if err != nil {
		if detail := stderrSummary(stderr.Bytes()); detail != "" {
			return Result{}, fmt.Errorf("generator failed: %w: %s", err, detail)
		}
		return Result{}, fmt.Errorf("generator failed: %w", err)
	}
	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return Result{}, ErrEmptyPlan
	}
	return Result{Request: req, Text: text, Elapsed: elapsed}, nil
}

func stderrSummary(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	return truncate.StringWithTail(text, maxStderrWidth, "…")
}
