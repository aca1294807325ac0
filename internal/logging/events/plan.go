package events

import (
	"time"

	"github.com/atomicstack/study-input/internal/logging"
)

type PlanTracer struct{}

type CommandTracer struct{}

var (
	Plan    = PlanTracer{}
	Command = CommandTracer{}
)

func (PlanTracer) Request(id string, length int) {
	logging.Trace("plan.request", map[string]interface{}{"id": id, "length": length})
}

func (PlanTracer) Result(id string, elapsed time.Duration, size int) {
	logging.Trace("plan.result", map[string]interface{}{"id": id, "elapsed_ms": elapsed.Milliseconds(), "bytes": size})
}

func (PlanTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("plan.error", map[string]interface{}{"id": id, "error": err.Error()})
}

func (PlanTracer) Print(length int) {
	logging.Trace("plan.print", map[string]interface{}{"length": length})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
