package events

import "github.com/atomicstack/study-input/internal/logging"

type FormTracer struct{}

type AttachTracer struct{}

type rejectReason string

const (
	RejectLoading rejectReason = "loading"
	RejectEmpty   rejectReason = "empty"
)

var (
	Form   = FormTracer{}
	Attach = AttachTracer{}
)

func (FormTracer) Edit(length int, valid bool) {
	logging.Trace("form.edit", map[string]interface{}{"length": length, "valid": valid})
}

func (FormTracer) Focus(target string) {
	logging.Trace("form.focus", map[string]interface{}{"target": target})
}

func (FormTracer) Loading(loading bool) {
	logging.Trace("form.loading", map[string]interface{}{"loading": loading})
}

func (FormTracer) Submit(length int) {
	logging.Trace("form.submit", map[string]interface{}{"length": length})
}

func (FormTracer) Reject(reason rejectReason) {
	logging.Trace("form.submit.reject", map[string]interface{}{"reason": string(reason)})
}

func (AttachTracer) Open(dir string) {
	logging.Trace("attach.open", map[string]interface{}{"dir": dir})
}

func (AttachTracer) Mark(path string, marked bool) {
	logging.Trace("attach.mark", map[string]interface{}{"path": path, "marked": marked})
}

func (AttachTracer) Confirm(names []string) {
	logging.Trace("attach.confirm", map[string]interface{}{"files": names})
}

func (AttachTracer) Cancel() {
	logging.Trace("attach.cancel", nil)
}
