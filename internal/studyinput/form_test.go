package studyinput

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type recorder struct {
	calls []string
}

func (r *recorder) generate(goal string) tea.Cmd {
	r.calls = append(r.calls, goal)
	return nil
}

func newTestForm(t *testing.T) (*Form, *recorder) {
	t.Helper()
	rec := &recorder{}
	f := New(Props{OnGenerate: rec.generate}, Options{Width: 60, StartDir: t.TempDir()})
	return f, rec
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(f *Form) string {
	return ansi.Strip(f.View())
}

func TestNewFormStartsEmptyAndInvalid(t *testing.T) {
	f, _ := newTestForm(t)
	if f.Goal() != "" {
		t.Fatalf("expected empty goal, got %q", f.Goal())
	}
	if f.Files() != nil {
		t.Fatalf("expected no files, got %#v", f.Files())
	}
	if f.State() != IdleInvalid {
		t.Fatalf("expected idle-invalid, got %s", f.State())
	}
	if f.Focused() != FocusGoal {
		t.Fatalf("expected goal focus, got %s", f.Focused())
	}
}

func TestWhitespaceGoalCannotSubmit(t *testing.T) {
	for _, goal := range []string{"", " ", "   ", "\n", " \n  \n "} {
		for _, loading := range []bool{false, true} {
			f, rec := newTestForm(t)
			f.SetGoal(goal)
			f.SetLoading(loading)
			if f.CanSubmit() {
				t.Fatalf("goal %q loading=%v: expected submission disabled", goal, loading)
			}
			if cmd := f.Submit(); cmd != nil {
				t.Fatalf("goal %q loading=%v: expected no command", goal, loading)
			}
			f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
			if len(rec.calls) != 0 {
				t.Fatalf("goal %q loading=%v: expected no callback, got %q", goal, loading, rec.calls)
			}
		}
	}
}

func TestTypingOverwritesGoalExactly(t *testing.T) {
	f, _ := newTestForm(t)
	f.Update(keyRunes("  learn"))
	f.Update(keyRunes(" go  "))
	if f.Goal() != "  learn go  " {
		t.Fatalf("expected goal %q, got %q", "  learn go  ", f.Goal())
	}
	if f.State() != IdleValid {
		t.Fatalf("expected idle-valid, got %s", f.State())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Goal() != "  learn go " {
		t.Fatalf("expected backspace to edit goal, got %q", f.Goal())
	}
}

func TestSubmitPassesUntrimmedGoalOnce(t *testing.T) {
	f, rec := newTestForm(t)
	goal := "  Prepare for my Calculus II final\nin 10 days  "
	f.SetGoal(goal)
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 1 {
		t.Fatalf("expected exactly one callback, got %d", len(rec.calls))
	}
	if rec.calls[0] != goal {
		t.Fatalf("expected goal %q, got %q", goal, rec.calls[0])
	}
}

func TestSubmitButtonActivation(t *testing.T) {
	f, rec := newTestForm(t)
	f.SetGoal("learn rust")
	f.SetFocus(FocusSubmit)
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(rec.calls) != 1 || rec.calls[0] != "learn rust" {
		t.Fatalf("expected one submission of %q, got %q", "learn rust", rec.calls)
	}
}

func TestSubmitReturnsCallbackCommand(t *testing.T) {
	type generated struct{ goal string }
	f := New(Props{OnGenerate: func(goal string) tea.Cmd {
		return func() tea.Msg { return generated{goal: goal} }
	}}, Options{})
	f.SetGoal("x")
	cmd := f.Submit()
	if cmd == nil {
		t.Fatalf("expected callback command")
	}
	if msg, ok := cmd().(generated); !ok || msg.goal != "x" {
		t.Fatalf("expected generated msg, got %#v", cmd())
	}
}

func TestSubmitWithoutCallbackIsSafe(t *testing.T) {
	f := New(Props{}, Options{})
	f.SetGoal("x")
	if cmd := f.Submit(); cmd != nil {
		t.Fatalf("expected nil command without callback")
	}
}

func TestEnterInGoalInsertsNewline(t *testing.T) {
	f, rec := newTestForm(t)
	f.Update(keyRunes("one"))
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.Update(keyRunes("two"))
	if f.Goal() != "one\ntwo" {
		t.Fatalf("expected multi-line goal, got %q", f.Goal())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected enter in goal not to submit")
	}
}

func TestFocusCycle(t *testing.T) {
	f, _ := newTestForm(t)
	want := []Focus{FocusAttach, FocusSubmit, FocusGoal}
	for _, w := range want {
		f.Update(tea.KeyMsg{Type: tea.KeyTab})
		if f.Focused() != w {
			t.Fatalf("expected focus %s, got %s", w, f.Focused())
		}
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.Focused() != FocusSubmit {
		t.Fatalf("expected shift+tab to wrap to submit, got %s", f.Focused())
	}
}

func TestTypingIgnoredWhenGoalNotFocused(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetFocus(FocusSubmit)
	f.Update(keyRunes("abc"))
	if f.Goal() != "" {
		t.Fatalf("expected goal untouched, got %q", f.Goal())
	}
}

func TestLoadingDisablesEveryControl(t *testing.T) {
	f, rec := newTestForm(t)
	f.SetGoal("learn go")
	if cmd := f.SetLoading(true); cmd == nil {
		t.Fatalf("expected spinner tick command")
	}
	if f.State() != Busy {
		t.Fatalf("expected busy, got %s", f.State())
	}

	f.Update(keyRunes("xyz"))
	if f.Goal() != "learn go" {
		t.Fatalf("expected goal unchanged while loading, got %q", f.Goal())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Focused() != FocusGoal {
		t.Fatalf("expected focus unchanged while loading, got %s", f.Focused())
	}
	f.SetFocus(FocusAttach)
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.PickerOpen() {
		t.Fatalf("expected picker to stay closed while loading")
	}
	f.SetFocus(FocusSubmit)
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 0 {
		t.Fatalf("expected no submission while loading, got %q", rec.calls)
	}

	view := plainView(f)
	if !strings.Contains(view, busyLabel) {
		t.Fatalf("expected busy label, got:\n%s", view)
	}
	if strings.Contains(view, "Create My Plan") {
		t.Fatalf("expected default label hidden while loading, got:\n%s", view)
	}
}

func TestLoadingOnWithEmptyGoalIsBusy(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetLoading(true)
	if f.State() != Busy {
		t.Fatalf("expected busy regardless of goal, got %s", f.State())
	}
	if !strings.Contains(plainView(f), busyLabel) {
		t.Fatalf("expected busy label")
	}
}

func TestLoadingOffRestoresValidGoal(t *testing.T) {
	f, rec := newTestForm(t)
	f.SetGoal("  master hooks ")
	f.SetLoading(true)
	f.SetLoading(false)
	if f.State() != IdleValid {
		t.Fatalf("expected idle-valid after loading, got %s", f.State())
	}
	if f.Goal() != "  master hooks " {
		t.Fatalf("expected goal preserved, got %q", f.Goal())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 1 || rec.calls[0] != "  master hooks " {
		t.Fatalf("expected resubmission without retyping, got %q", rec.calls)
	}
	f.Update(keyRunes("!"))
	if f.Goal() != "  master hooks !" {
		t.Fatalf("expected goal editable again, got %q", f.Goal())
	}
}

func TestLoadingOffRestoresInvalidGoal(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetLoading(true)
	f.SetLoading(false)
	if f.State() != IdleInvalid {
		t.Fatalf("expected idle-invalid, got %s", f.State())
	}
}

func TestSetLoadingSameValueIsNoop(t *testing.T) {
	f, _ := newTestForm(t)
	if cmd := f.SetLoading(false); cmd != nil {
		t.Fatalf("expected nil command for unchanged flag")
	}
	f.SetLoading(true)
	if cmd := f.SetLoading(true); cmd != nil {
		t.Fatalf("expected nil command for repeated flag")
	}
}

func TestSpinnerTicksOnlyWhileLoading(t *testing.T) {
	f, _ := newTestForm(t)
	if cmd := f.Update(spinner.TickMsg{}); cmd != nil {
		t.Fatalf("expected idle form to drop spinner ticks")
	}
	tick := f.SetLoading(true)
	msg := tick()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Fatalf("expected spinner tick, got %T", msg)
	}
	if cmd := f.Update(msg); cmd == nil {
		t.Fatalf("expected loading form to schedule the next frame")
	}
}

func TestSubmitNeverCarriesFiles(t *testing.T) {
	f, rec := newTestForm(t)
	f.SelectFiles([]FileHandle{{Name: "syllabus.pdf", Path: "/tmp/syllabus.pdf", Size: 10}})
	f.SetGoal("learn go")
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 1 || rec.calls[0] != "learn go" {
		t.Fatalf("expected goal only, got %q", rec.calls)
	}
	if strings.Contains(rec.calls[0], "syllabus") {
		t.Fatalf("expected no file data in callback argument")
	}
	if len(f.Files()) != 1 {
		t.Fatalf("expected selection kept after submit")
	}
}

func TestFilesDoNotAffectEligibility(t *testing.T) {
	f, _ := newTestForm(t)
	f.SelectFiles([]FileHandle{{Name: "a.txt", Size: 1}})
	if f.CanSubmit() {
		t.Fatalf("expected files alone not to enable submission")
	}
	f.SetGoal("x")
	f.SelectFiles(nil)
	if !f.CanSubmit() {
		t.Fatalf("expected clearing files not to disable submission")
	}
}

func TestSelectFilesReplacesSelection(t *testing.T) {
	f, _ := newTestForm(t)
	f.SelectFiles([]FileHandle{{Name: "a.txt", Size: 1}, {Name: "b.txt", Size: 2}})
	f.SelectFiles([]FileHandle{{Name: "c.txt", Size: 3}})
	files := f.Files()
	if len(files) != 1 || files[0].Name != "c.txt" {
		t.Fatalf("expected only c.txt, got %#v", files)
	}
	view := plainView(f)
	if !strings.Contains(view, "c.txt") {
		t.Fatalf("expected c.txt listed, got:\n%s", view)
	}
	if strings.Contains(view, "a.txt") || strings.Contains(view, "b.txt") {
		t.Fatalf("expected previous files gone, got:\n%s", view)
	}
}

func TestSelectFilesCopiesInput(t *testing.T) {
	f, _ := newTestForm(t)
	in := []FileHandle{{Name: "a.txt"}}
	f.SelectFiles(in)
	in[0].Name = "mutated"
	if f.Files()[0].Name != "a.txt" {
		t.Fatalf("expected form to own its selection")
	}
}

func TestWindowSizeResizesForm(t *testing.T) {
	f, _ := newTestForm(t)
	f.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	for _, line := range strings.Split(plainView(f), "\n") {
		if w := ansi.StringWidth(line); w > 40 {
			t.Fatalf("expected lines within 40 cells, got %d: %q", w, line)
		}
	}
}

func TestCRLFGoalKeepsOneBreakPerLine(t *testing.T) {
	f, rec := newTestForm(t)
	f.SetGoal("line1\r\nline2")
	if f.Goal() != "line1\nline2" {
		t.Fatalf("expected CRLF folded to one break, got %q", f.Goal())
	}
	f.Submit()
	if len(rec.calls) != 1 || rec.calls[0] != "line1\nline2" {
		t.Fatalf("expected callback to receive %q, got %q", "line1\nline2", rec.calls)
	}
}

func TestCRLFPasteKeepsOneBreakPerLine(t *testing.T) {
	f, rec := newTestForm(t)
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("line1\r\nline2\r\n"), Paste: true})
	if f.Goal() != "line1\nline2\n" {
		t.Fatalf("expected pasted CRLF folded, got %q", f.Goal())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 1 || rec.calls[0] != f.Goal() {
		t.Fatalf("expected callback to receive the field value, got %q", rec.calls)
	}
}

func TestTabsExpandInFieldValue(t *testing.T) {
	f, rec := newTestForm(t)
	f.SetGoal("a\tb")
	if f.Goal() != "a    b" {
		t.Fatalf("expected tab expanded to four spaces, got %q", f.Goal())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 1 || rec.calls[0] != "a    b" {
		t.Fatalf("expected callback to receive the field value, got %q", rec.calls)
	}
}
