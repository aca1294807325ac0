package studyinput

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/study-input/internal/logging/events"
)

const (
	minPickerHeight     = 3
	maxPickerHeight     = 12
	defaultPickerHeight = 8
)

// attachSession is one open file picker. Marks accumulate until the session
// is confirmed or cancelled.
type attachSession struct {
	picker filepicker.Model
	marked []string
}

func newAttachSession(dir string, showHidden bool, height int, keys PickerKeyMap) *attachSession {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = showHidden
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Cursor = "›"
	fp.KeyMap.Back = keys.Back
	fp.KeyMap.Select = keys.Mark
	fp.SetHeight(height)
	return &attachSession{picker: fp}
}

func (s *attachSession) init() tea.Cmd {
	return s.picker.Init()
}

// update forwards msg to the picker and reports the path marked or unmarked
// by it, if any.
func (s *attachSession) update(msg tea.Msg) (tea.Cmd, string, bool) {
	// Path is only set by a selection, so clearing it first makes a non-empty
	// value after Update mean "selected on this msg".
	s.picker.Path = ""
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	if _, ok := msg.(tea.KeyMsg); !ok {
		return cmd, "", false
	}
	ok, path := s.picker.DidSelectFile(msg)
	if !ok || path == "" {
		return cmd, "", false
	}
	return cmd, path, s.toggle(path)
}

func (s *attachSession) toggle(path string) bool {
	for i, p := range s.marked {
		if p == path {
			s.marked = append(s.marked[:i], s.marked[i+1:]...)
			return false
		}
	}
	s.marked = append(s.marked, path)
	return true
}

func (s *attachSession) markedNames() []string {
	names := make([]string, len(s.marked))
	for i, p := range s.marked {
		names[i] = filepath.Base(p)
	}
	return names
}

func (s *attachSession) dir() string {
	return s.picker.CurrentDirectory
}

func (s *attachSession) setHeight(height int) {
	s.picker.SetHeight(height)
}

func (s *attachSession) view() string {
	return s.picker.View()
}

func (f *Form) openPicker() tea.Cmd {
	if f.loading || f.picker != nil {
		return nil
	}
	dir := f.pickerDir
	if dir == "" {
		dir = "."
	}
	f.picker = newAttachSession(dir, f.showHidden, f.pickerHeight, f.pickerKeys)
	events.Attach.Open(dir)
	return f.picker.init()
}

func (f *Form) updatePicker(msg tea.Msg) tea.Cmd {
	if f.picker == nil {
		return nil
	}
	cmd, path, marked := f.picker.update(msg)
	if path != "" {
		events.Attach.Mark(path, marked)
	}
	return cmd
}

// confirmPicker ends the session and replaces the selection with the marked
// files, in marking order.
func (f *Form) confirmPicker() {
	if f.picker == nil {
		return
	}
	session := f.picker
	f.picker = nil
	f.pickerDir = session.dir()
	f.SelectFiles(HandlesFromPaths(session.marked))
	events.Attach.Confirm(fileNames(f.files))
}

func (f *Form) cancelPicker() {
	if f.picker == nil {
		return
	}
	f.pickerDir = f.picker.dir()
	f.picker = nil
	events.Attach.Cancel()
}

// PickerOpen reports whether a file picker session is active.
func (f *Form) PickerOpen() bool {
	return f.picker != nil
}

// MarkedFiles returns the names marked in the open picker session.
func (f *Form) MarkedFiles() []string {
	if f.picker == nil {
		return nil
	}
	return f.picker.markedNames()
}
