package studyinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/study-input/internal/logging/events"
	"github.com/atomicstack/study-input/internal/theme"
)

const (
	defaultWidth      = 64
	minWidth          = 24
	goalHeight        = 5
	goalFrameOverhead = 2
	placeholderText   = "e.g., 'Master Go concurrency in one week' or 'Prepare for my Calculus II final in 10 days'"
)

var styles = theme.Default()

// GenerateFunc receives the raw goal on a valid submission. The returned
// command, if any, is handed back to the Bubble Tea runtime untouched.
type GenerateFunc func(goal string) tea.Cmd

// Props is the caller's side of the contract.
type Props struct {
	OnGenerate GenerateFunc
}

// Options configures presentation details.
type Options struct {
	// StartDir is where the file picker opens first. Defaults to ".".
	StartDir   string
	ShowHidden bool
	Width      int
	Height     int
}

type Focus int

const (
	FocusGoal Focus = iota
	FocusAttach
	FocusSubmit
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusGoal:
		return "goal"
	case FocusAttach:
		return "attach"
	case FocusSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Form is the study goal entry form.
type Form struct {
	props Props

	goal    string
	files   []FileHandle
	loading bool
	focus   Focus

	input   textarea.Model
	spinner spinner.Model
	help    help.Model

	picker       *attachSession
	pickerDir    string
	pickerHeight int
	showHidden   bool

	keys       KeyMap
	pickerKeys PickerKeyMap
	width      int
}

// New returns a form with an empty goal and no files, focused on the goal.
func New(props Props, opts Options) *Form {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.SetHeight(goalHeight)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if styles.Spinner != nil {
		sp.Style = *styles.Spinner
	}

	f := &Form{
		props:        props,
		input:        ta,
		spinner:      sp,
		help:         help.New(),
		pickerDir:    opts.StartDir,
		pickerHeight: defaultPickerHeight,
		showHidden:   opts.ShowHidden,
		keys:         DefaultKeyMap(),
		pickerKeys:   DefaultPickerKeyMap(),
		focus:        FocusGoal,
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	f.SetSize(width, opts.Height)
	f.input.Focus()
	return f
}

// Init is part of the Bubble Tea component contract.
func (f *Form) Init() tea.Cmd {
	if f.loading {
		return f.spinner.Tick
	}
	return nil
}

// Update routes msg to the focused control. It returns nil for every key
// press while loading.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.loading {
			// dropping the tick stops the animation loop
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		f.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return f.handleKey(msg)
	}
	if f.picker != nil {
		return f.updatePicker(msg)
	}
	if f.focus == FocusGoal && !f.loading {
		return f.updateGoal(msg)
	}
	return nil
}

func (f *Form) handleKey(msg tea.KeyMsg) tea.Cmd {
	if f.loading {
		return nil
	}
	if f.picker != nil {
		switch {
		case key.Matches(msg, f.pickerKeys.Cancel):
			f.cancelPicker()
			return nil
		case key.Matches(msg, f.pickerKeys.Done):
			f.confirmPicker()
			return nil
		}
		return f.updatePicker(msg)
	}
	switch {
	case key.Matches(msg, f.keys.Submit):
		return f.Submit()
	case key.Matches(msg, f.keys.Next):
		return f.cycleFocus(1)
	case key.Matches(msg, f.keys.Prev):
		return f.cycleFocus(-1)
	}
	switch f.focus {
	case FocusGoal:
		return f.updateGoal(msg)
	case FocusAttach:
		if key.Matches(msg, f.keys.Activate) {
			return f.openPicker()
		}
	case FocusSubmit:
		if key.Matches(msg, f.keys.Activate) {
			return f.Submit()
		}
	}
	return nil
}

// updateGoal feeds msg to the textarea and copies its value verbatim.
func (f *Form) updateGoal(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
		k.Runes = []rune(normalizeNewlines(string(k.Runes)))
		msg = k
	}
	before := f.goal
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.goal = f.input.Value()
	if f.goal != before {
		events.Form.Edit(len(f.goal), f.CanSubmit())
	}
	return cmd
}

func (f *Form) cycleFocus(delta int) tea.Cmd {
	next := (int(f.focus) + delta) % int(focusCount)
	if next < 0 {
		next += int(focusCount)
	}
	return f.SetFocus(Focus(next))
}

// SetFocus moves focus to target.
func (f *Form) SetFocus(target Focus) tea.Cmd {
	if target < FocusGoal || target >= focusCount {
		return nil
	}
	f.focus = target
	events.Form.Focus(target.String())
	if target == FocusGoal && !f.loading {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}

// Focused returns the control that currently has focus.
func (f *Form) Focused() Focus {
	return f.focus
}

// SetLoading mirrors the caller's loading flag. Turning it on disables every
// control, closes an open picker and starts the spinner.
func (f *Form) SetLoading(loading bool) tea.Cmd {
	if f.loading == loading {
		return nil
	}
	f.loading = loading
	f.keys.setEnabled(!loading)
	events.Form.Loading(loading)
	if loading {
		f.cancelPicker()
		f.input.Blur()
		return f.spinner.Tick
	}
	if f.focus == FocusGoal {
		return f.input.Focus()
	}
	return nil
}

func (f *Form) Loading() bool {
	return f.loading
}

// Goal returns the goal exactly as typed.
func (f *Form) Goal() string {
	return f.goal
}

// SetGoal replaces the goal text, as if the user had edited the field to
// hold goal. The stored goal is the field's value: CRLF line breaks become a
// single "\n", tabs are expanded to four spaces and other control characters
// are dropped, exactly as for typed or pasted text.
func (f *Form) SetGoal(goal string) {
	f.input.SetValue(normalizeNewlines(goal))
	f.goal = f.input.Value()
	events.Form.Edit(len(f.goal), f.CanSubmit())
}

// Files returns a copy of the selected files.
func (f *Form) Files() []FileHandle {
	if len(f.files) == 0 {
		return nil
	}
	out := make([]FileHandle, len(f.files))
	copy(out, f.files)
	return out
}

// SelectFiles replaces the selection wholesale. Passing nil or an empty slice
// clears it.
func (f *Form) SelectFiles(files []FileHandle) {
	if len(files) == 0 {
		f.files = nil
		return
	}
	f.files = make([]FileHandle, len(files))
	copy(f.files, files)
}

// State reports the submit button state.
func (f *Form) State() SubmitState {
	return submitState(f.goal, f.loading)
}

// CanSubmit reports whether activating the submit button would do anything.
func (f *Form) CanSubmit() bool {
	return f.State() == IdleValid
}

// Submit invokes OnGenerate with the untrimmed goal when the form is
// submittable and does nothing otherwise.
func (f *Form) Submit() tea.Cmd {
	switch f.State() {
	case Busy:
		events.Form.Reject(events.RejectLoading)
		return nil
	case IdleInvalid:
		events.Form.Reject(events.RejectEmpty)
		return nil
	}
	events.Form.Submit(len(f.goal))
	if f.props.OnGenerate == nil {
		return nil
	}
	return f.props.OnGenerate(f.goal)
}

// SetSize fits the form into width columns. height only bounds the picker.
func (f *Form) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	f.width = width
	f.input.SetWidth(width - goalFrameOverhead)
	f.help.Width = width
	if height > 0 {
		f.pickerHeight = clamp(height-20, minPickerHeight, maxPickerHeight)
	}
	if f.picker != nil {
		f.picker.setHeight(f.pickerHeight)
	}
}

// HelpView renders a one-line key hint for the active controls.
func (f *Form) HelpView() string {
	if f.picker != nil {
		return f.help.View(f.pickerKeys)
	}
	return f.help.View(f.keys)
}

// View renders the form.
func (f *Form) View() string {
	in := viewInput{
		width:    f.width,
		focus:    f.focus,
		loading:  f.loading,
		goalView: f.input.View(),
		files:    f.files,
		state:    f.State(),
	}
	if f.loading {
		in.spinnerFrame = f.spinner.View()
	}
	if f.picker != nil {
		in.pickerOpen = true
		in.pickerView = f.picker.view()
		in.pickerDir = f.picker.dir()
		in.marked = f.picker.markedNames()
	}
	return render(in)
}

// normalizeNewlines folds CRLF pairs so the textarea, which treats '\r' and
// '\n' as separate breaks, sees one line break per pair.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
