package studyinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the form-level bindings. Goal editing keys belong to the
// textarea and are not listed here.
type KeyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// PickerKeyMap holds the bindings active while the file picker is open.
type PickerKeyMap struct {
	Mark   key.Binding
	Done   key.Binding
	Cancel key.Binding
	Up     key.Binding
	Down   key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "create plan")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}

func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Mark:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark")),
		Done:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "done")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back:   key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("←/h", "parent")),
	}
}

// setEnabled toggles every form binding so help output hides them while busy.
func (k *KeyMap) setEnabled(enabled bool) {
	k.Submit.SetEnabled(enabled)
	k.Next.SetEnabled(enabled)
	k.Prev.SetEnabled(enabled)
	k.Activate.SetEnabled(enabled)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Submit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Activate, k.Submit}}
}

func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Done, k.Cancel, k.Back}
}

func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back}, {k.Mark, k.Done, k.Cancel}}
}
