// Package studyinput contains the data-entry form where a user types a
// learning goal, optionally attaches files, and submits the goal for plan
// generation.
//
// The form owns two pieces of local state: the goal text and the list of
// selected files. The loading flag belongs to the caller and is pushed in via
// Form.SetLoading. While it is set every control is disabled and the submit
// button shows a spinner.
//
// Message flow:
//   - The host forwards tea.Msg values to Form.Update.
//   - Key presses are routed by focus: the goal textarea, the attach trigger,
//     or the submit button. ctrl+s submits from anywhere.
//   - Activating the attach trigger opens a file picker session. Files marked
//     in the session replace the current selection when the session is
//     confirmed.
//   - A valid submission calls Props.OnGenerate exactly once with the raw goal.
//     Selected files are display-only and never reach the callback.
//
// Rendering is a pure function of the goal view, the file list, the loading
// flag, focus and picker state (see render in view.go).
package studyinput
