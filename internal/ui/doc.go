// Package ui contains the Bubble Tea program that hosts the study goal form.
// The Model owns the caller side of the form's contract: it supplies the
// generation callback, owns the loading flag and displays what comes back.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key presses,
//     window resizes and generation results are routed through a typed
//     handler registry; everything else (spinner frames, directory listings)
//     belongs to the form.
//   - A valid submission calls Model.onGenerate from inside the form's Update.
//     With a generator configured it sets loading and hands a plan.Request to
//     the command bus (internal/ui/command), which runs it as a tea.Cmd and
//     answers with a command.Result. Without one the goal is stored in the
//     Outcome and the program quits.
//   - handleResultMsg clears loading and shows either the plan, in a
//     scrollable viewport below the form, or an error line. Results whose
//     request ID does not match the pending request are dropped.
//
// Harness drives the same Update path in tests, executing returned commands
// synchronously.
package ui
