// Package ui implements the launcher window as a Bubble Tea program.
//
// # Overview
//
// The window is a single Model: a query buffer, the current ranking,
// a selection cursor over it, and wall-clock animation state. Every
// edit to the query reruns the ranking across all providers; every
// tick advances the caret blink, the results fade-in, and the rainbow
// border without changing any launcher state.
//
// # Structure
//
//   - app.go: Model, Update loop, launch handling, the tick cycle
//   - input.go: keybind dispatch and query text editing
//   - view.go: frame rendering for the search box and results list
//   - theme.go: lipgloss styles built from the configured palette
//   - keys.go: key.Binding table resolved from configured key names
//
// # Animation
//
// Rendering is a pure function of the model plus the time carried by
// the last tick. The tick interval adapts: a full frame rate while the
// fade or rainbow border is animating, the caret blink rate while only
// the caret moves, and a slow idle tick otherwise. The fade restarts
// whenever the top-ranked candidate changes identity, so a new best
// match visibly arrives.
//
// # Launching
//
// Enter launches the selected candidate; the configured number
// modifier (alt by default, ctrl optionally) plus 1-9 launches by
// displayed rank when numbering is enabled, leaving plain digits free
// for calculator queries. A successful launch quits the window. A failed
// launch keeps it open and shows the error in a transient status line.
package ui
