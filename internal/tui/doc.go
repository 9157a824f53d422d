// Package tui is the terminal front-end of adminctl.
//
// It is a Bubble Tea program split along Model-View-Controller lines:
//
//   - model/: application state, the mount scope and the messages that
//     carry asynchronous results back into the update loop
//   - view/: pure rendering of the model (tab bar, panels, form, overlays)
//   - controller/: key handling, commands and the program lifecycle
//   - components/, design/ and utils/: shared widgets, the colour and style
//     system and string helpers
//
// Every tab change, form open/close and refresh remounts the active panel.
// A remount cancels the context of the previous panel's requests and bumps
// a generation counter; results tagged with an older generation are
// discarded when they arrive.
package tui
