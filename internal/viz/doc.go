// Package viz renders black holes and evaporation tracks in the terminal.
//
//   - [RenderObservables]: lipgloss table of every observable in its display unit
//   - [Plot]: asciigraph line chart of a track column, optionally on a log scale
//   - [Explorer]: Bubble Tea program for adjusting a hole interactively
//
// # Key Bindings
//
//	↑/↓ j/k - Select observable
//	+/-     - Multiply / divide mass by ten
//	Enter   - Edit the selected observable
//	U       - Cycle the display unit of the selected observable
//	A       - Age by a tenth of the remaining lifetime
//	T       - Cycle color themes
//	Q       - Quit
package viz
