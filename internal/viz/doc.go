// Package viz is the interactive terminal host for route playback.
//
// The map is drawn on a braille canvas, one terminal cell holding 2x4
// dots, with the stop panel on the right:
//
//   - current stop card, playback progress and state
//   - a popup for the stop clicked with the mouse
//   - the marker legend and an edge-count history chart
//
// # Key Bindings
//
//	Space - Play/Pause
//	R     - Reset to the first stop
//	N/P   - Step to the next/previous stop
//	T     - Cycle color themes
//	O     - Show the directions link
//	Esc   - Close the popup
//	?     - Toggle full help
//	Q     - Quit
package viz
