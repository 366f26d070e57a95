// Package viz renders simulation results in the terminal.
//
// It provides the currency/summary formatting, asciigraph schedule plots,
// and the interactive Bubble Tea front-end that collects parameters and
// runs the simulator.
//
// # Key Bindings (interactive mode)
//
//	j/k   - Select field
//	h/l   - Adjust value / cycle deposit interval
//	Enter - Type a value directly
//	R     - Run the simulation
//	S     - Save the run (result screen)
//	Esc   - Back, Q - quit
package viz
