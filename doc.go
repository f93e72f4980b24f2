// Package cubestate models a 3x3 Rubik's cube as 54 facelet colors, turns
// its faces, and converts it to and from the 54-character facelet string
// read by two-phase solvers.
//
// # Features
//
//   - Cube state with per-facelet access and color counts
//   - Table-driven face turns (quarter and half, both directions)
//   - Bit-exact facelet string codec with typed validation errors
//   - Move notation parsing, inversion and simplification
//   - Sessions with history, undo and layer-by-layer phase detection
//   - Scrambles and a pluggable Solver boundary
//
// # Quick Start
//
//	cube := cubestate.Solved()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubestate.R, cubestate.U, cubestate.RPrime, cubestate.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cube.Encode())
//
// # Facelet Strings
//
// A facelet string lists the U, R, F, D, L and B faces in that order, each
// as 9 symbols read row by row. Every face is viewed from outside the cube:
// U has B along its top edge, D has F along its top edge, and the four side
// faces have U along their top edge. The solved cube is:
//
//	UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB
//
// Decode rejects strings with the wrong length, unknown symbols, wrong
// color counts or misplaced centers; each failure wraps its own sentinel
// error so callers can tell them apart with errors.Is.
//
// # Solving
//
// The search itself lives outside this package. A Solver receives the
// facelet string and returns moves; SolveCube checks that those moves
// really solve the cube before handing them back.
package cubestate
