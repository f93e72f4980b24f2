// cubestate - CLI for applying moves to a virtual cube and working with
// facelet strings.
package main

import (
	"github.com/SeamusWaldron/cubestate/internal/cli"
)

func main() {
	cli.Execute()
}
