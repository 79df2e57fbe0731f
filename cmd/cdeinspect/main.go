// Command cdeinspect loads a packing scenario from a YAML file, replays its
// placements through the collision detection engine, and reports any
// overlaps it finds.
package main

import "github.com/arl/cde/cmd/cdeinspect/cmd"

func main() {
	cmd.Execute()
}
