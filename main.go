// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/dynamd/dynamd/cmd"

	_ "github.com/dynamd/dynamd/sim/cells"
	_ "github.com/dynamd/dynamd/sim/interactions"
	_ "github.com/dynamd/dynamd/sim/locals"
	_ "github.com/dynamd/dynamd/sim/newtonian"
	_ "github.com/dynamd/dynamd/sim/systems"
)

func main() {
	cmd.Execute()
}
