package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dynamd/dynamd/sim/xmlio"
)

var validateConfigPath string

// configCmd loads and validates a DYNAMOconfig document without running
// it, reporting any ConfigError instead of starting the event loop —
// mirrors the teacher's validate-before-run bundle check.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate a DYNAMOconfig file without running it",
	Run: func(cmd *cobra.Command, args []string) {
		if validateConfigPath == "" {
			logrus.Fatalf("--config is required")
		}
		loaded, err := xmlio.Load(validateConfigPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Printf("config OK: %d particles, %d interactions, %d locals, %d systems\n",
			loaded.Particles.Len(), len(loaded.Interactions), len(loaded.Locals), len(loaded.Systems))
	},
}

func init() {
	configCmd.Flags().StringVar(&validateConfigPath, "config", "", "DYNAMOconfig input file (.xml or .xml.bz2)")
}
