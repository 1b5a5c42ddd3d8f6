package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/xmlio"
)

var (
	configPath     string // DYNAMOconfig input (.xml or .xml.bz2)
	outputPath     string // snapshot path written after the run (.xml or .xml.gz); empty skips
	logLevel       string
	schedulerFlag  string // overrides the config's Scheduler>Name when set
	presetsPath    string // optional species/ensemble presets YAML
	ensemblePreset string // named entry in presetsPath to source the scheduler default from
)

// runCmd loads a DYNAMOconfig document, runs it to its configured stop
// condition, and prints final metrics — mirrors the teacher's runCmd shape
// (parse flags/config, build the simulator, Run(), Metrics.Print()).
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an EDMD simulation from a DYNAMOconfig file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath == "" {
			logrus.Fatalf("--config is required")
		}

		loaded, err := xmlio.Load(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		schedName := loaded.SchedulerKey
		if presetsPath != "" && ensemblePreset != "" {
			presets := loadPresets(presetsPath)
			preset, ok := presets.Ensembles[ensemblePreset]
			if !ok {
				logrus.Fatalf("ensemble preset %q not found in %s", ensemblePreset, presetsPath)
			}
			if preset.Scheduler != "" && schedName == "" {
				schedName = preset.Scheduler
			}
			logrus.Infof("applied ensemble preset %q from %s", ensemblePreset, presetsPath)
		}
		if schedulerFlag != "" {
			schedName = schedulerFlag
		}

		s := sim.NewSimulation(
			loaded.Ensemble, loaded.RunCfg, loaded.SorterCfg,
			loaded.Particles, loaded.Boundary, loaded.Dynamics,
			loaded.Interactions, loaded.Locals, loaded.Global, loaded.Systems,
			sim.NewScheduler(schedName),
		)

		logrus.Infof("starting run: %d particles, stop at endEventCount=%d endTime=%v",
			loaded.Ensemble.NParticles, loaded.RunCfg.EndEventCount, loaded.RunCfg.EndTime)

		start := time.Now()
		s.Initialise()
		s.RunLoop()
		elapsed := time.Since(start)

		s.Metrics.Recompute(s.Particles)
		s.Metrics.Print(s.SystemTime.Value())
		logrus.Infof("wall-clock: %v", elapsed)

		if outputPath != "" {
			if err := xmlio.Save(outputPath, s.Particles, s.Ensemble); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "DYNAMOconfig input file (.xml or .xml.bz2)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "write final particle state here (.xml or .xml.gz)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&schedulerFlag, "scheduler", "", "override the config's scheduler (neighbour-list, dumb)")
	runCmd.Flags().StringVar(&presetsPath, "presets", "", "optional species/ensemble presets YAML")
	runCmd.Flags().StringVar(&ensemblePreset, "ensemble-preset", "", "named ensemble entry in --presets to source scheduler defaults from")
}
