package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/dynamd/dynamd/sim/xmlio"
)

// loadPresets reads the species/ensemble presets file, exiting the process
// on failure (same fatal-on-bad-config idiom as the teacher's
// GetDefaultSpecs/GetCoefficients).
func loadPresets(path string) *xmlio.Presets {
	presets, err := xmlio.LoadPresets(path)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return presets
}
