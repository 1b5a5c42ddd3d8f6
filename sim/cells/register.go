package cells

import (
	"fmt"
	"strconv"

	"github.com/dynamd/dynamd/sim"
)

func init() {
	sim.GlobalConstructors["CellList"] = newFromXML
}

func newFromXML(attrs map[string]string, ens sim.EnsembleConfig) (sim.Global, error) {
	padding := 0.05
	if raw, ok := attrs["Padding"]; ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("attribute Padding: %w", err)
		}
		padding = v
	}
	rangeMax := 1.0
	if raw, ok := attrs["RangeMax"]; ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("attribute RangeMax: %w", err)
		}
		rangeMax = v
	}
	return New(ens.PrimaryCellSize, rangeMax, padding), nil
}
