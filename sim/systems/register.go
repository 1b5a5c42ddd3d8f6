package systems

import (
	"strconv"

	"github.com/dynamd/dynamd/sim"
)

func init() {
	sim.SystemConstructors["Andersen"] = newAndersenFromXML
}

func newAndersenFromXML(attrs map[string]string) (sim.System, error) {
	id, _ := strconv.Atoi(attrs["ID"])
	period, err := floatAttr(attrs, "Period", 0)
	if err != nil {
		return nil, err
	}
	temperature, err := floatAttr(attrs, "Temperature", 1.0)
	if err != nil {
		return nil, err
	}
	cfg := sim.ThermostatConfig{Period: period, Temperature: temperature}
	return NewAndersenFromConfig(id, cfg, sim.IDRange{Kind: sim.IDRangeAll}), nil
}

func floatAttr(attrs map[string]string, name string, def float64) (float64, error) {
	v, ok := attrs[name]
	if !ok || v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}
