package interactions

import (
	"fmt"
	"strconv"

	"github.com/dynamd/dynamd/sim"
)

func init() {
	sim.InteractionConstructors["HardSphere"] = newHardSphereFromXML
	sim.InteractionConstructors["SquareWell"] = newSquareWellFromXML
	sim.InteractionConstructors["Stepped"] = newSteppedFromXML
	sim.InteractionConstructors["Null"] = newNullFromXML
}

func floatAttr(attrs map[string]string, name string, def float64) (float64, error) {
	raw, ok := attrs[name]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", name, err)
	}
	return v, nil
}

func newHardSphereFromXML(attrs map[string]string) (sim.Interaction, error) {
	sigma, err := floatAttr(attrs, "Diameter", 1.0)
	if err != nil {
		return nil, err
	}
	e, err := floatAttr(attrs, "Elasticity", 1.0)
	if err != nil {
		return nil, err
	}
	return NewHardSphere(sigma, e, sim.IDPairRange{Kind: sim.PairRangeAll}), nil
}

func newSquareWellFromXML(attrs map[string]string) (sim.Interaction, error) {
	core, err := floatAttr(attrs, "Diameter", 1.0)
	if err != nil {
		return nil, err
	}
	lambda, err := floatAttr(attrs, "Lambda", 1.5)
	if err != nil {
		return nil, err
	}
	depth, err := floatAttr(attrs, "WellDepth", 1.0)
	if err != nil {
		return nil, err
	}
	e, err := floatAttr(attrs, "Elasticity", 1.0)
	if err != nil {
		return nil, err
	}
	return NewSquareWell(core, core*lambda, depth, e, sim.IDPairRange{Kind: sim.PairRangeAll}), nil
}

func newSteppedFromXML(attrs map[string]string) (sim.Interaction, error) {
	// sim/xmlio passes only the element's attributes, so a Stepped
	// interaction built from XML always has a single level, read from the
	// flat Radius/DeltaU attributes; multi-level staircases can only be
	// built in Go via NewStepped.
	radius, err := floatAttr(attrs, "Radius", 1.0)
	if err != nil {
		return nil, err
	}
	deltaU, err := floatAttr(attrs, "DeltaU", 1.0)
	if err != nil {
		return nil, err
	}
	e, err := floatAttr(attrs, "Elasticity", 1.0)
	if err != nil {
		return nil, err
	}
	return NewStepped([]Step{{Radius: radius, DeltaU: deltaU}}, e, sim.IDPairRange{Kind: sim.PairRangeAll}), nil
}

func newNullFromXML(attrs map[string]string) (sim.Interaction, error) {
	return NewNull(sim.IDPairRange{Kind: sim.PairRangeAll}), nil
}
