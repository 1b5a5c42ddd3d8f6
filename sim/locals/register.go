package locals

import (
	"strconv"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/vecmath"
)

func init() {
	sim.LocalConstructors["Sphere"] = newSphereFromXML
}

func newSphereFromXML(attrs map[string]string) (sim.Local, error) {
	id, _ := strconv.Atoi(attrs["ID"])
	radius, err := floatAttr(attrs, "Radius", 1.0)
	if err != nil {
		return nil, err
	}
	elasticity, err := floatAttr(attrs, "Elasticity", 1.0)
	if err != nil {
		return nil, err
	}
	center := vecmath.Vec3{
		X: mustFloat(attrs["CenterX"]),
		Y: mustFloat(attrs["CenterY"]),
		Z: mustFloat(attrs["CenterZ"]),
	}
	return NewSphere(id, center, radius, elasticity, sim.IDRange{Kind: sim.IDRangeAll}), nil
}

func floatAttr(attrs map[string]string, name string, def float64) (float64, error) {
	v, ok := attrs[name]
	if !ok || v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func mustFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}
