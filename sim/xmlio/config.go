// Package xmlio loads and saves the DYNAMOconfig document (base spec §6):
// the XML serialisation of an ensemble, its particle data, and every
// Interaction/Local/Global/System it wires together. Grounded on
// `encoding/xml` by necessity (§3 of SPEC_FULL.md: no third-party XML
// library appears anywhere in the retrieved corpus), with `compress/bzip2`
// read-only decompression for `.xml.bz2` input and `compress/gzip` output
// compression, same stdlib-by-necessity reasoning.
package xmlio

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// rawElement captures an XML element's attributes generically, so each
// registered Interaction/Local/Global/System constructor can interpret its
// own attribute set without this package knowing every concrete type's
// shape in advance (base spec §6: Type= string dispatch).
type rawElement struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (e rawElement) attrMap() map[string]string {
	m := make(map[string]string, len(e.Attrs))
	for _, a := range e.Attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// DYNAMOconfig is the document root.
type DYNAMOconfig struct {
	XMLName      xml.Name          `xml:"DYNAMOconfig"`
	Simulation   simulationElement `xml:"Simulation"`
	Properties   propertiesElement `xml:"Properties"`
	ParticleData particleData      `xml:"ParticleData"`
	Interactions []rawInteraction  `xml:"Interactions>Interaction"`
	Locals       []rawLocal        `xml:"Locals>Local"`
	Globals      []rawGlobal       `xml:"Globals>Global"`
	Systems      []rawSystem       `xml:"Systems>System"`
}

type simulationElement struct {
	PrimaryCellX float64        `xml:"PrimaryCellSize>X,attr"`
	PrimaryCellY float64        `xml:"PrimaryCellSize>Y,attr"`
	PrimaryCellZ float64        `xml:"PrimaryCellSize>Z,attr"`
	Boundary     string         `xml:"Boundary>Type,attr"`
	ShearRate    float64        `xml:"Boundary>ShearRate,attr"`
	GravityX     float64        `xml:"Gravity>X,attr"`
	GravityY     float64        `xml:"Gravity>Y,attr"`
	GravityZ     float64        `xml:"Gravity>Z,attr"`
	EndEventCnt  int64          `xml:"Stop>EndEventCount,attr"`
	EndTime      float64        `xml:"Stop>EndTime,attr"`
	Seed         int64          `xml:"Stop>Seed,attr"`
	Scheduler    string         `xml:"Scheduler>Name,attr"`
	CellRangeMax float64        `xml:"Cells>RangeMax,attr"`
	CellPadding  float64        `xml:"Cells>Padding,attr"`
	SorterBuck   int            `xml:"Sorter>BucketsPerParticle,attr"`
	SorterWidth  float64        `xml:"Sorter>InitialBucketWidth,attr"`
	SorterHeapK  int            `xml:"Sorter>InnerHeapCapacity,attr"`
}

type propertiesElement struct {
	Species []speciesElement `xml:"Species"`
}

type speciesElement struct {
	ID   int     `xml:"ID,attr"`
	Mass float64 `xml:"Mass,attr"`
	Name string  `xml:"Name,attr"`
}

type particleData struct {
	Particles []particleElement `xml:"Pt"`
}

type particleElement struct {
	ID      int     `xml:"ID,attr"`
	PX      float64 `xml:"PX,attr"`
	PY      float64 `xml:"PY,attr"`
	PZ      float64 `xml:"PZ,attr"`
	VX      float64 `xml:"VX,attr"`
	VY      float64 `xml:"VY,attr"`
	VZ      float64 `xml:"VZ,attr"`
	Species int     `xml:"Species,attr"`
}

type rawInteraction struct {
	rawElement
}
type rawLocal struct {
	rawElement
}
type rawGlobal struct {
	rawElement
}
type rawSystem struct {
	rawElement
}

// Loaded holds everything parsed/constructed from a DYNAMOconfig document,
// ready to be handed to sim.NewSimulation.
type Loaded struct {
	Ensemble     sim.EnsembleConfig
	RunCfg       sim.RunConfig
	CellCfg      sim.CellConfig
	SorterCfg    sim.SorterConfig
	SchedulerKey string
	Gravity      vecmath.Vec3
	Boundary     boundary.Condition
	Dynamics     sim.Liouvillean
	Particles    *sim.ParticleStore
	Interactions []sim.Interaction
	Locals       []sim.Local
	Global       sim.Global
	Systems      []sim.System
}

// Load reads a DYNAMOconfig document from path, transparently decompressing
// a ".xml.bz2" extension.
func Load(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".bz2") {
		decompressed, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("decompressing config %s: %w", path, err)
		}
		data = decompressed
	}

	var doc DYNAMOconfig
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return build(&doc)
}

func build(doc *DYNAMOconfig) (*Loaded, error) {
	sEl := doc.Simulation

	boundaryKind := sim.BoundaryPeriodic
	var bc boundary.Condition
	l := vecmath.Vec3{X: sEl.PrimaryCellX, Y: sEl.PrimaryCellY, Z: sEl.PrimaryCellZ}
	switch sEl.Boundary {
	case "", "Periodic":
		bc = boundary.Periodic{L: l}
	case "LeesEdwards":
		boundaryKind = sim.BoundaryLeesEdwards
		bc = boundary.LeesEdwards{L: l, Gamma: sEl.ShearRate}
	default:
		return nil, &sim.ConfigError{Detail: fmt.Sprintf("unknown Boundary Type %q", sEl.Boundary)}
	}

	massOf := make(map[int]float64, len(doc.Properties.Species))
	for _, sp := range doc.Properties.Species {
		massOf[sp.ID] = sp.Mass
	}

	store := sim.NewParticleStore(len(doc.ParticleData.Particles))
	for _, pt := range doc.ParticleData.Particles {
		mass, ok := massOf[pt.Species]
		if !ok {
			mass = 1.0
		}
		store.Set(sim.Particle{
			ID:       sim.ParticleID(pt.ID),
			Position: vecmath.Vec3{X: pt.PX, Y: pt.PY, Z: pt.PZ},
			Velocity: vecmath.Vec3{X: pt.VX, Y: pt.VY, Z: pt.VZ},
			Mass:     mass,
		})
	}

	gravity := vecmath.Vec3{X: sEl.GravityX, Y: sEl.GravityY, Z: sEl.GravityZ}
	if sim.NewLiouvilleanFunc == nil {
		return nil, &sim.ConfigError{Detail: "no Liouvillean registered (missing import of sim/newtonian)"}
	}
	dynamics := sim.NewLiouvilleanFunc([3]float64{gravity.X, gravity.Y, gravity.Z})

	ens := sim.EnsembleConfig{
		PrimaryCellSize: l,
		NParticles:      len(doc.ParticleData.Particles),
		Boundary:        boundaryKind,
		ShearRate:       sEl.ShearRate,
	}

	var interactions []sim.Interaction
	for _, raw := range doc.Interactions {
		attrs := raw.attrMap()
		typ := attrs["Type"]
		ctor, ok := sim.InteractionConstructors[typ]
		if !ok {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("unknown Interaction Type %q", typ)}
		}
		inter, err := ctor(attrs)
		if err != nil {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("Interaction %q", typ), Cause: err}
		}
		interactions = append(interactions, inter)
	}

	var locals []sim.Local
	for _, raw := range doc.Locals {
		attrs := raw.attrMap()
		typ := attrs["Type"]
		ctor, ok := sim.LocalConstructors[typ]
		if !ok {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("unknown Local Type %q", typ)}
		}
		loc, err := ctor(attrs)
		if err != nil {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("Local %q", typ), Cause: err}
		}
		locals = append(locals, loc)
	}

	var global sim.Global
	for _, raw := range doc.Globals {
		attrs := raw.attrMap()
		typ := attrs["Type"]
		ctor, ok := sim.GlobalConstructors[typ]
		if !ok {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("unknown Global Type %q", typ)}
		}
		g, err := ctor(attrs, ens)
		if err != nil {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("Global %q", typ), Cause: err}
		}
		global = g // base spec names exactly one cell-list Global per simulation
	}

	var systems []sim.System
	for _, raw := range doc.Systems {
		attrs := raw.attrMap()
		typ := attrs["Type"]
		ctor, ok := sim.SystemConstructors[typ]
		if !ok {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("unknown System Type %q", typ)}
		}
		sys, err := ctor(attrs)
		if err != nil {
			return nil, &sim.ConfigError{Detail: fmt.Sprintf("System %q", typ), Cause: err}
		}
		systems = append(systems, sys)
	}

	return &Loaded{
		Ensemble: ens,
		RunCfg: sim.RunConfig{
			EndEventCount: sEl.EndEventCnt,
			EndTime:       sEl.EndTime,
			Seed:          sEl.Seed,
		},
		CellCfg: sim.CellConfig{
			RangeMax: orDefault(sEl.CellRangeMax, 1.0),
			Padding:  orDefault(sEl.CellPadding, 0.05),
		},
		SorterCfg: sim.SorterConfig{
			BucketsPerParticle: sEl.SorterBuck,
			InitialBucketWidth: sEl.SorterWidth,
			InnerHeapCapacity:  sEl.SorterHeapK,
		},
		SchedulerKey: sEl.Scheduler,
		Gravity:      gravity,
		Boundary:     bc,
		Dynamics:     dynamics,
		Particles:    store,
		Interactions: interactions,
		Locals:       locals,
		Global:       global,
		Systems:      systems,
	}, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Save writes the current particle state of a Simulation back out as a
// DYNAMOconfig document, gzip-compressed if path ends in ".gz" (base spec
// §6: output config snapshotting).
func Save(path string, store *sim.ParticleStore, ens sim.EnsembleConfig) error {
	doc := DYNAMOconfig{
		Simulation: simulationElement{
			PrimaryCellX: ens.PrimaryCellSize.X,
			PrimaryCellY: ens.PrimaryCellSize.Y,
			PrimaryCellZ: ens.PrimaryCellSize.Z,
		},
	}
	for _, id := range store.All() {
		p := store.Get(id)
		doc.ParticleData.Particles = append(doc.ParticleData.Particles, particleElement{
			ID: int(id),
			PX: p.Position.X, PY: p.Position.Y, PZ: p.Position.Z,
			VX: p.Velocity.X, VY: p.Velocity.Y, VZ: p.Velocity.Z,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(f)
		defer gw.Close()
		_, err = gw.Write(out)
	} else {
		_, err = f.Write(out)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
