package xmlio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynamd/dynamd/sim"
	_ "github.com/dynamd/dynamd/sim/interactions"
	_ "github.com/dynamd/dynamd/sim/newtonian"
)

const minimalConfig = `<?xml version="1.0"?>
<DYNAMOconfig>
  <Simulation>
    <PrimaryCellSize X="10" Y="10" Z="10"/>
    <Boundary Type="Periodic"/>
    <Stop EndEventCount="100" EndTime="0" Seed="7"/>
    <Scheduler Name="dumb"/>
    <Cells RangeMax="1.5" Padding="0.05"/>
    <Sorter BucketsPerParticle="2" InitialBucketWidth="1" InnerHeapCapacity="3"/>
  </Simulation>
  <Properties>
    <Species ID="0" Mass="1" Name="atom"/>
  </Properties>
  <ParticleData>
    <Pt ID="0" PX="-5" PY="0" PZ="0" VX="1" VY="0" VZ="0" Species="0"/>
    <Pt ID="1" PX="5" PY="0" PZ="0" VX="-1" VY="0" VZ="0" Species="0"/>
  </ParticleData>
  <Interactions>
    <Interaction Type="HardSphere" Diameter="1.0" Elasticity="1.0"/>
  </Interactions>
</DYNAMOconfig>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad_MinimalConfig(t *testing.T) {
	path := writeTemp(t, "config.xml", minimalConfig)

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, loaded.Particles.Len())
	require.Equal(t, int64(100), loaded.RunCfg.EndEventCount)
	require.Equal(t, int64(7), loaded.RunCfg.Seed)
	require.Equal(t, "dumb", loaded.SchedulerKey)
	require.Len(t, loaded.Interactions, 1)
	require.NotNil(t, loaded.Dynamics, "expected a constructed Liouvillean (sim/newtonian registered via blank import)")
}

func TestLoad_UnknownInteractionTypeIsConfigError(t *testing.T) {
	bad := `<?xml version="1.0"?>
<DYNAMOconfig>
  <Simulation><PrimaryCellSize X="1" Y="1" Z="1"/></Simulation>
  <Interactions><Interaction Type="NotARealType"/></Interactions>
</DYNAMOconfig>`
	path := writeTemp(t, "bad.xml", bad)

	_, err := Load(path)
	require.Error(t, err, "expected Load() to fail on an unregistered Interaction Type")
	var cfgErr *sim.ConfigError
	require.ErrorAs(t, err, &cfgErr, "expected the failure to be a ConfigError")
}

func TestSaveThenLoad_RoundTripsParticlePositions(t *testing.T) {
	path := writeTemp(t, "in.xml", minimalConfig)
	loaded, err := Load(path)
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, Save(outPath, loaded.Particles, loaded.Ensemble))

	reloaded, err := Load(outPath)
	require.NoError(t, err, "reloading saved config")
	require.Equal(t, loaded.Particles.Len(), reloaded.Particles.Len())
	p0 := reloaded.Particles.Get(0)
	require.Equal(t, -5.0, p0.Position.X)
}
