package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ParseBreakoutMode / ChildPorts
// ---------------------------------------------------------------------------

func TestParseBreakoutMode(t *testing.T) {
	tests := []struct {
		mode      string
		lanes     int
		laneSpeed int
	}{
		{"1x100G", 1, 100},
		{"4x25G", 4, 25},
		{"2x50G", 2, 50},
		{"1x100G[40G]", 1, 100},
		{"8x50G", 8, 50},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			lanes, speed, err := ParseBreakoutMode(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.lanes, lanes)
			assert.Equal(t, tt.laneSpeed, speed)
		})
	}
}

func TestParseBreakoutModeInvalid(t *testing.T) {
	for _, mode := range []string{"", "4x", "x25G", "4x25", "0x25G", "fourx25G"} {
		t.Run(mode, func(t *testing.T) {
			_, _, err := ParseBreakoutMode(mode)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestChildPorts(t *testing.T) {
	children, err := ChildPorts("Ethernet0", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ethernet0", "Ethernet1", "Ethernet2", "Ethernet3"}, children)

	children, err = ChildPorts("Ethernet8", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ethernet8", "Ethernet9"}, children)

	children, err = ChildPorts("Ethernet16", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ethernet16"}, children)
}

func TestChildPortsNoLaneBase(t *testing.T) {
	_, err := ChildPorts("Ethernet", 4)
	require.Error(t, err)
}

func TestFormatSpeed(t *testing.T) {
	speed, err := FormatSpeed("25000")
	require.NoError(t, err)
	assert.Equal(t, "25G", speed)

	speed, err = FormatSpeed("100000")
	require.NoError(t, err)
	assert.Equal(t, "100G", speed)

	_, err = FormatSpeed("fast")
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// ResolveBreakout
// ---------------------------------------------------------------------------

func breakoutFixture() BreakoutInputs {
	speeds := map[string]string{
		"Ethernet0": "25000",
		"Ethernet1": "25000",
		"Ethernet2": "25000",
		"Ethernet3": "25000",
		"Ethernet4": "100000",
	}
	return BreakoutInputs{
		PlatformCaps: map[string]map[string]any{
			"Ethernet0": {"breakout_modes": "1x100G,4x25G", "index": "1,1,1,1"},
			"Ethernet4": {"breakout_modes": "1x100G,4x25G", "index": "2,2,2,2"},
			"Ethernet8": {"breakout_modes": "1x100G"},
		},
		SKUDefaults: map[string]map[string]any{
			"Ethernet0": {"default_brkout_mode": "1x100G"},
			"Ethernet4": {"default_brkout_mode": "1x100G"},
			"Ethernet8": {"default_brkout_mode": "1x100G"},
		},
		CurrentModes: map[string]string{
			"Ethernet0": "4x25G",
			"Ethernet4": "1x100G",
		},
		LiveSpeed: func(port string) (string, bool) {
			speed, ok := speeds[port]
			return speed, ok
		},
	}
}

func TestResolveBreakoutScenario(t *testing.T) {
	configs, err := ResolveBreakout(breakoutFixture())
	require.NoError(t, err)
	require.Len(t, configs, 2)

	eth0 := configs[0]
	assert.Equal(t, "Ethernet0", eth0.Port)
	assert.Equal(t, "4x25G", eth0.CurrentMode)
	assert.Equal(t, []string{"Ethernet0", "Ethernet1", "Ethernet2", "Ethernet3"}, eth0.ChildPorts)
	assert.Equal(t, []string{"25G", "25G", "25G", "25G"}, eth0.ChildSpeeds)
	assert.Equal(t, "1x100G", eth0.Attrs["default_brkout_mode"])
	assert.Equal(t, "1x100G,4x25G", eth0.Attrs["breakout_modes"])

	eth4 := configs[1]
	assert.Equal(t, "Ethernet4", eth4.Port)
	assert.Equal(t, []string{"Ethernet4"}, eth4.ChildPorts)
	assert.Equal(t, []string{"100G"}, eth4.ChildSpeeds)
}

func TestResolveBreakoutSkipsPortsAbsentFromPersistedTable(t *testing.T) {
	configs, err := ResolveBreakout(breakoutFixture())
	require.NoError(t, err)
	for _, cfg := range configs {
		assert.NotEqual(t, "Ethernet8", cfg.Port)
	}
}

func TestResolveBreakoutChildListsStayEqualLength(t *testing.T) {
	in := breakoutFixture()
	speeds := map[string]string{
		"Ethernet0": "25000",
		// Ethernet1 has no live speed.
		"Ethernet2": "25000",
		"Ethernet3": "25000",
		"Ethernet4": "100000",
	}
	in.LiveSpeed = func(port string) (string, bool) {
		speed, ok := speeds[port]
		return speed, ok
	}
	configs, err := ResolveBreakout(in)
	require.NoError(t, err)
	for _, cfg := range configs {
		assert.Len(t, cfg.ChildSpeeds, len(cfg.ChildPorts))
	}
	assert.Equal(t, []string{"Ethernet0", "Ethernet2", "Ethernet3"}, configs[0].ChildPorts)
}

func TestResolveBreakoutSKUOverwritesPlatform(t *testing.T) {
	in := breakoutFixture()
	in.PlatformCaps["Ethernet0"]["index"] = "platform"
	in.SKUDefaults["Ethernet0"]["index"] = "sku"
	configs, err := ResolveBreakout(in)
	require.NoError(t, err)
	assert.Equal(t, "sku", configs[0].Attrs["index"])
}

func TestResolveBreakoutEmptyDocumentsFatal(t *testing.T) {
	in := breakoutFixture()
	in.PlatformCaps = nil
	_, err := ResolveBreakout(in)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	in = breakoutFixture()
	in.SKUDefaults = map[string]map[string]any{}
	_, err = ResolveBreakout(in)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestResolveBreakoutUnsupportedModeFatal(t *testing.T) {
	in := breakoutFixture()
	in.CurrentModes["Ethernet0"] = "garbage"
	_, err := ResolveBreakout(in)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestResolveBreakoutIdempotent(t *testing.T) {
	first, err := ResolveBreakout(breakoutFixture())
	require.NoError(t, err)
	second, err := ResolveBreakout(breakoutFixture())
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolver output differs between identical runs (-first +second):\n%s", diff)
	}
}

func TestResolveBreakoutNaturalOrder(t *testing.T) {
	in := BreakoutInputs{
		PlatformCaps: map[string]map[string]any{
			"Ethernet112": {}, "Ethernet16": {}, "Ethernet0": {},
		},
		SKUDefaults: map[string]map[string]any{
			"Ethernet112": {}, "Ethernet16": {}, "Ethernet0": {},
		},
		CurrentModes: map[string]string{
			"Ethernet112": "1x100G", "Ethernet16": "1x100G", "Ethernet0": "1x100G",
		},
		LiveSpeed: func(string) (string, bool) { return "", false },
	}
	configs, err := ResolveBreakout(in)
	require.NoError(t, err)
	names := make([]string, 0, len(configs))
	for _, cfg := range configs {
		names = append(names, cfg.Port)
	}
	assert.Equal(t, []string{"Ethernet0", "Ethernet16", "Ethernet112"}, names)
}
