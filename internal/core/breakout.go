package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"portview/internal/types"
)

// breakoutModePattern matches mode strings like "4x25G" or "1x100G[40G]";
// a bracketed alternate speed is accepted and ignored.
var breakoutModePattern = regexp.MustCompile(`^([0-9]+)x([0-9]+)G(\[[0-9]+G\])?$`)

// ParseBreakoutMode decodes a breakout mode string into its lane count
// and per-lane speed in gigabits.
func ParseBreakoutMode(mode string) (lanes int, laneSpeedGb int, err error) {
	m := breakoutModePattern.FindStringSubmatch(strings.TrimSpace(mode))
	if m == nil {
		return 0, 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported breakout mode %q", mode))
	}
	lanes, err = strconv.Atoi(m[1])
	if err == nil {
		laneSpeedGb, err = strconv.Atoi(m[2])
	}
	if err != nil || lanes == 0 {
		return 0, 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported breakout mode %q", mode))
	}
	return lanes, laneSpeedGb, nil
}

// ChildPorts derives the ordered child port names for a parent broken
// out into the given lane count, starting from the parent's lane base.
// Ethernet0 at 4 lanes yields Ethernet0..Ethernet3.
func ChildPorts(parent string, lanes int) ([]string, error) {
	base := strings.TrimFunc(parent, func(r rune) bool { return r < '0' || r > '9' })
	prefix := strings.TrimSuffix(parent, base)
	index, err := strconv.Atoi(base)
	if err != nil || prefix == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("parent port %q has no numeric lane base", parent))
	}
	children := make([]string, 0, lanes)
	for i := 0; i < lanes; i++ {
		children = append(children, fmt.Sprintf("%s%d", prefix, index+i))
	}
	return children, nil
}

// SpeedLookup resolves the live operational speed of a child port,
// expressed in megabits. The boolean is false when no speed is recorded.
type SpeedLookup func(port string) (speedMb string, ok bool)

// BreakoutInputs are the four sources the resolver reconciles.
type BreakoutInputs struct {
	PlatformCaps map[string]map[string]any
	SKUDefaults  map[string]map[string]any
	CurrentModes map[string]string
	LiveSpeed    SpeedLookup
}

// ResolveBreakout merges the platform capability document, the SKU
// default document, the persisted current-breakout table and live child
// speeds into one descriptor per parent port, naturally ordered by
// parent name.
//
// A parent appears in the output only when present in both the platform
// capability document and the persisted table; absence from the table
// means the port was never broken out. On attribute collision the SKU
// value overwrites the platform value.
func ResolveBreakout(in BreakoutInputs) ([]types.BreakoutConfig, error) {
	if len(in.PlatformCaps) == 0 || len(in.SKUDefaults) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("cannot load port capability from platform or SKU document")
	}

	configs := make([]types.BreakoutConfig, 0, len(in.PlatformCaps))
	for _, parent := range NaturalKeys(in.PlatformCaps) {
		mode, ok := in.CurrentModes[parent]
		if !ok {
			log.Debug().Str("port", parent).Msg("no applied breakout mode, skipping")
			continue
		}

		attrs := make(map[string]any, len(in.PlatformCaps[parent]))
		for k, v := range in.PlatformCaps[parent] {
			attrs[k] = v
		}
		for k, v := range in.SKUDefaults[parent] {
			attrs[k] = v
		}

		lanes, _, err := ParseBreakoutMode(mode)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("cannot derive child ports for %s", parent)).
				WithCause(err)
		}
		declared, err := ChildPorts(parent, lanes)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("cannot derive child ports for %s", parent)).
				WithCause(err)
		}

		var children, speeds []string
		for _, child := range declared {
			speedMb, ok := in.LiveSpeed(child)
			if !ok {
				continue
			}
			formatted, err := FormatSpeed(speedMb)
			if err != nil {
				log.Warn().Str("port", child).Str("speed", speedMb).Msg("unparseable port speed, skipping child")
				continue
			}
			children = append(children, child)
			speeds = append(speeds, formatted)
		}

		configs = append(configs, types.BreakoutConfig{
			Port:        parent,
			CurrentMode: mode,
			Attrs:       attrs,
			ChildPorts:  children,
			ChildSpeeds: speeds,
		})
	}
	return configs, nil
}

// FormatSpeed normalizes a megabit speed value ("25000") to whole
// gigabits with the unit suffix ("25G").
func FormatSpeed(speedMb string) (string, error) {
	mb, err := strconv.Atoi(strings.TrimSpace(speedMb))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid speed value %q", speedMb))
	}
	return strconv.Itoa(mb/1000) + "G", nil
}
