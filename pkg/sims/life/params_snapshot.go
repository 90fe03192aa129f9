package life

import (
	"strconv"

	"life-ca/internal/core"
)

// Parameters describes the world and the current population for HUDs and
// status lines.
func (l *Life) Parameters() core.ParameterSnapshot {
	sizes := l.CommunitySizes()
	largest := 0
	for _, size := range sizes {
		largest = max(largest, size)
	}

	world := []core.Parameter{
		intParam("w", "Width", l.grid.Cols()),
		intParam("h", "Height", l.grid.Rows()),
	}
	if l.initial == nil {
		world = append(world,
			int64Param("seed", "Seed", l.cfg.Seed),
			floatParam("density", "Density", l.cfg.Density),
		)
	} else {
		world = append(world, core.Parameter{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: l.cfg.Pattern})
	}

	groups := []core.ParameterGroup{
		{Name: "World", Params: world},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.gen),
				intParam("alive", "Alive cells", l.grid.AliveCount()),
				intParam("communities", "Communities", len(sizes)),
				intParam("largest", "Largest community", largest),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
