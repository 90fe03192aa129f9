package ui

import (
	"fmt"
	"strings"

	"life-ca/internal/core"
)

// Line is one row of HUD text. Headers start a parameter group.
type Line struct {
	Text   string
	Header bool
}

// snapshotLines flattens a parameter snapshot into HUD rows, one per group
// header and one "Label: value" row per parameter.
func snapshotLines(title string, snap core.ParameterSnapshot) []Line {
	lines := []Line{{Text: title, Header: true}}
	if len(snap.Groups) == 0 {
		return append(lines, Line{Text: "No parameters"})
	}
	for _, group := range snap.Groups {
		lines = append(lines, Line{Text: group.Name, Header: true})
		for _, p := range group.Params {
			lines = append(lines, Line{Text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Stats"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Stats"
}
