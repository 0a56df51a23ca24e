package game

// File render.go turns world state into narration text.

import (
	"fmt"
	"strings"
)

// Describe renders a location the way the look command shows it: name and
// description, then each non-empty group of entities present, then the
// destinations reachable from it. Players are shown among the characters.
func (w *World) Describe(loc *Location) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Location: %s\n", loc.Entity))

	writeGroup := func(heading string, ents []Entity) {
		if len(ents) < 1 {
			return
		}
		sb.WriteString("  " + heading + ":\n")
		for _, e := range ents {
			sb.WriteString(fmt.Sprintf("   * %s\n", e))
		}
	}

	chars := loc.Characters.Values()
	chars = append(chars, loc.Players.Values()...)

	writeGroup("Artefacts you can see", loc.Artefacts.Values())
	writeGroup("Characters you can see", chars)
	writeGroup("Furniture you can see", loc.Furniture.Values())

	var dests []Entity
	for _, name := range loc.To {
		if dest := w.Location(name); dest != nil {
			dests = append(dests, dest.Entity)
		}
	}
	writeGroup("From here you can go to", dests)

	return sb.String()
}

// describeInventory renders the inventory command's output.
func describeInventory(inv *Entities) string {
	if inv.Empty() {
		return "Your inventory is empty\n"
	}

	var sb strings.Builder
	sb.WriteString("Inventory contains the following items: \n")
	for _, e := range inv.Values() {
		sb.WriteString(fmt.Sprintf(" * %s\n", e))
	}
	return sb.String()
}
