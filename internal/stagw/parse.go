package stagw

import (
	"fmt"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/internal/util"
)

func parseManifest(sw topLevelManifest) (Manifest, error) {
	manif := Manifest{
		Files: sw.Files,
	}

	return manif, nil
}

type worldSymbols struct {
	locations util.StringSet
	entities  util.StringSet
}

func (syms worldSymbols) known(name string) bool {
	return syms.locations.Has(name) || syms.entities.Has(name)
}

func parseWorldData(sw topLevelWorldData) (WorldData, error) {
	var data WorldData

	if len(sw.Locations) < 1 {
		return data, fmt.Errorf("world must define at least one location")
	}

	// get every symbol first so that references can be checked as they are
	// encountered.
	symbols, err := scanSymbols(sw)
	if err != nil {
		return data, err
	}

	start := normalizeName(sw.World.Start)
	if start == "" {
		start = normalizeName(sw.Locations[0].Name)
	} else if !symbols.locations.Has(start) {
		return data, fmt.Errorf("world: start: no location named %q exists", sw.World.Start)
	}

	locs := make([]*game.Location, len(sw.Locations))
	for i, l := range sw.Locations {
		locs[i] = l.toGameLocation()
	}
	w, err := game.NewWorld(locs...)
	if err != nil {
		// scanSymbols catches duplicates, so this should never happen
		return data, fmt.Errorf("build world: %w", err)
	}

	for idx, p := range sw.Paths {
		if err := validatePathDef(p, symbols); err != nil {
			return data, fmt.Errorf("path[%d]: %w", idx, err)
		}
		if err := w.AddPath(normalizeName(p.From), normalizeName(p.To)); err != nil {
			return data, fmt.Errorf("path[%d]: %w", idx, err)
		}
	}

	var acts []game.Action
	for idx, a := range sw.Actions {
		if err := validateActionDef(a, symbols); err != nil {
			return data, fmt.Errorf("action[%d]: %w", idx, err)
		}
		acts = append(acts, a.toGameActions()...)
	}

	data.World = w
	data.Rules = game.NewRuleTable(acts...)
	data.Start = start
	return data, nil
}

// scanSymbols builds up the set of every location and entity name and checks
// that each is valid and used only once across the entire world.
func scanSymbols(top topLevelWorldData) (worldSymbols, error) {
	syms := worldSymbols{
		locations: util.StringSet{},
		entities:  util.StringSet{},
	}

	for locIdx, l := range top.Locations {
		name := normalizeName(l.Name)
		if err := checkName(name, syms); err != nil {
			return syms, fmt.Errorf("location[%d] %q: %w", locIdx, l.Name, err)
		}
		syms.locations.Add(name)

		groups := []struct {
			key  string
			ents []entity
		}{
			{"artefact", l.Artefacts},
			{"furniture", l.Furniture},
			{"character", l.Characters},
		}
		for _, g := range groups {
			for idx, e := range g.ents {
				eName := normalizeName(e.Name)
				if err := checkName(eName, syms); err != nil {
					return syms, fmt.Errorf("location[%q]: %s[%d] %q: %w", l.Name, g.key, idx, e.Name, err)
				}
				syms.entities.Add(eName)
			}
		}
	}

	return syms, nil
}

func validatePathDef(p path, syms worldSymbols) error {
	from := normalizeName(p.From)
	to := normalizeName(p.To)

	if from == "" {
		return fmt.Errorf("from: must not be blank")
	}
	if to == "" {
		return fmt.Errorf("to: must not be blank")
	}
	if !syms.locations.Has(from) {
		return fmt.Errorf("from: no location named %q exists", p.From)
	}
	if !syms.locations.Has(to) {
		return fmt.Errorf("to: no location named %q exists", p.To)
	}
	return nil
}

func validateActionDef(a action, syms worldSymbols) error {
	if len(a.Triggers) < 1 {
		return fmt.Errorf("triggers: must have at least one trigger")
	}
	for idx, t := range normalizeNames(a.Triggers) {
		if t == "" {
			return fmt.Errorf("triggers[%d]: must not be blank", idx)
		}
		if verb, ok := game.FirstContained(t, game.BasicVerbs); ok {
			return fmt.Errorf("triggers[%d]: %q contains basic command %q and could never be matched", idx, t, verb)
		}
	}

	if len(a.Subjects) < 1 {
		return fmt.Errorf("subjects: must have at least one subject")
	}
	for idx, s := range normalizeNames(a.Subjects) {
		if !syms.entities.Has(s) {
			return fmt.Errorf("subjects[%d]: no entity named %q exists", idx, s)
		}
	}

	for idx, c := range normalizeNames(a.Consumed) {
		if c != game.HealthName && !syms.entities.Has(c) {
			return fmt.Errorf("consumed[%d]: no entity named %q exists", idx, c)
		}
	}

	for idx, p := range normalizeNames(a.Produced) {
		if p != game.HealthName && !syms.known(p) {
			return fmt.Errorf("produced[%d]: no entity or location named %q exists", idx, p)
		}
	}

	return nil
}

// checkName checks that name is usable and is not already used by another
// location or entity.
func checkName(name string, syms worldSymbols) error {
	if name == "" {
		return fmt.Errorf("name must not be blank")
	}
	if name == game.HealthName {
		return fmt.Errorf("name %q is reserved", name)
	}
	for _, verb := range game.BasicVerbs {
		if name == verb {
			return fmt.Errorf("name %q is a basic command", name)
		}
	}
	if syms.known(name) {
		return fmt.Errorf("name %q has already been used", name)
	}
	return nil
}
