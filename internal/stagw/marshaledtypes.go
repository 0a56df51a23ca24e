package stagw

import (
	"strings"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/internal/util"
)

type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorldData is the top-level structure containing all keys in a
// complete STAG 'DATA' type file.
type topLevelWorldData struct {
	Format    string     `toml:"format"`
	Type      string     `toml:"type"`
	World     world      `toml:"world"`
	Locations []location `toml:"location"`
	Paths     []path     `toml:"path"`
	Actions   []action   `toml:"action"`
}

type world struct {
	Start string `toml:"start"`
}

type entity struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

func (te entity) toGameEntity() game.Entity {
	return game.Entity{
		Name:        normalizeName(te.Name),
		Description: te.Description,
	}
}

type location struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Artefacts   []entity `toml:"artefact"`
	Furniture   []entity `toml:"furniture"`
	Characters  []entity `toml:"character"`
}

func (tl location) toGameLocation() *game.Location {
	loc := game.NewLocation(normalizeName(tl.Name), tl.Description)

	for _, e := range tl.Artefacts {
		ge := e.toGameEntity()
		loc.Artefacts.Put(ge.Name, ge)
	}
	for _, e := range tl.Furniture {
		ge := e.toGameEntity()
		loc.Furniture.Put(ge.Name, ge)
	}
	for _, e := range tl.Characters {
		ge := e.toGameEntity()
		loc.Characters.Put(ge.Name, ge)
	}

	return loc
}

type path struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

type action struct {
	Triggers  []string `toml:"triggers"`
	Subjects  []string `toml:"subjects"`
	Consumed  []string `toml:"consumed"`
	Produced  []string `toml:"produced"`
	Narration string   `toml:"narration"`
}

// toGameActions gives one game.Action per trigger phrase of the action.
func (ta action) toGameActions() []game.Action {
	subjects := normalizeNames(ta.Subjects)
	consumed := normalizeNames(ta.Consumed)
	produced := normalizeNames(ta.Produced)

	var acts []game.Action
	for _, trig := range util.Dedupe(normalizeNames(ta.Triggers)) {
		acts = append(acts, game.Action{
			Trigger:   trig,
			Subjects:  subjects,
			Consumed:  consumed,
			Produced:  produced,
			Narration: ta.Narration,
		})
	}
	return acts
}

// normalizeName gives the form a name is matched in: lower-case with all
// whitespace removed.
func normalizeName(s string) string {
	return strings.ToLower(util.StripSpace(s))
}

func normalizeNames(sl []string) []string {
	out := make([]string, len(sl))
	for i := range sl {
		out[i] = normalizeName(sl[i])
	}
	return out
}
