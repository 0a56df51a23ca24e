package game

// File world.go includes symbols for holding the locations of the world and
// the paths between them.

import (
	"fmt"

	"github.com/dekarrin/stag/internal/util"
)

// StoreroomName is the name of the location that consumed entities are moved
// to. A world is not required to have one.
const StoreroomName = "storeroom"

// Location is a place in the world. It holds the entities currently present
// in it along with the directed paths that lead into and out of it.
type Location struct {
	Entity

	// Artefacts are the items present that can be picked up.
	Artefacts *Entities

	// Furniture are the fixtures present. Players cannot pick them up but
	// actions can still relocate them.
	Furniture *Entities

	// Characters are the non-player characters present.
	Characters *Entities

	// Players are the players currently here. They are kept apart from
	// Characters so that actions never relocate a player as if it were an
	// ordinary character.
	Players *Entities

	// To is the names of the locations that can be reached from here, in the
	// order the paths were added.
	To []string

	// From is the names of the locations that have a path leading here.
	From []string
}

// NewLocation creates an empty Location.
func NewLocation(name, description string) *Location {
	return &Location{
		Entity:     Entity{Name: name, Description: description},
		Artefacts:  NewEntities(),
		Furniture:  NewEntities(),
		Characters: NewEntities(),
		Players:    NewEntities(),
	}
}

// Group returns the set that holds entities of the given kind.
func (loc *Location) Group(k Kind) *Entities {
	switch k {
	case Artefact:
		return loc.Artefacts
	case Furniture:
		return loc.Furniture
	case Character:
		return loc.Characters
	default:
		panic(fmt.Sprintf("unknown kind: %v", k))
	}
}

// addTo records an outgoing path. It returns false if one already exists.
func (loc *Location) addTo(dest string) bool {
	for _, n := range loc.To {
		if n == dest {
			return false
		}
	}
	loc.To = append(loc.To, dest)
	return true
}

func (loc *Location) addFrom(src string) bool {
	for _, n := range loc.From {
		if n == src {
			return false
		}
	}
	loc.From = append(loc.From, src)
	return true
}

// World is the graph of every Location in the game. Locations keep the order
// they were added in; the first one added is the default start.
type World struct {
	locs *util.OrderedSet[*Location]
}

// NewWorld creates a World holding the given locations.
func NewWorld(locs ...*Location) (*World, error) {
	w := &World{locs: util.NewOrderedSet[*Location]()}
	for _, loc := range locs {
		if err := w.AddLocation(loc); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// AddLocation adds a Location to the world. It is an error to add two
// locations with the same name.
func (w *World) AddLocation(loc *Location) error {
	if loc == nil {
		return fmt.Errorf("nil location")
	}
	if w.locs.Has(loc.Name) {
		return fmt.Errorf("duplicate location %q", loc.Name)
	}
	w.locs.Put(loc.Name, loc)
	return nil
}

// Location returns the Location with the given name, or nil if there is none.
func (w *World) Location(name string) *Location {
	loc, _ := w.locs.Get(name)
	return loc
}

// HasLocation returns whether a Location with the given name exists.
func (w *World) HasLocation(name string) bool {
	return w.locs.Has(name)
}

// Locations returns every Location in the order they were added.
func (w *World) Locations() []*Location {
	return w.locs.Values()
}

// LocationNames returns the name of every Location in the order they were
// added.
func (w *World) LocationNames() []string {
	return w.locs.Keys()
}

// Paths returns the names of the locations reachable from the named one. It
// returns nil if there is no such location.
func (w *World) Paths(from string) []string {
	loc := w.Location(from)
	if loc == nil {
		return nil
	}
	paths := make([]string, len(loc.To))
	copy(paths, loc.To)
	return paths
}

// AddPath adds a directed path between two locations, recording it at both
// ends. Adding a path that already exists has no effect.
func (w *World) AddPath(from, to string) error {
	src := w.Location(from)
	if src == nil {
		return fmt.Errorf("no location %q", from)
	}
	dest := w.Location(to)
	if dest == nil {
		return fmt.Errorf("no location %q", to)
	}

	src.addTo(to)
	dest.addFrom(from)
	return nil
}

// Find searches every location for an entity of one of the given kinds.
// Locations are searched in the order they were added and, within a location,
// kinds are checked in the order given. The location the entity was found in
// and its kind are returned; loc is nil if the entity was not found.
func (w *World) Find(name string, kinds ...Kind) (loc *Location, k Kind) {
	for _, l := range w.locs.Values() {
		for _, k := range kinds {
			if l.Group(k).Has(name) {
				return l, k
			}
		}
	}
	return nil, 0
}

// Relocate moves the named entity of kind k from one location to the other.
// It returns false and changes nothing if the entity is not present in src.
func (w *World) Relocate(name string, k Kind, src, dest *Location) bool {
	return move(name, src.Group(k), dest.Group(k))
}
