// Package game implements the STAG world model and the command interpreter
// that resolves player commands against it.
package game

// File entity.go includes symbols for the named things that populate the
// world.

import (
	"fmt"

	"github.com/dekarrin/stag/internal/util"
)

// Kind is the kind of an entity that can be present in a Location.
type Kind int

const (
	Artefact Kind = iota
	Furniture
	Character
)

func (k Kind) String() string {
	switch k {
	case Artefact:
		return "artefact"
	case Furniture:
		return "furniture"
	case Character:
		return "character"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entity is a named, described thing in the world. The name is its identity
// and must be unique across the entire world.
type Entity struct {
	Name        string
	Description string
}

func (e Entity) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Description)
}

// Entities is an ordered set of Entity keyed by name. Each Location holds one
// per Kind and each Player holds one as their inventory.
type Entities = util.OrderedSet[Entity]

// NewEntities creates an Entities set holding the given entities in order.
func NewEntities(ents ...Entity) *Entities {
	s := util.NewOrderedSet[Entity]()
	for _, e := range ents {
		s.Put(e.Name, e)
	}
	return s
}

// move relocates the named entity from one set to another. It returns false
// and does nothing if the entity is not in src.
func move(name string, src, dest *Entities) bool {
	e, ok := src.Remove(name)
	if !ok {
		return false
	}
	dest.Put(e.Name, e)
	return true
}
