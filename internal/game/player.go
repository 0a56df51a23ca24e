package game

// File player.go holds symbols for players and the registry of them.

import (
	"github.com/dekarrin/stag/internal/util"
)

const (
	// MaxHealth is the health a player starts with and can never exceed.
	MaxHealth = 3

	// PlayerDescription is the description given to every player.
	PlayerDescription = "A player"

	// HealthName is the name used in action rules to refer to the acting
	// player's health.
	HealthName = "health"
)

// Player is a character controlled by a connected user. Players are created
// on the first command from a new username and are never destroyed.
type Player struct {
	Entity

	// Location is the name of the location the player is in.
	Location string

	// Health is always within 0 and MaxHealth.
	Health int

	// Inventory is the artefacts the player holds.
	Inventory *Entities

	// Unlocked is the names of locations the player may go to regardless of
	// whether a path leads there. It is not used when unlocks are shared.
	Unlocked []string
}

func newPlayer(name, location string) *Player {
	return &Player{
		Entity:    Entity{Name: name, Description: PlayerDescription},
		Location:  location,
		Health:    MaxHealth,
		Inventory: NewEntities(),
	}
}

// Status is a read-only copy of the state of a Player.
type Status struct {
	Name      string
	Location  string
	Health    int
	Inventory []Entity
	Unlocked  []string
}

// registry is every player known to the interpreter, in the order they were
// first seen.
type registry struct {
	players *util.OrderedSet[*Player]
}

func newRegistry() *registry {
	return &registry{players: util.NewOrderedSet[*Player]()}
}

func (r *registry) get(name string) *Player {
	p, _ := r.players.Get(name)
	return p
}

func (r *registry) add(p *Player) {
	r.players.Put(p.Name, p)
}

func (r *registry) all() []*Player {
	return r.players.Values()
}

// adjustHealth changes the player's health by delta, keeping it within 0 and
// MaxHealth. It returns the new health.
func (p *Player) adjustHealth(delta int) int {
	p.Health += delta
	if p.Health < 0 {
		p.Health = 0
	} else if p.Health > MaxHealth {
		p.Health = MaxHealth
	}
	return p.Health
}
