package game

// File extended.go holds the rule-driven commands.

import (
	"github.com/dekarrin/stag/internal/stagerrors"
)

const deathNarration = "You have died and lost all the items in your inventory\n"

// execExtended runs the actions of the first trigger phrase the text
// contains. Each candidate action under the trigger is tried in turn and the
// first one that fires ends the search. If none fires, the failure of the
// last candidate is reported.
func (ip *Interpreter) execExtended(p *Player, text string) (string, error) {
	trigger, ok := FirstContained(text, ip.rules.Triggers())
	if !ok {
		return "", errInvalidAction
	}

	pool := ip.visible(p)

	var lastErr error
	for _, a := range ip.rules.Lookup(trigger) {
		if !validActionSyntax(a, text) {
			lastErr = errInvalidCommand
			continue
		}
		if !pool.hasAll(a.Subjects) {
			lastErr = stagerrors.Commandf("Please collect all the required entities to trigger the command: %s ", trigger)
			continue
		}
		return ip.fire(p, a), nil
	}
	return "", lastErr
}

type namePool map[string]bool

func (np namePool) hasAll(names []string) bool {
	for _, n := range names {
		if !np[n] {
			return false
		}
	}
	return true
}

// visible returns the names of everything the player can use: their
// inventory and whatever is present at their location.
func (ip *Interpreter) visible(p *Player) namePool {
	loc := ip.location(p)

	pool := namePool{}
	for _, set := range []*Entities{p.Inventory, loc.Artefacts, loc.Furniture, loc.Characters, loc.Players} {
		for _, n := range set.Keys() {
			pool[n] = true
		}
	}
	return pool
}

// fire applies the consumption and production of an action and returns its
// narration. If the player dies while paying a health cost, nothing further
// is applied and the death narration is returned instead.
func (ip *Interpreter) fire(p *Player, a Action) string {
	for _, name := range a.Consumed {
		if name == HealthName {
			if p.adjustHealth(-1) == 0 {
				ip.kill(p)
				return deathNarration
			}
			continue
		}
		ip.consume(p, name)
	}

	for _, name := range a.Produced {
		ip.produce(p, name)
	}

	return a.Narration + "\n"
}

// kill drops the player's inventory where they stand, restores their health,
// and sends them back to the start location.
func (ip *Interpreter) kill(p *Player) {
	loc := ip.location(p)
	for _, name := range p.Inventory.Keys() {
		move(name, p.Inventory, loc.Artefacts)
	}
	p.Health = MaxHealth
	ip.movePlayer(p, ip.start)
}

// consume moves the named entity into the storeroom. The player's location is
// searched for it by artefacts, then characters, then furniture, and only
// then is the inventory searched. If the world has no storeroom the entity is
// left where it is.
func (ip *Interpreter) consume(p *Player, name string) {
	store := ip.world.Location(StoreroomName)
	if store == nil {
		return
	}

	loc := ip.location(p)
	for _, k := range []Kind{Artefact, Character, Furniture} {
		if ip.world.Relocate(name, k, loc, store) {
			return
		}
	}
	move(name, p.Inventory, store.Artefacts)
}

// produce brings the named thing to the player. Health is restored by one
// point; a location is joined to the player's location by paths both ways and
// is unlocked for the player; any other entity is found anywhere in the world, by
// artefacts, then furniture, then characters, and moved to the player's
// location.
func (ip *Interpreter) produce(p *Player, name string) {
	if name == HealthName {
		p.adjustHealth(1)
		return
	}

	loc := ip.location(p)

	if ip.world.HasLocation(name) {
		// both ends exist so neither can fail
		_ = ip.world.AddPath(loc.Name, name)
		_ = ip.world.AddPath(name, loc.Name)
		ip.unlock(p, name)
		return
	}

	src, k := ip.world.Find(name, Artefact, Furniture, Character)
	if src == nil {
		return
	}
	ip.world.Relocate(name, k, src, loc)
}
