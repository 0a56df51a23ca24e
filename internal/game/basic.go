package game

// File basic.go holds the built-in commands.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/stag/internal/stagerrors"
)

var (
	errNoArtefact        = stagerrors.Command("Can't find the artefact, please try again", "artefact not in location")
	errNoInventoryItem   = stagerrors.Command("Can't find the artefact in your inventory, please try again", "artefact not in inventory")
	errLocationLocked    = stagerrors.Command("The target location is locked, please unlock it first", "no path or unlock to known location")
	errNoSuchDestination = stagerrors.Command("Can't find a path to the target location, please try again", "no known location named")
)

// execBasic runs a basic command. The verb is chosen by containment, checked
// in a fixed order, once the command's syntax has been checked.
func (ip *Interpreter) execBasic(p *Player, text string) (string, error) {
	if !validBasicSyntax(text) {
		return "", errInvalidCommand
	}

	switch {
	case strings.Contains(text, "health"):
		return fmt.Sprintf("You have %d health points", p.Health), nil
	case ContainsAny(text, "inventory", "inv"):
		return describeInventory(p.Inventory), nil
	case ContainsAny(text, "get", "take"):
		return ip.get(p, text)
	case strings.Contains(text, "drop"):
		return ip.drop(p, text)
	case strings.Contains(text, "goto"):
		return ip.gotoLocation(p, text)
	default:
		return ip.world.Describe(ip.location(p)), nil
	}
}

func (ip *Interpreter) get(p *Player, text string) (string, error) {
	loc := ip.location(p)

	name, ok := FirstContained(text, loc.Artefacts.Keys())
	if !ok {
		return "", errNoArtefact
	}

	move(name, loc.Artefacts, p.Inventory)
	return fmt.Sprintf("%s is added to the inventory\n", name), nil
}

func (ip *Interpreter) drop(p *Player, text string) (string, error) {
	loc := ip.location(p)

	name, ok := FirstContained(text, p.Inventory.Keys())
	if !ok {
		return "", errNoInventoryItem
	}

	move(name, p.Inventory, loc.Artefacts)
	return fmt.Sprintf("%s is dropped at %s\n", name, loc.Name), nil
}

// gotoLocation moves the player along a path or to an unlocked location. An
// unlocked location named in the text takes precedence over a path.
func (ip *Interpreter) gotoLocation(p *Player, text string) (string, error) {
	dest, found := FirstContained(text, ip.location(p).To)
	if unlocked, ok := FirstContained(text, ip.unlockedFor(p)); ok {
		dest, found = unlocked, true
	}

	if !found {
		if ContainsAny(text, ip.world.LocationNames()...) {
			return "", errLocationLocked
		}
		return "", errNoSuchDestination
	}

	ip.movePlayer(p, dest)
	return fmt.Sprintf("You have moved to %s\n", dest), nil
}
