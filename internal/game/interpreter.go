package game

// File interpreter.go holds the Interpreter, which owns all world and player
// state and resolves commands against it.

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dekarrin/stag/internal/stagerrors"
)

var (
	errInvalidCommand = stagerrors.Command("Invalid command, please try again", "command syntax is invalid")
	errInvalidAction  = stagerrors.Command("Invalid action, please try again", "no trigger phrase matched")
)

// Options configures an Interpreter.
type Options struct {
	// Start is the name of the location new players are placed in and that
	// players return to on death. If empty, the first location in the world
	// is used.
	Start string

	// SharedUnlocks makes a location unlocked by any player available to
	// every player instead of only the one whose action unlocked it.
	SharedUnlocks bool
}

// Resolution is the outcome of resolving a single command line.
type Resolution struct {
	// Output is the narration to send back to the player.
	Output string

	// Player is the state of the acting player after the command. It is the
	// zero value if the line did not name a player.
	Player Status

	// Known is whether the line named a player.
	Known bool
}

// Interpreter resolves player commands against a world and a rule table. All
// of its methods are safe to call from multiple goroutines; commands are
// resolved one at a time.
type Interpreter struct {
	mtx sync.Mutex

	world   *World
	rules   *RuleTable
	players *registry
	start   string

	sharedUnlocks bool
	unlocked      []string
}

// New creates an Interpreter that takes ownership of the given world and rule
// table. The world must have at least one location.
func New(w *World, rules *RuleTable, opts Options) (*Interpreter, error) {
	if w == nil || len(w.LocationNames()) < 1 {
		return nil, fmt.Errorf("world has no locations")
	}
	if rules == nil {
		rules = NewRuleTable()
	}

	start := opts.Start
	if start == "" {
		start = w.LocationNames()[0]
	} else if !w.HasLocation(start) {
		return nil, fmt.Errorf("start location %q does not exist", start)
	}

	return &Interpreter{
		world:         w,
		rules:         rules,
		players:       newRegistry(),
		start:         start,
		sharedUnlocks: opts.SharedUnlocks,
	}, nil
}

// Start returns the name of the start location.
func (ip *Interpreter) Start() string {
	return ip.start
}

// HandleCommand resolves a command line of the form "<username>: <command>"
// and returns the narration for it.
func (ip *Interpreter) HandleCommand(line string) string {
	return ip.Resolve(line).Output
}

// Resolve resolves a command line of the form "<username>: <command>". The
// whole line is lower-cased first. A player is created for a username not
// seen before. Failures are reported in the returned narration; Resolve never
// fails.
func (ip *Interpreter) Resolve(line string) Resolution {
	res, _ := ip.ResolveThen(line, nil)
	return res
}

// ResolveThen is like Resolve but also calls then with the result before any
// other command is resolved. The error from then is returned as-is. then must
// not call methods of ip.
func (ip *Interpreter) ResolveThen(line string, then func(Resolution) error) (Resolution, error) {
	ip.mtx.Lock()
	defer ip.mtx.Unlock()

	res := ip.resolve(strings.ToLower(line))
	if then == nil {
		return res, nil
	}
	return res, then(res)
}

func (ip *Interpreter) resolve(line string) Resolution {
	username, text, ok := SplitCommandLine(line)
	if !ok {
		return Resolution{Output: stagerrors.Narration(errInvalidCommand)}
	}

	p := ip.resolvePlayer(username)

	var out string
	var err error
	if IsBasic(text) {
		out, err = ip.execBasic(p, text)
	} else {
		out, err = ip.execExtended(p, text)
	}
	if err != nil {
		out = stagerrors.Narration(err)
	}

	return Resolution{
		Output: out,
		Player: ip.status(p),
		Known:  true,
	}
}

// Player returns the current state of the named player. ok is false if no
// player with that name exists.
func (ip *Interpreter) Player(name string) (st Status, ok bool) {
	ip.mtx.Lock()
	defer ip.mtx.Unlock()

	p := ip.players.get(strings.ToLower(name))
	if p == nil {
		return Status{}, false
	}
	return ip.status(p), true
}

// Players returns the current state of every player in the order they first
// sent a command.
func (ip *Interpreter) Players() []Status {
	ip.mtx.Lock()
	defer ip.mtx.Unlock()

	all := ip.players.all()
	sts := make([]Status, len(all))
	for i := range all {
		sts[i] = ip.status(all[i])
	}
	return sts
}

func (ip *Interpreter) status(p *Player) Status {
	return Status{
		Name:      p.Name,
		Location:  p.Location,
		Health:    p.Health,
		Inventory: p.Inventory.Values(),
		Unlocked:  ip.unlockedFor(p),
	}
}

// resolvePlayer returns the named player, creating it at the start location
// if it does not yet exist.
func (ip *Interpreter) resolvePlayer(name string) *Player {
	if p := ip.players.get(name); p != nil {
		return p
	}

	p := newPlayer(name, ip.start)
	ip.world.Location(ip.start).Players.Put(p.Name, p.Entity)
	ip.players.add(p)
	return p
}

// location returns the location the player is in.
func (ip *Interpreter) location(p *Player) *Location {
	return ip.world.Location(p.Location)
}

// movePlayer moves the player to the named location.
func (ip *Interpreter) movePlayer(p *Player, dest string) {
	move(p.Name, ip.location(p).Players, ip.world.Location(dest).Players)
	p.Location = dest
}

func (ip *Interpreter) unlockedFor(p *Player) []string {
	src := p.Unlocked
	if ip.sharedUnlocks {
		src = ip.unlocked
	}
	unlocked := make([]string, len(src))
	copy(unlocked, src)
	return unlocked
}

func (ip *Interpreter) unlock(p *Player, dest string) {
	list := &p.Unlocked
	if ip.sharedUnlocks {
		list = &ip.unlocked
	}
	if !contains(*list, dest) {
		*list = append(*list, dest)
	}
}
