// Package stag contains a CLI-driven engine for reading STAG commands from a
// console and showing the narration they produce until the user quits. The
// commands are resolved either by a game loaded in-process or by a remote STAG
// server.
package stag

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/stag/internal/client"
	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/internal/input"
	"github.com/dekarrin/stag/internal/stagw"
)

// DefaultWidth is the console width output is wrapped to if none is given.
const DefaultWidth = 80

const prompt = "> "

// Resolver turns a full command line ("<username>: <command>") into narration.
type Resolver interface {
	Resolve(ctx context.Context, line string) (string, error)
}

// LocalResolver resolves commands with an in-process interpreter.
type LocalResolver struct {
	Interpreter *game.Interpreter
}

// Resolve resolves the line. It never returns an error.
func (lr LocalResolver) Resolve(ctx context.Context, line string) (string, error) {
	return lr.Interpreter.HandleCommand(line), nil
}

// RemoteResolver resolves commands by sending them to a STAG server.
type RemoteResolver struct {
	Client client.Client
}

// Resolve sends the line to the server and returns its response.
func (rr RemoteResolver) Resolve(ctx context.Context, line string) (string, error) {
	return rr.Client.Send(ctx, line)
}

// Config holds the options for creating an Engine.
type Config struct {
	// WorldFile is the STAG world data or manifest file to load. It is not
	// used if Connect is set.
	WorldFile string

	// Connect is the address of a STAG server to send commands to instead of
	// running a local game.
	Connect string

	// Username is the name commands are sent as.
	Username string

	// Width is the console width to wrap output to. If zero, DefaultWidth is
	// used.
	Width int

	// ForceDirect disables readline even when attached to a terminal.
	ForceDirect bool

	// SharedUnlocks is passed to a local game; see game.Options.
	SharedUnlocks bool
}

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	res         Resolver
	user        string
	in          input.Reader
	out         *bufio.Writer
	width       int
	forceDirect bool
	remote      string
	running     bool
}

// New creates a new engine ready to operate on the given input and output
// streams. If nil is given for the input stream, stdin is used. If nil is
// given for the output stream, stdout is used.
func New(inputStream io.Reader, outputStream io.Writer, cfg Config) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	user := strings.TrimSpace(cfg.Username)
	if user == "" {
		return nil, fmt.Errorf("username must not be blank")
	}
	if strings.Contains(user, game.CommandSeparator) {
		return nil, fmt.Errorf("username must not contain %q", game.CommandSeparator)
	}

	var res Resolver
	if cfg.Connect != "" {
		res = RemoteResolver{Client: client.Client{Addr: cfg.Connect}}
	} else {
		worldData, err := stagw.LoadResourceBundle(cfg.WorldFile)
		if err != nil {
			return nil, err
		}
		ip, err := game.New(worldData.World, worldData.Rules, game.Options{
			Start:         worldData.Start,
			SharedUnlocks: cfg.SharedUnlocks,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing game engine: %w", err)
		}
		res = LocalResolver{Interpreter: ip}
	}

	return NewWithResolver(inputStream, outputStream, res, cfg)
}

// NewWithResolver creates an engine that sends commands to the given
// Resolver. The WorldFile and Connect fields of cfg are ignored.
func NewWithResolver(inputStream io.Reader, outputStream io.Writer, res Resolver, cfg Config) (*Engine, error) {
	width := cfg.Width
	if width < 1 {
		width = DefaultWidth
	}

	eng := &Engine{
		res:         res,
		user:        strings.TrimSpace(cfg.Username),
		out:         bufio.NewWriter(outputStream),
		width:       width,
		forceDirect: cfg.ForceDirect,
		remote:      cfg.Connect,
	}

	useReadline := !cfg.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		icr, err := input.NewInteractiveReader(prompt)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		eng.in = icr
	} else {
		eng.in = input.NewDirectReader(inputStream, nil)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit reads commands from the input stream and resolves them until
// "quit" or "bye" is entered, input ends, or ctx is canceled.
func (eng *Engine) RunUntilQuit(ctx context.Context) error {
	introMsg := "Welcome to STAG\n"
	if eng.remote != "" {
		introMsg += "(connected to " + eng.remote + ")\n"
	}
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "===============\n\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	if err := eng.resolve(ctx, "look"); err != nil {
		return err
	}

	for eng.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := eng.in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		// quitting is handled by the shell; the game never sees it
		switch strings.ToLower(cmd) {
		case "quit", "bye":
			eng.running = false
			continue
		}

		if err := eng.resolve(ctx, cmd); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

func (eng *Engine) resolve(ctx context.Context, cmd string) error {
	out, err := eng.res.Resolve(ctx, eng.user+game.CommandSeparator+cmd)
	if err != nil {
		return fmt.Errorf("resolve command: %w", err)
	}
	return eng.write(eng.wrap(out))
}

// wrap wraps each line of msg that is wider than the console on its own so
// that the indentation of listings is kept. The result always ends in a
// newline.
func (eng *Engine) wrap(msg string) string {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	for i := range lines {
		if len(lines[i]) > eng.width {
			lines[i] = rosed.Edit(lines[i]).Wrap(eng.width).String()
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
