/*
Stag starts an interactive STAG session.

It either loads a world file and runs the game in-process, or connects to a
running STAG server and sends every command to it. Narration is printed to
stdout and commands are read from stdin until the game input ends or "quit" or
"bye" is entered.

Usage:

	stag [flags]

The flags are:

	-v, --version
		Give the current version of STAG and then exit.

	-w, --world FILE
		Use the provided STAG world data or manifest file. Defaults to the
		value of environment variable STAG_WORLD, and if that is not set, to
		the file "world.stag" in the current working directory. Ignored if
		--connect is given.

	-u, --user NAME
		Play as the given username. Defaults to the value of environment
		variable USER, and if that is not set, to "player".

	-c, --connect ADDRESS
		Send commands to the STAG server listening on ADDRESS instead of
		running a local game.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

	--width COLUMNS
		Wrap output to the given number of columns. Defaults to 80.

	--shared-unlocks
		In a local game, make locations unlocked by any player available to
		every player.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dekarrin/stag"
	"github.com/dekarrin/stag/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

const (
	EnvWorld = "STAG_WORLD"
	EnvUser  = "USER"
)

var (
	flagVersion       = pflag.BoolP("version", "v", false, "Give the current version of STAG and then exit.")
	flagWorld         = pflag.StringP("world", "w", "world.stag", "The STAG world data or manifest file that defines the world.")
	flagUser          = pflag.StringP("user", "u", "", "Play as the given username.")
	flagConnect       = pflag.StringP("connect", "c", "", "Send commands to the STAG server at the given address.")
	flagDirect        = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
	flagWidth         = pflag.Int("width", stag.DefaultWidth, "Wrap output to the given number of columns.")
	flagSharedUnlocks = pflag.Bool("shared-unlocks", false, "Share unlocked locations between all players of a local game.")
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	worldFile := *flagWorld
	if env := os.Getenv(EnvWorld); env != "" && !pflag.Lookup("world").Changed {
		worldFile = env
	}

	user := os.Getenv(EnvUser)
	if pflag.Lookup("user").Changed {
		user = *flagUser
	}
	if user == "" {
		user = "player"
	}

	cfg := stag.Config{
		WorldFile:     worldFile,
		Connect:       *flagConnect,
		Username:      user,
		Width:         *flagWidth,
		ForceDirect:   *flagDirect,
		SharedUnlocks: *flagSharedUnlocks,
	}

	gameEng, initErr := stag.New(os.Stdin, os.Stdout, cfg)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := gameEng.RunUntilQuit(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
