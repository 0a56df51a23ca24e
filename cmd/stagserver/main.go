/*
Stagserver starts a STAG server and begins listening for player commands.

Usage:

	stagserver [flags]

Once started, the STAG server loads a single world and resolves commands for
every player against it. Each connection to the listen address carries one
line of the form "USERNAME: COMMAND"; the server answers with the narration
followed by a line holding only the byte 0x04, then closes the connection.
Players are created the first time their username is seen.

If an HTTP address is given, the same game is also served over a REST API
under /api/v1, and every resolved command can be read back from the command
journal there.

The flags are:

	-v, --version
		Give the current version of the STAG server and then exit.

	-w, --world FILE
		Load the given STAG world data or manifest file. If not given, will
		default to the value of environment variable STAG_WORLD, and if that
		is not given, will default to "world.stag".

	-l, --listen LISTEN_ADDRESS
		Listen for command lines on the given address. Must be in
		BIND_ADDRESS:PORT or :PORT format. If not given, will default to the
		value of environment variable STAG_LISTEN_ADDRESS, and if that is not
		given, will default to localhost:8888.

	--http HTTP_ADDRESS
		Serve the REST API on the given address, in the same format as
		--listen. If not given, will default to the value of environment
		variable STAG_HTTP_ADDRESS. If neither is set, the REST API is not
		started.

	--db DRIVER[:PARAMS]
		Use the given command journal connection string. DRIVER must be one of
		the following: inmem, sqlite, redis. inmem has no further params.
		sqlite needs the path to the data directory such as
		sqlite:path/to/db_dir. redis needs the address of the Redis server
		such as redis:localhost:6379. If not given, will default to the value
		of environment variable STAG_DATABASE. If no DB driver is specified or
		an empty one is given, an in-memory journal is automatically selected.

	--shared-unlocks
		Make a location unlocked by any player available to every player. If
		not given, will default to true if environment variable
		STAG_SHARED_UNLOCKS is set to a true value.
*/
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dekarrin/stag/internal/version"
	"github.com/dekarrin/stag/server"
	"github.com/spf13/pflag"
)

const (
	EnvWorld         = "STAG_WORLD"
	EnvListen        = "STAG_LISTEN_ADDRESS"
	EnvHTTP          = "STAG_HTTP_ADDRESS"
	EnvDB            = "STAG_DATABASE"
	EnvSharedUnlocks = "STAG_SHARED_UNLOCKS"
)

var (
	flagVersion       = pflag.BoolP("version", "v", false, "Give the current version of STAG server and then exit.")
	flagWorld         = pflag.StringP("world", "w", "", "Load the given STAG world data or manifest file.")
	flagListen        = pflag.StringP("listen", "l", "", "Listen for command lines on the given address.")
	flagHTTP          = pflag.String("http", "", "Serve the REST API on the given address.")
	flagDB            = pflag.String("db", "", "Use the given command journal connection string.")
	flagSharedUnlocks = pflag.Bool("shared-unlocks", false, "Share unlocked locations between all players.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (STAG v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	// assemble a server config
	cfg := server.Config{
		World:      stringSetting("world", *flagWorld, EnvWorld),
		ListenAddr: stringSetting("listen", *flagListen, EnvListen),
		HTTPAddr:   stringSetting("http", *flagHTTP, EnvHTTP),
	}

	if dbConnStr := stringSetting("db", *flagDB, EnvDB); dbConnStr != "" {
		db, err := server.ParseDBConnString(dbConnStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Not a valid DB string: %s\nDo -h for help.\n", err)
			os.Exit(1)
		}
		cfg.DB = db
	}

	cfg.SharedUnlocks = *flagSharedUnlocks
	if !pflag.Lookup("shared-unlocks").Changed {
		if envVal := os.Getenv(EnvSharedUnlocks); envVal != "" {
			shared, err := strconv.ParseBool(envVal)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s is not a valid boolean: %q\n", EnvSharedUnlocks, envVal)
				os.Exit(1)
			}
			cfg.SharedUnlocks = shared
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// configuration complete, initialize the server
	srv, err := server.New(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	// okay, now actually launch it
	log.Printf("INFO  Starting STAG server %s...", version.ServerCurrent)
	if err := srv.ServeForever(ctx); err != nil {
		log.Fatalf("FATAL %v", err)
	}
}

// stringSetting gives the value of the named flag if it was set on the command
// line, otherwise the value of the environment variable.
func stringSetting(flagName, flagVal, envVar string) string {
	if pflag.Lookup(flagName).Changed {
		return flagVal
	}
	return os.Getenv(envVar)
}
