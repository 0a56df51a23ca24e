package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/dekarrin/stag/server/dao"
	"github.com/dekarrin/stag/server/dao/inmem"
	"github.com/dekarrin/stag/server/dao/redis"
	"github.com/dekarrin/stag/server/dao/sqlite"
)

// DBType is the type of a Database connection.
type DBType string

func (dbt DBType) String() string {
	return string(dbt)
}

const (
	DatabaseNone     DBType = "none"
	DatabaseSQLite   DBType = "sqlite"
	DatabaseInMemory DBType = "inmem"
	DatabaseRedis    DBType = "redis"
)

const (
	DefaultWorldFile     = "world.stag"
	DefaultListenAddress = "localhost:8888"
)

// ParseDBType parses a string found in a connection string into a DBType.
func ParseDBType(s string) (DBType, error) {
	sLower := strings.ToLower(s)

	switch sLower {
	case DatabaseSQLite.String():
		return DatabaseSQLite, nil
	case DatabaseInMemory.String():
		return DatabaseInMemory, nil
	case DatabaseRedis.String():
		return DatabaseRedis, nil
	default:
		return DatabaseNone, fmt.Errorf("DB type not one of 'sqlite', 'redis', or 'inmem': %q", s)
	}
}

// Database contains configuration settings for connecting to the command
// journal.
type Database struct {
	// Type is the type of database the config refers to. It also determines
	// which of its other fields are valid.
	Type DBType

	// DataDir is the path on disk to a directory to use to store data in. This
	// is only applicable for SQLite.
	DataDir string

	// Addr is the host:port of the server to connect to. This is only
	// applicable for Redis.
	Addr string
}

// Connect performs all logic needed to connect to the configured DB and
// initialize the store for use.
func (db Database) Connect(ctx context.Context) (dao.Store, error) {
	switch db.Type {
	case DatabaseInMemory:
		return inmem.NewDatastore(), nil
	case DatabaseSQLite:
		err := os.MkdirAll(db.DataDir, 0770)
		if err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}

		store, err := sqlite.NewDatastore(db.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite: %w", err)
		}

		return store, nil
	case DatabaseRedis:
		store, err := redis.NewDatastore(ctx, db.Addr)
		if err != nil {
			return nil, fmt.Errorf("initialize redis: %w", err)
		}

		return store, nil
	case DatabaseNone:
		return nil, fmt.Errorf("cannot connect to 'none' DB")
	default:
		return nil, fmt.Errorf("unknown database type: %q", db.Type.String())
	}
}

// Validate returns an error if the Database does not have the correct fields
// set. Its type will be checked to ensure that it is a valid type to use and
// any fields necessary for connecting to that type of DB are also checked.
func (db Database) Validate() error {
	switch db.Type {
	case DatabaseInMemory:
		// nothing else to check
		return nil
	case DatabaseSQLite:
		if db.DataDir == "" {
			return fmt.Errorf("DataDir not set to path")
		}
		return nil
	case DatabaseRedis:
		if _, _, err := net.SplitHostPort(db.Addr); err != nil {
			return fmt.Errorf("Addr: %w", err)
		}
		return nil
	case DatabaseNone:
		return fmt.Errorf("'none' DB is not valid")
	default:
		return fmt.Errorf("unknown database type: %q", db.Type.String())
	}
}

// ParseDBConnString parses a database connection string of the form
// "engine:params" (or just "engine" if no other params are required) into a
// valid Database config object. For example, "sqlite:/data" would give the DB
// type of DatabaseSQLite that stores persistence in files located in the given
// dir, "redis:localhost:6379" would give DatabaseRedis connecting to that
// address, and "inmem" would give the DB type of DatabaseInMemory.
func ParseDBConnString(s string) (Database, error) {
	var paramStr string
	dbParts := strings.SplitN(s, ":", 2)

	if len(dbParts) == 2 {
		paramStr = strings.TrimSpace(dbParts[1])
	}

	// parse the first section into a type, from there we can determine if
	// further params are required.
	dbEng, err := ParseDBType(strings.TrimSpace(dbParts[0]))
	if err != nil {
		return Database{}, fmt.Errorf("unsupported DB engine: %w", err)
	}

	switch dbEng {
	case DatabaseInMemory:
		// there cannot be any other options
		if paramStr != "" {
			return Database{}, fmt.Errorf("unsupported param(s) for in-memory DB engine: %s", paramStr)
		}

		return Database{Type: DatabaseInMemory}, nil
	case DatabaseSQLite:
		// there must be options
		if paramStr == "" {
			return Database{}, fmt.Errorf("sqlite DB engine requires path to data directory after ':'")
		}

		// the only option is the DB path, as long as the param str isn't
		// literally blank, it can be used.
		return Database{Type: DatabaseSQLite, DataDir: paramStr}, nil
	case DatabaseRedis:
		if paramStr == "" {
			return Database{}, fmt.Errorf("redis DB engine requires HOST:PORT after ':'")
		}
		if _, _, err := net.SplitHostPort(paramStr); err != nil {
			return Database{}, fmt.Errorf("redis DB engine address: %w", err)
		}

		return Database{Type: DatabaseRedis, Addr: paramStr}, nil
	case DatabaseNone:
		// not allowed
		return Database{}, fmt.Errorf("cannot specify DB engine 'none' (perhaps you wanted 'inmem'?)")
	default:
		// unknown
		return Database{}, fmt.Errorf("unknown DB engine: %q", dbEng.String())
	}
}

// Config is a configuration for a server. It contains all parameters that can
// be used to configure the operation of a Server.
type Config struct {

	// World is the path to the world file to load. If not provided,
	// DefaultWorldFile is used.
	World string

	// ListenAddr is the address the line transport listens on. If not
	// provided, DefaultListenAddress is used.
	ListenAddr string

	// HTTPAddr is the address the HTTP API listens on. If empty, the HTTP API
	// is not started.
	HTTPAddr string

	// Database is the configuration to use for connecting to the command
	// journal. If not provided, it will be set to a configuration for using an
	// in-memory journal.
	DB Database

	// SharedUnlocks makes locations unlocked by one player available to all.
	SharedUnlocks bool
}

// FillDefaults returns a new Config identitical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	if newCFG.World == "" {
		newCFG.World = DefaultWorldFile
	}
	if newCFG.ListenAddr == "" {
		newCFG.ListenAddr = DefaultListenAddress
	}
	if newCFG.DB.Type == DatabaseNone || newCFG.DB.Type == "" {
		newCFG.DB = Database{Type: DatabaseInMemory}
	}

	return newCFG
}

// Validate returns an error if the Config has invalid field values set. Empty
// and unset values are considered invalid; if defaults are intended to be used,
// call Validate on the return value of FillDefaults.
func (cfg Config) Validate() error {
	if cfg.World == "" {
		return fmt.Errorf("world: not set")
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		return fmt.Errorf("listen address: %w", err)
	}
	if cfg.HTTPAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.HTTPAddr); err != nil {
			return fmt.Errorf("http address: %w", err)
		}
		if cfg.HTTPAddr == cfg.ListenAddr {
			return fmt.Errorf("http address: same as listen address")
		}
	}
	if err := cfg.DB.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}

	return nil
}
