// Package dao provides data access objects for the command journal of a STAG
// server.
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/dekarrin/rezi/v2"
	"github.com/google/uuid"
)

// Store holds all the repositories.
type Store interface {
	Commands() CommandRepository
	Close() error
}

// Transport names the way a command reached the server.
type Transport string

const (
	TransportLine Transport = "line"
	TransportHTTP Transport = "http"
)

func (t Transport) String() string {
	return string(t)
}

// CommandRepository is a write-once journal of resolved commands. Entries are
// returned in the order they were created.
type CommandRepository interface {

	// Create creates a new Command. The ID and Created fields are generated;
	// all other attributes are taken from the provided Command.
	Create(ctx context.Context, c Command) (Command, error)
	GetByID(ctx context.Context, id uuid.UUID) (Command, error)
	GetAll(ctx context.Context) ([]Command, error)

	// GetAllByUser returns every command sent by the given username. An
	// unknown username gives an empty slice, not an error.
	GetAllByUser(ctx context.Context, username string) ([]Command, error)
	Close() error
}

// Command is a single command line as it was resolved.
type Command struct {
	ID        uuid.UUID
	Username  string
	Input     string
	Output    string
	Transport Transport
	Player    PlayerSnapshot
	Created   time.Time
}

// Item is an artefact held by a player.
type Item struct {
	Name        string
	Description string
}

// PlayerSnapshot is the state of the acting player just after a command was
// resolved. Empty slices are stored as nil.
type PlayerSnapshot struct {
	Name      string
	Location  string
	Health    int
	Inventory []Item
	Unlocked  []string
}

// MarshalBinary converts ps into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (ps PlayerSnapshot) MarshalBinary() ([]byte, error) {
	var names, descs []string
	for _, it := range ps.Inventory {
		names = append(names, it.Name)
		descs = append(descs, it.Description)
	}

	fields := []interface{}{ps.Name, ps.Location, ps.Health, names, descs, ps.Unlocked}

	var data []byte
	for i := range fields {
		enc, err := rezi.Enc(fields[i])
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		data = append(data, enc...)
	}
	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into ps.
// All of ps's fields are replaced.
func (ps *PlayerSnapshot) UnmarshalBinary(data []byte) error {
	var decoded PlayerSnapshot
	var names, descs []string

	fields := []interface{}{&decoded.Name, &decoded.Location, &decoded.Health, &names, &descs, &decoded.Unlocked}
	for i := range fields {
		n, err := rezi.Dec(data, fields[i])
		if err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
		data = data[n:]
	}

	if len(names) != len(descs) {
		return fmt.Errorf("inventory has %d names but %d descriptions", len(names), len(descs))
	}
	for i := range names {
		decoded.Inventory = append(decoded.Inventory, Item{Name: names[i], Description: descs[i]})
	}
	if len(decoded.Unlocked) == 0 {
		decoded.Unlocked = nil
	}

	*ps = decoded
	return nil
}
