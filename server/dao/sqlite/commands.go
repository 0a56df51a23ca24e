package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/stag/server/dao"
	"github.com/google/uuid"
)

// NewCommandsDBConn opens a journal that is the only table in the given
// database file.
func NewCommandsDBConn(file string) (*CommandsDB, error) {
	repo := &CommandsDB{}

	var err error
	repo.db, err = sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	return repo, repo.init()
}

type CommandsDB struct {
	db *sql.DB
}

func (repo *CommandsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		transport TEXT NOT NULL,
		player TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	_, err = repo.db.Exec(`CREATE INDEX IF NOT EXISTS commands_username ON commands (username);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *CommandsDB) Create(ctx context.Context, c dao.Command) (dao.Command, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not generate ID: %w", err)
	}

	player, err := convertToDB_PlayerSnapshot(c.Player)
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not encode player: %w", err)
	}

	stmt, err := repo.db.Prepare(`INSERT INTO commands (id, username, input, output, transport, player, created) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return dao.Command{}, wrapDBError(err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(
		ctx,
		convertToDB_UUID(newUUID),
		c.Username,
		c.Input,
		c.Output,
		c.Transport.String(),
		player,
		convertToDB_Time(time.Now()),
	)
	if err != nil {
		return dao.Command{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *CommandsDB) GetAll(ctx context.Context) ([]dao.Command, error) {
	rows, err := repo.db.QueryContext(ctx, `
		SELECT id, username, input, output, transport, player, created
		FROM commands
		ORDER BY seq;`,
	)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repo *CommandsDB) GetAllByUser(ctx context.Context, username string) ([]dao.Command, error) {
	rows, err := repo.db.QueryContext(ctx, `
		SELECT id, username, input, output, transport, player, created
		FROM commands
		WHERE username = ?
		ORDER BY seq;`,
		username,
	)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repo *CommandsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Command, error) {
	row := repo.db.QueryRowContext(ctx, `
		SELECT id, username, input, output, transport, player, created
		FROM commands
		WHERE id = ?;`,
		convertToDB_UUID(id),
	)

	return scanCommand(row)
}

func (repo *CommandsDB) Close() error {
	return repo.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAll(rows *sql.Rows) ([]dao.Command, error) {
	all := []dao.Command{}

	for rows.Next() {
		c, err := scanCommand(rows)
		if err != nil {
			return all, err
		}
		all = append(all, c)
	}

	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func scanCommand(s scanner) (dao.Command, error) {
	var c dao.Command
	var id string
	var transport string
	var player string
	var created int64

	err := s.Scan(
		&id,
		&c.Username,
		&c.Input,
		&c.Output,
		&transport,
		&player,
		&created,
	)
	if err != nil {
		return c, wrapDBError(err)
	}

	c.Transport = dao.Transport(transport)

	err = convertFromDB_UUID(id, &c.ID)
	if err != nil {
		return c, fmt.Errorf("stored ID %q is invalid: %w", id, err)
	}
	err = convertFromDB_Time(created, &c.Created)
	if err != nil {
		return c, fmt.Errorf("stored created time %d is invalid: %w", created, err)
	}
	err = convertFromDB_PlayerSnapshot(player, &c.Player)
	if err != nil {
		return c, fmt.Errorf("stored player for %s: %v: %w", id, err, dao.ErrDecodingFailure)
	}

	return c, nil
}
