package stags

import (
	"context"
	"errors"
	"strings"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/server/dao"
	"github.com/dekarrin/stag/server/serr"
	"github.com/google/uuid"
)

// ExecuteCommand resolves a full command line of the form
// "<username>: <command>" and journals the result. No other command is
// resolved until the entry is written, so the journal is in the order
// commands took effect. The returned Command always holds the narration, even
// when journaling fails.
//
// The returned error, if non-nil, will match serr.ErrDB.
func (svc Service) ExecuteCommand(ctx context.Context, line string, transport dao.Transport) (dao.Command, error) {
	var c, saved dao.Command
	_, err := svc.Game.ResolveThen(line, func(res game.Resolution) error {
		c = dao.Command{
			Username:  res.Player.Name,
			Input:     line,
			Output:    res.Output,
			Transport: transport,
			Player:    snapshot(res.Player),
		}

		var err error
		saved, err = svc.DB.Commands().Create(ctx, c)
		return err
	})
	if err != nil {
		return c, serr.WrapDB("could not journal command", err)
	}

	return saved, nil
}

// SendCommand resolves the given command on behalf of the named player and
// journals the result.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If the username or command
// cannot form a valid command line, it will match serr.ErrBadArgument. If the
// error occured due to an unexpected problem with the DB, it will match
// serr.ErrDB.
func (svc Service) SendCommand(ctx context.Context, username, command string, transport dao.Transport) (dao.Command, error) {
	if strings.TrimSpace(username) == "" {
		return dao.Command{}, serr.New("username cannot be blank", serr.ErrBadArgument)
	}
	if strings.Contains(username, game.CommandSeparator) {
		return dao.Command{}, serr.New("username cannot contain "+`"`+game.CommandSeparator+`"`, serr.ErrBadArgument)
	}
	if strings.TrimSpace(command) == "" {
		return dao.Command{}, serr.New("command cannot be blank", serr.ErrBadArgument)
	}

	return svc.ExecuteCommand(ctx, username+game.CommandSeparator+command, transport)
}

// GetCommand returns the journal entry with the given ID.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no command with that ID
// exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if the ID
// is not valid, it will match serr.ErrBadArgument.
func (svc Service) GetCommand(ctx context.Context, id string) (dao.Command, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Command{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	c, err := svc.DB.Commands().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Command{}, serr.ErrNotFound
		}
		return dao.Command{}, serr.WrapDB("could not get command", err)
	}

	return c, nil
}

// GetAllCommands returns every journal entry, oldest first. If username is
// not empty, only the commands sent by that player are returned.
func (svc Service) GetAllCommands(ctx context.Context, username string) ([]dao.Command, error) {
	var coms []dao.Command
	var err error

	if username != "" {
		coms, err = svc.DB.Commands().GetAllByUser(ctx, strings.ToLower(username))
	} else {
		coms, err = svc.DB.Commands().GetAll(ctx)
	}
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return coms, nil
}
