package stags

import (
	"context"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/server/serr"
)

// GetPlayer returns the current state of the named player.
//
// The returned error, if non-nil, will match serr.ErrNotFound.
func (svc Service) GetPlayer(ctx context.Context, name string) (game.Status, error) {
	st, ok := svc.Game.Player(name)
	if !ok {
		return game.Status{}, serr.ErrNotFound
	}
	return st, nil
}

// GetAllPlayers returns the current state of every player that has sent a
// command.
func (svc Service) GetAllPlayers(ctx context.Context) []game.Status {
	return svc.Game.Players()
}
