// Package stags has services for interacting with the STAG server backend
// decoupled from the transports that access it.
package stags

import (
	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/server/dao"
)

// Service is a service for resolving commands against a running game and
// journaling them. It performs the actions requested and makes calls to the
// command journal to record what happened.
//
// The zero-value of Service is not ready to be used; assign a valid DAO store
// to DB and an interpreter to Game before attempting to use it.
type Service struct {

	// DB is the command journal of the service.
	DB dao.Store

	// Game resolves every command.
	Game *game.Interpreter
}

func snapshot(st game.Status) dao.PlayerSnapshot {
	ps := dao.PlayerSnapshot{
		Name:     st.Name,
		Location: st.Location,
		Health:   st.Health,
	}
	for _, ent := range st.Inventory {
		ps.Inventory = append(ps.Inventory, dao.Item{Name: ent.Name, Description: ent.Description})
	}
	if len(st.Unlocked) > 0 {
		ps.Unlocked = make([]string, len(st.Unlocked))
		copy(ps.Unlocked, st.Unlocked)
	}
	return ps
}
