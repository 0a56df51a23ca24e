package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/server/result"
	"github.com/dekarrin/stag/server/serr"
)

// HTTPGetAllPlayers returns a HandlerFunc that retrieves every player that has
// sent a command.
func (api API) HTTPGetAllPlayers() http.HandlerFunc {
	return Endpoint(api.epGetAllPlayers)
}

func (api API) epGetAllPlayers(req *http.Request) result.Result {
	players := api.Backend.GetAllPlayers(req.Context())

	resp := make([]PlayerModel, len(players))
	for i := range players {
		resp[i] = playerModel(players[i])
	}

	return result.OK(resp, "got all %d players", len(resp))
}

// HTTPGetPlayer returns a HandlerFunc that retrieves a single player.
func (api API) HTTPGetPlayer() http.HandlerFunc {
	return Endpoint(api.epGetPlayer)
}

func (api API) epGetPlayer(req *http.Request) result.Result {
	name, err := getURLParam(req, "name", url.PathUnescape)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	st, err := api.Backend.GetPlayer(req.Context(), name)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound("player '%s' does not exist", name)
		}
		return result.InternalServerError("could not get player: " + err.Error())
	}

	return result.OK(playerModel(st), "got player '%s'", st.Name)
}

func playerModel(st game.Status) PlayerModel {
	m := PlayerModel{
		URI:       PathPrefix + "/players/" + url.PathEscape(st.Name),
		Name:      st.Name,
		Location:  st.Location,
		Health:    st.Health,
		Inventory: make([]ItemModel, len(st.Inventory)),
		Unlocked:  make([]string, len(st.Unlocked)),
	}

	for i := range st.Inventory {
		m.Inventory[i] = ItemModel{Name: st.Inventory[i].Name, Description: st.Inventory[i].Description}
	}
	copy(m.Unlocked, st.Unlocked)

	return m
}
