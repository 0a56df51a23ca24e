package api

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/dekarrin/stag/server/dao"
	"github.com/dekarrin/stag/server/result"
	"github.com/dekarrin/stag/server/serr"
)

// HTTPCreateCommand returns a HandlerFunc that resolves a command on behalf of
// a player and journals it.
func (api API) HTTPCreateCommand() http.HandlerFunc {
	return Endpoint(api.epCreateCommand)
}

// POST /commands: resolve a command.
func (api API) epCreateCommand(req *http.Request) result.Result {
	var comReq CommandRequest
	err := parseJSON(req, &comReq)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}
	if comReq.Username == "" {
		return result.BadRequest("username: property is empty or missing from request", "empty username")
	}
	if comReq.Command == "" {
		return result.BadRequest("command: property is empty or missing from request", "empty command")
	}

	c, err := api.Backend.SendCommand(req.Context(), comReq.Username, comReq.Command, dao.TransportHTTP)
	if err != nil {
		if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError("could not execute command: " + err.Error())
	}

	return result.Created(commandModel(c), "user '%s' sent command %q", c.Username, comReq.Command)
}

// HTTPGetAllCommands returns a HandlerFunc that retrieves the command journal.
// If the "username" query parameter is given, only that player's commands are
// returned.
func (api API) HTTPGetAllCommands() http.HandlerFunc {
	return Endpoint(api.epGetAllCommands)
}

// GET /commands: get the command journal.
func (api API) epGetAllCommands(req *http.Request) result.Result {
	username := req.URL.Query().Get("username")

	coms, err := api.Backend.GetAllCommands(req.Context(), username)
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]CommandModel, len(coms))
	for i := range coms {
		resp[i] = commandModel(coms[i])
	}

	if username != "" {
		return result.OK(resp, "got %d commands of user '%s'", len(resp), username)
	}
	return result.OK(resp, "got all %d commands", len(resp))
}

// HTTPGetCommand returns a HandlerFunc that retrieves a single journal entry.
func (api API) HTTPGetCommand() http.HandlerFunc {
	return Endpoint(api.epGetCommand)
}

// GET /commands/{id}: get a journal entry.
func (api API) epGetCommand(req *http.Request) result.Result {
	id, err := getURLParam(req, "id", func(s string) (string, error) { return s, nil })
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	c, err := api.Backend.GetCommand(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound("command %s does not exist", id)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError("could not get command: " + err.Error())
	}

	return result.OK(commandModel(c), "got command %s", id)
}

func commandModel(c dao.Command) CommandModel {
	m := CommandModel{
		URI:       PathPrefix + "/commands/" + c.ID.String(),
		ID:        c.ID.String(),
		Username:  c.Username,
		Input:     c.Input,
		Output:    c.Output,
		Transport: c.Transport.String(),
		Created:   c.Created.Format(time.RFC3339),
		Player: PlayerModel{
			Name:      c.Player.Name,
			Location:  c.Player.Location,
			Health:    c.Player.Health,
			Inventory: []ItemModel{},
			Unlocked:  []string{},
		},
	}

	if c.Player.Name != "" {
		m.Player.URI = PathPrefix + "/players/" + url.PathEscape(c.Player.Name)
	}
	for _, it := range c.Player.Inventory {
		m.Player.Inventory = append(m.Player.Inventory, ItemModel{Name: it.Name, Description: it.Description})
	}
	m.Player.Unlocked = append(m.Player.Unlocked, c.Player.Unlocked...)

	return m
}
