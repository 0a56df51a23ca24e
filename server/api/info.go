package api

import (
	"net/http"

	"github.com/dekarrin/stag/internal/version"
	"github.com/dekarrin/stag/server/result"
)

// HTTPGetInfo returns a HandlerFunc that retrieves information on the API and
// server.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return Endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	var resp InfoModel
	resp.Version.Server = version.ServerCurrent
	resp.Version.STAG = version.Current

	return result.OK(resp, "got API info")
}
