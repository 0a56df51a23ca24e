// Package result builds the responses written by STAG's HTTP API. Each
// endpoint returns a Result that holds the status, the body sent to the
// client, and an internal message that is only logged.
package result

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every error sent to an API client.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// logMsg formats the optional internal message given to the constructors
// below. The first element, if present, is a format string for the rest; with
// no elements def is used.
func logMsg(def string, internalMsg []interface{}) string {
	if len(internalMsg) < 1 {
		return def
	}
	return fmt.Sprintf(internalMsg[0].(string), internalMsg[1:]...)
}

// OK returns an HTTP-200 Result with respObj as its JSON body.
func OK(respObj interface{}, internalMsg ...interface{}) Result {
	return Response(http.StatusOK, respObj, "%s", logMsg("OK", internalMsg))
}

// Created returns an HTTP-201 Result with respObj as its JSON body. The API
// uses it for newly journaled commands.
func Created(respObj interface{}, internalMsg ...interface{}) Result {
	return Response(http.StatusCreated, respObj, "%s", logMsg("created", internalMsg))
}

// BadRequest returns an HTTP-400 Result. userMsg is sent to the client.
func BadRequest(userMsg string, internalMsg ...interface{}) Result {
	return Err(http.StatusBadRequest, userMsg, "%s", logMsg("bad request", internalMsg))
}

// MethodNotAllowed returns an HTTP-405 Result naming the method and path of
// req.
func MethodNotAllowed(req *http.Request, internalMsg ...interface{}) Result {
	userMsg := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return Err(http.StatusMethodNotAllowed, userMsg, "%s", logMsg("method not allowed", internalMsg))
}

// NotFound returns an HTTP-404 Result. Unknown routes, commands and players
// all get the same body.
func NotFound(internalMsg ...interface{}) Result {
	return Err(http.StatusNotFound, "The requested resource was not found", "%s", logMsg("not found", internalMsg))
}

// InternalServerError returns an HTTP-500 Result. Details only go to the log.
func InternalServerError(internalMsg ...interface{}) Result {
	return Err(http.StatusInternalServerError, "An internal server error occurred", "%s", logMsg("internal server error", internalMsg))
}

// Response returns a successful JSON Result. respObj must not be nil.
func Response(status int, respObj interface{}, internalMsg string, v ...interface{}) Result {
	return Result{
		IsJSON:      true,
		Status:      status,
		InternalMsg: fmt.Sprintf(internalMsg, v...),
		resp:        respObj,
	}
}

// Err returns a JSON error Result whose body is an ErrorResponse holding
// userMsg.
func Err(status int, userMsg, internalMsg string, v ...interface{}) Result {
	return Result{
		IsJSON:      true,
		IsErr:       true,
		Status:      status,
		InternalMsg: fmt.Sprintf(internalMsg, v...),
		resp:        ErrorResponse{Error: userMsg, Status: status},
	}
}

// TextErr is like Err but writes userMsg as plain text. It is used when JSON
// encoding itself may be what failed.
func TextErr(status int, userMsg, internalMsg string, v ...interface{}) Result {
	return Result{
		IsErr:       true,
		Status:      status,
		InternalMsg: fmt.Sprintf(internalMsg, v...),
		resp:        userMsg,
	}
}

// Redirection returns an HTTP-308 Result that sends the client to uri.
func Redirection(uri string) Result {
	return Result{
		Status:      http.StatusPermanentRedirect,
		InternalMsg: "redirect -> " + uri,
		redir:       uri,
	}
}

// Result is a complete response to an API request. The zero value is not
// valid; use one of the constructors.
type Result struct {
	Status      int
	IsErr       bool
	IsJSON      bool
	InternalMsg string

	resp  interface{}
	redir string
	hdrs  [][2]string

	// cached by PrepareMarshaledResponse
	respJSONBytes []byte
}

// WithHeader returns a copy of r that also sets the given header.
func (r Result) WithHeader(name, val string) Result {
	cp := r
	cp.respJSONBytes = nil
	cp.hdrs = make([][2]string, len(r.hdrs), len(r.hdrs)+1)
	copy(cp.hdrs, r.hdrs)
	cp.hdrs = append(cp.hdrs, [2]string{name, val})
	return cp
}

// PrepareMarshaledResponse encodes the JSON body of r ahead of writing it, so
// an encoding failure can still be turned into a different response. Once it
// has succeeded further calls do nothing.
func (r *Result) PrepareMarshaledResponse() error {
	if r.respJSONBytes != nil || !r.IsJSON || r.redir != "" {
		return nil
	}

	var err error
	r.respJSONBytes, err = json.Marshal(r.resp)
	return err
}

// WriteResponse writes r to w. It panics if r was never populated or its body
// cannot be encoded; API endpoints recover from such panics with a 500.
func (r Result) WriteResponse(w http.ResponseWriter) {
	if r.Status == 0 {
		panic("result not populated")
	}

	if err := r.PrepareMarshaledResponse(); err != nil {
		panic(fmt.Sprintf("could not marshal response: %s", err.Error()))
	}

	var body []byte
	if r.IsJSON {
		w.Header().Set("Content-Type", "application/json")
		body = r.respJSONBytes
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if r.redir == "" {
			body = []byte(fmt.Sprintf("%v", r.resp))
		}
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if r.redir != "" {
		w.Header().Set("Location", r.redir)
	}
	for _, h := range r.hdrs {
		w.Header().Set(h[0], h[1])
	}

	w.WriteHeader(r.Status)
	w.Write(body)
}
