package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dekarrin/stag/server/result"
	"github.com/dekarrin/stag/server/serr"
	"github.com/stretchr/testify/assert"
)

func Test_parseJSON(t *testing.T) {
	testCases := []struct {
		name          string
		contentType   string
		body          string
		expect        CommandRequest
		expectErr     bool
		expectBodyErr bool
	}{
		{
			name:        "valid",
			contentType: "application/json",
			body:        `{"username": "simon", "command": "look"}`,
			expect:      CommandRequest{Username: "simon", Command: "look"},
		},
		{
			name:        "valid with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"username": "simon", "command": "inv"}`,
			expect:      CommandRequest{Username: "simon", Command: "inv"},
		},
		{
			name:        "wrong content type",
			contentType: "text/plain",
			body:        `{"username": "simon"}`,
			expectErr:   true,
		},
		{
			name:          "malformed JSON",
			contentType:   "application/json",
			body:          `{"username": `,
			expectErr:     true,
			expectBodyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			req := httptest.NewRequest(http.MethodPost, PathPrefix+"/commands", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)

			var actual CommandRequest
			err := parseJSON(req, &actual)
			if tc.expectErr {
				assert.Error(err)
				assert.Equal(tc.expectBodyErr, errors.Is(err, serr.ErrBodyUnmarshal))
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Endpoint(t *testing.T) {
	testCases := []struct {
		name         string
		ep           EndpointFunc
		expectStatus int
	}{
		{
			name:         "normal result",
			ep:           func(req *http.Request) result.Result { return result.OK("fine") },
			expectStatus: http.StatusOK,
		},
		{
			name:         "panic becomes 500",
			ep:           func(req *http.Request) result.Result { panic("the elf ate the server") },
			expectStatus: http.StatusInternalServerError,
		},
		{
			name:         "unpopulated result becomes 500",
			ep:           func(req *http.Request) result.Result { return result.Result{} },
			expectStatus: http.StatusInternalServerError,
		},
		{
			name: "unmarshalable response becomes 500",
			ep: func(req *http.Request) result.Result {
				return result.OK(func() {})
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, PathPrefix+"/info", nil)

			Endpoint(tc.ep)(w, req)

			assert.Equal(tc.expectStatus, w.Code)
		})
	}
}
