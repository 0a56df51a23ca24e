package result

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Result_WriteResponse(t *testing.T) {
	testCases := []struct {
		name         string
		input        Result
		expectStatus int
		expectType   string
		expectBody   string
		expectHeader [2]string
	}{
		{
			name:         "OK with JSON body",
			input:        OK(map[string]string{"name": "simon"}),
			expectStatus: http.StatusOK,
			expectType:   "application/json",
			expectBody:   `{"name":"simon"}`,
		},
		{
			name:         "created",
			input:        Created([]int{1, 2}, "made %d things", 2),
			expectStatus: http.StatusCreated,
			expectType:   "application/json",
			expectBody:   `[1,2]`,
		},
		{
			name:         "not found",
			input:        NotFound(),
			expectStatus: http.StatusNotFound,
			expectType:   "application/json",
			expectBody:   `{"error":"The requested resource was not found","status":404}`,
		},
		{
			name:         "text error",
			input:        TextErr(http.StatusInternalServerError, "it broke", "panic"),
			expectStatus: http.StatusInternalServerError,
			expectType:   "text/plain; charset=utf-8",
			expectBody:   "it broke",
		},
		{
			name:         "redirect",
			input:        Redirection("/api/v1/info"),
			expectStatus: http.StatusPermanentRedirect,
			expectHeader: [2]string{"Location", "/api/v1/info"},
		},
		{
			name:         "extra header",
			input:        OK("hi").WithHeader("X-Stag", "yes"),
			expectStatus: http.StatusOK,
			expectType:   "application/json",
			expectBody:   `"hi"`,
			expectHeader: [2]string{"X-Stag", "yes"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			w := httptest.NewRecorder()
			tc.input.WriteResponse(w)

			assert.Equal(tc.expectStatus, w.Code)
			if tc.expectType != "" {
				assert.Equal(tc.expectType, w.Header().Get("Content-Type"))
			}
			if tc.expectBody != "" {
				assert.Equal(tc.expectBody, w.Body.String())
			}
			if tc.expectHeader[0] != "" {
				assert.Equal(tc.expectHeader[1], w.Header().Get(tc.expectHeader[0]))
			}
		})
	}
}

func Test_Result_InternalMsg(t *testing.T) {
	assert := assert.New(t)

	r := BadRequest("command: property is empty", "empty command from %q", "simon")

	assert.True(r.IsErr)
	assert.Equal(http.StatusBadRequest, r.Status)
	assert.Equal(`empty command from "simon"`, r.InternalMsg)
}

func Test_Result_DefaultInternalMsg(t *testing.T) {
	testCases := []struct {
		name   string
		input  Result
		expect string
	}{
		{name: "OK", input: OK("x"), expect: "OK"},
		{name: "created", input: Created("x"), expect: "created"},
		{name: "not found", input: NotFound(), expect: "not found"},
		{name: "not found with message", input: NotFound("player '%s' does not exist", "simon"), expect: "player 'simon' does not exist"},
		{name: "internal error", input: InternalServerError(), expect: "internal server error"},
		{name: "redirect", input: Redirection("/api/v1/info"), expect: "redirect -> /api/v1/info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.input.InternalMsg)
		})
	}
}

func Test_Result_WithHeader_LeavesOriginal(t *testing.T) {
	assert := assert.New(t)

	orig := OK("hi").WithHeader("X-First", "1")
	_ = orig.WithHeader("X-Second", "2")

	w := httptest.NewRecorder()
	orig.WriteResponse(w)

	assert.Equal("1", w.Header().Get("X-First"))
	assert.Empty(w.Header().Get("X-Second"))
}
