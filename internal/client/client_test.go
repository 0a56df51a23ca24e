package client

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ReadResponse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    string
		expectErr error
	}{
		{
			name:   "single line response",
			input:  "You have moved to forest\n\n\x04\n",
			expect: "You have moved to forest\n",
		},
		{
			name:   "response without trailing newline",
			input:  "You have 3 health points\n\x04\n",
			expect: "You have 3 health points",
		},
		{
			name:   "multi line response",
			input:  "Location: cabin (A cabin)\n  From here you can go to:\n   * forest (A forest)\n\n\x04\n",
			expect: "Location: cabin (A cabin)\n  From here you can go to:\n   * forest (A forest)\n",
		},
		{
			name:   "terminator without final newline",
			input:  "hi\n\x04",
			expect: "hi",
		},
		{
			name:      "closed early",
			input:     "partial\n",
			expect:    "partial\n",
			expectErr: ErrNoTerminator,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ReadResponse(bufio.NewReader(strings.NewReader(tc.input)))

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
			} else {
				assert.NoError(err)
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Client_Send(t *testing.T) {
	assert := assert.New(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if !assert.NoError(err) {
		return
	}
	defer ln.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
		conn.Write([]byte("Your inventory is empty\n\n\x04\n"))
	}()

	c := Client{Addr: ln.Addr().String(), Timeout: 5 * time.Second}
	out, err := c.Send(context.Background(), "simon: inv")

	assert.NoError(err)
	assert.Equal("Your inventory is empty\n", out)
	assert.Equal("simon: inv\n", <-received)
}

func Test_Client_Send_NoServer(t *testing.T) {
	assert := assert.New(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if !assert.NoError(err) {
		return
	}
	addr := ln.Addr().String()
	ln.Close()

	c := Client{Addr: addr, Timeout: time.Second}
	_, err = c.Send(context.Background(), "simon: look")

	assert.Error(err)
}
