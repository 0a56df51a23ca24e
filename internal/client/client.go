// Package client sends command lines to a STAG server over its line transport.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// EndOfTransmission is the byte a server sends on a line of its own after a
// response.
const EndOfTransmission = '\x04'

// DefaultTimeout is used when Client.Timeout is not set.
const DefaultTimeout = 10 * time.Second

// ErrNoTerminator is returned when the server closes the connection before
// sending the end-of-transmission line.
var ErrNoTerminator = errors.New("connection closed before end of response")

// Client sends one command per connection to a STAG server.
type Client struct {
	// Addr is the host:port of the server.
	Addr string

	// Timeout bounds the whole exchange of a single command. If zero,
	// DefaultTimeout is used.
	Timeout time.Duration
}

// Send sends a full command line ("<username>: <command>") and returns the
// server's response without the trailing end-of-transmission line.
func (c Client) Send(ctx context.Context, line string) (string, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return "", fmt.Errorf("connect to %s: %w", c.Addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", fmt.Errorf("set deadline: %w", err)
		}
	}

	if _, err := io.WriteString(conn, strings.TrimRight(line, "\r\n")+"\n"); err != nil {
		return "", fmt.Errorf("send command: %w", err)
	}

	return ReadResponse(bufio.NewReader(conn))
}

// ReadResponse reads lines from r up to and including a line holding only
// EndOfTransmission and returns everything before it. The newline that ends
// the response text itself is not included.
func ReadResponse(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		line, err := r.ReadString('\n')
		if strings.TrimRight(line, "\r\n") == string(EndOfTransmission) {
			return strings.TrimSuffix(sb.String(), "\n"), nil
		}
		sb.WriteString(line)
		if err != nil {
			if err == io.EOF {
				return sb.String(), ErrNoTerminator
			}
			return sb.String(), fmt.Errorf("read response: %w", err)
		}
	}
}
