package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/dekarrin/stag/internal/client"
	"github.com/dekarrin/stag/server/dao"
	"github.com/dekarrin/stag/server/stags"
)

// DefaultLineTimeout bounds a single exchange on the line transport when
// LineListener.Timeout is not set.
const DefaultLineTimeout = 10 * time.Second

// ErrListenerClosed is returned by LineListener.Serve after Shutdown is
// called.
var ErrListenerClosed = errors.New("line listener closed")

// LineListener serves the line transport: each connection carries a single
// command line of the form "<username>: <command>", and receives the
// narration followed by a line holding only the end-of-transmission byte.
// Connections are handled one at a time in the order they are accepted.
type LineListener struct {
	// Backend resolves and journals every command.
	Backend stags.Service

	// Timeout bounds the reading and writing of a single connection. If zero,
	// DefaultLineTimeout is used.
	Timeout time.Duration

	mtx      sync.Mutex
	ln       net.Listener
	shutdown bool
}

// ListenAndServe listens on the given TCP address and serves connections
// until Shutdown is called.
func (ll *LineListener) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ll.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called, at which point it
// returns ErrListenerClosed. ln is closed when Serve returns.
func (ll *LineListener) Serve(ln net.Listener) error {
	ll.mtx.Lock()
	if ll.shutdown {
		ll.mtx.Unlock()
		ln.Close()
		return ErrListenerClosed
	}
	ll.ln = ln
	ll.mtx.Unlock()

	defer ln.Close()

	log.Printf("INFO  Listening for commands on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ll.closed() {
				return ErrListenerClosed
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Printf("WARN  accept: %v", err)
				continue
			}
			return err
		}

		ll.handle(conn)
	}
}

// Shutdown stops the listener from accepting further connections. A
// connection already being handled is allowed to finish.
func (ll *LineListener) Shutdown(ctx context.Context) error {
	ll.mtx.Lock()
	defer ll.mtx.Unlock()

	ll.shutdown = true
	if ll.ln != nil {
		return ll.ln.Close()
	}
	return nil
}

// Addr returns the address being listened on, or nil if Serve has not been
// called.
func (ll *LineListener) Addr() net.Addr {
	ll.mtx.Lock()
	defer ll.mtx.Unlock()

	if ll.ln == nil {
		return nil
	}
	return ll.ln.Addr()
}

func (ll *LineListener) closed() bool {
	ll.mtx.Lock()
	defer ll.mtx.Unlock()
	return ll.shutdown
}

func (ll *LineListener) handle(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	log.Printf("DEBUG Connection established with %s", remote)

	timeout := ll.Timeout
	if timeout == 0 {
		timeout = DefaultLineTimeout
	}
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		log.Printf("ERROR %s: set deadline: %v", remote, err)
		return
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		log.Printf("ERROR %s: read command: %v", remote, err)
		return
	}
	line = strings.TrimRight(line, "\r\n")

	log.Printf("INFO  Received message from %s: %q", remote, line)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := ll.Backend.ExecuteCommand(ctx, line, dao.TransportLine)
	if err != nil {
		log.Printf("ERROR %s: %v", remote, err)
	}

	resp := c.Output + "\n" + string(client.EndOfTransmission) + "\n"
	if _, err := io.WriteString(conn, resp); err != nil {
		log.Printf("ERROR %s: write response: %v", remote, err)
	}
}
