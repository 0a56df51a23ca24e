package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dekarrin/stag/internal/client"
	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/internal/stagw"
	"github.com/dekarrin/stag/server/dao/inmem"
	"github.com/dekarrin/stag/server/stags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorldFile = filepath.Join("..", "worlds", "extended.stag")

func newTestService(t *testing.T) stags.Service {
	t.Helper()

	data, err := stagw.LoadResourceBundle(testWorldFile)
	require.NoError(t, err)

	ip, err := game.New(data.World, data.Rules, game.Options{Start: data.Start})
	require.NoError(t, err)

	return stags.Service{DB: inmem.NewDatastore(), Game: ip}
}

func Test_New(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "defaults with world", cfg: Config{World: testWorldFile}},
		{name: "sqlite journal", cfg: Config{World: testWorldFile, DB: Database{Type: DatabaseSQLite, DataDir: t.TempDir()}}},
		{name: "missing world file", cfg: Config{World: filepath.Join(t.TempDir(), "nope.stag")}, expectErr: true},
		{name: "invalid listen address", cfg: Config{World: testWorldFile, ListenAddr: "nowhere"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			s, err := New(context.Background(), tc.cfg)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.NoError(s.svc.DB.Close())
		})
	}
}

func Test_Server_ServeForever(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	cfg := Config{
		World:      testWorldFile,
		ListenAddr: "127.0.0.1:0",
		DB:         Database{Type: DatabaseInMemory},
	}
	s := newServer(cfg, newTestService(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ServeForever(ctx)
	}()

	var addr net.Addr
	require.Eventually(func() bool {
		addr = s.line.Addr()
		return addr != nil
	}, 5*time.Second, 10*time.Millisecond)

	c := client.Client{Addr: addr.String()}
	out, err := c.Send(context.Background(), "simon: get coin")
	assert.NoError(err)
	assert.Equal("coin is added to the inventory\n", out)

	cancel()

	select {
	case err := <-done:
		assert.NoError(err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
