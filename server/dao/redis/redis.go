// Package redis provides a command journal stored in a Redis server.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dekarrin/stag/server/dao"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix is prepended to every key the journal uses.
const DefaultKeyPrefix = "stag:"

type store struct {
	client *redis.Client
	coms   *CommandsRepository
}

// NewDatastore connects to the Redis server at the given host:port and checks
// that it is reachable.
func NewDatastore(ctx context.Context, addr string) (dao.Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &store{
		client: rdb,
		coms:   NewCommandsRepository(rdb, DefaultKeyPrefix),
	}, nil
}

func (s *store) Commands() dao.CommandRepository {
	return s.coms
}

func (s *store) Close() error {
	return s.client.Close()
}

func convertToDB_Time(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func convertFromDB_Time(s string, target *time.Time) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*target = time.Unix(0, n)
	return nil
}

func convertFromDB_UUID(s string, target *uuid.UUID) error {
	u, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*target = u
	return nil
}
