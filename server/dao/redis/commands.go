package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/dekarrin/stag/server/dao"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CommandsRepository keeps each command in a hash, along with a list of all
// command IDs and one list of IDs per username, both in creation order.
type CommandsRepository struct {
	client *redis.Client
	prefix string
}

func NewCommandsRepository(client *redis.Client, keyPrefix string) *CommandsRepository {
	return &CommandsRepository{
		client: client,
		prefix: keyPrefix,
	}
}

func (repo *CommandsRepository) commandKey(id uuid.UUID) string {
	return repo.prefix + "command:" + id.String()
}

func (repo *CommandsRepository) allKey() string {
	return repo.prefix + "commands"
}

func (repo *CommandsRepository) userKey(username string) string {
	return repo.prefix + "user:" + username + ":commands"
}

func (repo *CommandsRepository) Create(ctx context.Context, c dao.Command) (dao.Command, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not generate ID: %w", err)
	}

	player, err := c.Player.MarshalBinary()
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not encode player: %w", err)
	}

	key := repo.commandKey(newUUID)

	created, err := repo.client.HSetNX(ctx, key, "id", newUUID.String()).Result()
	if err != nil {
		return dao.Command{}, err
	}
	if !created {
		return dao.Command{}, dao.ErrConstraintViolation
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"username", c.Username,
			"input", c.Input,
			"output", c.Output,
			"transport", c.Transport.String(),
			"player", player,
			"created", convertToDB_Time(time.Now()),
		)
		pipe.RPush(ctx, repo.allKey(), newUUID.String())
		pipe.RPush(ctx, repo.userKey(c.Username), newUUID.String())
		return nil
	})
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not save command: %w", err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *CommandsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Command, error) {
	fields, err := repo.client.HGetAll(ctx, repo.commandKey(id)).Result()
	if err != nil {
		return dao.Command{}, err
	}
	if len(fields) == 0 {
		return dao.Command{}, dao.ErrNotFound
	}

	return decodeCommand(fields)
}

func (repo *CommandsRepository) GetAll(ctx context.Context) ([]dao.Command, error) {
	return repo.getList(ctx, repo.allKey())
}

func (repo *CommandsRepository) GetAllByUser(ctx context.Context, username string) ([]dao.Command, error) {
	return repo.getList(ctx, repo.userKey(username))
}

func (repo *CommandsRepository) Close() error {
	return nil
}

func (repo *CommandsRepository) getList(ctx context.Context, listKey string) ([]dao.Command, error) {
	ids, err := repo.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	all := make([]dao.Command, 0, len(ids))
	for _, idStr := range ids {
		var id uuid.UUID
		if err := convertFromDB_UUID(idStr, &id); err != nil {
			return all, fmt.Errorf("stored ID %q is invalid: %w", idStr, err)
		}

		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return all, fmt.Errorf("command %s: %w", idStr, err)
		}
		all = append(all, c)
	}

	return all, nil
}

func decodeCommand(fields map[string]string) (dao.Command, error) {
	c := dao.Command{
		Username:  fields["username"],
		Input:     fields["input"],
		Output:    fields["output"],
		Transport: dao.Transport(fields["transport"]),
	}

	err := convertFromDB_UUID(fields["id"], &c.ID)
	if err != nil {
		return c, fmt.Errorf("stored ID %q is invalid: %w", fields["id"], err)
	}
	err = convertFromDB_Time(fields["created"], &c.Created)
	if err != nil {
		return c, fmt.Errorf("stored created time %q is invalid: %w", fields["created"], err)
	}
	err = c.Player.UnmarshalBinary([]byte(fields["player"]))
	if err != nil {
		return c, fmt.Errorf("stored player for %s: %v: %w", c.ID, err, dao.ErrDecodingFailure)
	}

	return c, nil
}
