package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dekarrin/stag/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (dao.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	store, err := NewDatastore(context.Background(), mr.Addr())
	if err != nil {
		mr.Close()
		t.Fatalf("failed to create store: %v", err)
	}

	return store, mr
}

func Test_CommandsRepository(t *testing.T) {
	ctx := context.Background()
	assert := assert.New(t)

	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	repo := store.Commands()

	first, err := repo.Create(ctx, dao.Command{
		Username:  "simon",
		Input:     "simon: drink potion",
		Output:    "You drink the potion and your health improves\n",
		Transport: dao.TransportLine,
		Player:    dao.PlayerSnapshot{Name: "simon", Location: "cabin", Health: 3},
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, dao.Command{
		Username:  "sion",
		Input:     "sion: inventory",
		Output:    "Inventory contains the following items: \n * coin (Silver coin)\n",
		Transport: dao.TransportHTTP,
		Player: dao.PlayerSnapshot{
			Name:      "sion",
			Location:  "cabin",
			Health:    3,
			Inventory: []dao.Item{{Name: "coin", Description: "Silver coin"}},
		},
	})
	require.NoError(t, err)

	third, err := repo.Create(ctx, dao.Command{
		Username:  "simon",
		Input:     "simon: goto cellar",
		Output:    "You have moved to cellar\n",
		Transport: dao.TransportLine,
		Player: dao.PlayerSnapshot{
			Name:     "simon",
			Location: "cellar",
			Health:   3,
			Unlocked: []string{"cellar"},
		},
	})
	require.NoError(t, err)

	assert.True(mr.Exists(DefaultKeyPrefix + "command:" + first.ID.String()))
	assert.Equal("coin", second.Player.Inventory[0].Name)
	assert.Equal(dao.TransportHTTP, second.Transport)

	got, err := repo.GetByID(ctx, third.ID)
	assert.NoError(err)
	assert.Equal(third, got)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(err, dao.ErrNotFound)

	all, err := repo.GetAll(ctx)
	assert.NoError(err)
	assert.Equal([]dao.Command{first, second, third}, all)

	simon, err := repo.GetAllByUser(ctx, "simon")
	assert.NoError(err)
	assert.Equal([]dao.Command{first, third}, simon)

	nobody, err := repo.GetAllByUser(ctx, "nobody")
	assert.NoError(err)
	assert.Empty(nobody)
}

func Test_NewDatastore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewDatastore(context.Background(), addr)
	assert.Error(t, err)
}
