package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/stag/server/dao"
	"github.com/google/uuid"
)

func NewCommandsRepository() *InMemoryCommandsRepository {
	return &InMemoryCommandsRepository{
		coms:        make(map[uuid.UUID]dao.Command),
		byUserIndex: make(map[string][]uuid.UUID),
	}
}

type InMemoryCommandsRepository struct {
	mtx         sync.RWMutex
	coms        map[uuid.UUID]dao.Command
	order       []uuid.UUID
	byUserIndex map[string][]uuid.UUID
}

func (imcr *InMemoryCommandsRepository) Close() error {
	return nil
}

func (imcr *InMemoryCommandsRepository) Create(ctx context.Context, c dao.Command) (dao.Command, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Command{}, fmt.Errorf("could not generate ID: %w", err)
	}

	c.ID = newUUID
	c.Created = time.Now()

	imcr.mtx.Lock()
	defer imcr.mtx.Unlock()

	if _, ok := imcr.coms[c.ID]; ok {
		return dao.Command{}, dao.ErrConstraintViolation
	}

	imcr.coms[c.ID] = c
	imcr.order = append(imcr.order, c.ID)
	imcr.byUserIndex[c.Username] = append(imcr.byUserIndex[c.Username], c.ID)

	return c, nil
}

func (imcr *InMemoryCommandsRepository) GetAll(ctx context.Context) ([]dao.Command, error) {
	imcr.mtx.RLock()
	defer imcr.mtx.RUnlock()

	return imcr.collect(imcr.order), nil
}

func (imcr *InMemoryCommandsRepository) GetAllByUser(ctx context.Context, username string) ([]dao.Command, error) {
	imcr.mtx.RLock()
	defer imcr.mtx.RUnlock()

	return imcr.collect(imcr.byUserIndex[username]), nil
}

func (imcr *InMemoryCommandsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Command, error) {
	imcr.mtx.RLock()
	defer imcr.mtx.RUnlock()

	c, ok := imcr.coms[id]
	if !ok {
		return dao.Command{}, dao.ErrNotFound
	}

	return c, nil
}

func (imcr *InMemoryCommandsRepository) collect(ids []uuid.UUID) []dao.Command {
	all := make([]dao.Command, len(ids))
	for i := range ids {
		all[i] = imcr.coms[ids[i]]
	}
	return all
}
