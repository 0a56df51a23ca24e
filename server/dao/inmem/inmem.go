// Package inmem provides a command journal that is kept only in memory and
// lost when the server stops.
package inmem

import (
	"github.com/dekarrin/stag/server/dao"
)

type store struct {
	coms *InMemoryCommandsRepository
}

func NewDatastore() dao.Store {
	return &store{
		coms: NewCommandsRepository(),
	}
}

func (s *store) Commands() dao.CommandRepository {
	return s.coms
}

func (s *store) Close() error {
	return s.coms.Close()
}
