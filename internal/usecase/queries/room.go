package queries

import (
	"context"
)

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.repo.FindAll(ctx)
}
