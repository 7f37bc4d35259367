package repository

import (
	"context"

	"amigos-con-cola/internal/domain/entity"
)

// AnimalCache stores animals by id. Get returns (nil, nil) on a miss.
type AnimalCache interface {
	Get(ctx context.Context, id int) (*entity.Animal, error)
	Set(ctx context.Context, animal *entity.Animal) error
}
