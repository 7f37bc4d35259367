package repository

import (
	"context"

	"amigos-con-cola/internal/domain/entity"
)

// AnimalRepository mediates between persisted animal records and entity.Animal.
type AnimalRepository interface {
	Create(ctx context.Context, params entity.CreateAnimalParams) (*entity.Animal, error)
	GetAll(ctx context.Context, pagination entity.PaginationParams, filters entity.GetAllAnimalsFilters) ([]entity.Animal, error)
	// CountAll applies only the species filter; the name filter is ignored.
	CountAll(ctx context.Context, filters entity.GetAllAnimalsFilters) (int64, error)
	GetByID(ctx context.Context, id int) (*entity.Animal, error)
}
