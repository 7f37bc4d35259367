package repository

import (
	"context"

	"amigos-con-cola/internal/domain/entity"
)

type AseoRepository interface {
	Create(ctx context.Context, params entity.CreateAseoParams) (*entity.Aseo, error)
	FindAll(ctx context.Context, pagination entity.PaginationParams) ([]entity.Aseo, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int) (*entity.Aseo, error)
}
