package usecase

import (
	"context"
	"io"

	"amigos-con-cola/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockAnimalRepository struct {
	mock.Mock
}

func (m *mockAnimalRepository) Create(ctx context.Context, params entity.CreateAnimalParams) (*entity.Animal, error) {
	args := m.Called(ctx, params)
	animal, _ := args.Get(0).(*entity.Animal)
	return animal, args.Error(1)
}

func (m *mockAnimalRepository) GetAll(ctx context.Context, pagination entity.PaginationParams, filters entity.GetAllAnimalsFilters) ([]entity.Animal, error) {
	args := m.Called(ctx, pagination, filters)
	animals, _ := args.Get(0).([]entity.Animal)
	return animals, args.Error(1)
}

func (m *mockAnimalRepository) CountAll(ctx context.Context, filters entity.GetAllAnimalsFilters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnimalRepository) GetByID(ctx context.Context, id int) (*entity.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(*entity.Animal)
	return animal, args.Error(1)
}

type mockAnimalCache struct {
	mock.Mock
}

func (m *mockAnimalCache) Get(ctx context.Context, id int) (*entity.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(*entity.Animal)
	return animal, args.Error(1)
}

func (m *mockAnimalCache) Set(ctx context.Context, animal *entity.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

type mockAseoRepository struct {
	mock.Mock
}

func (m *mockAseoRepository) Create(ctx context.Context, params entity.CreateAseoParams) (*entity.Aseo, error) {
	args := m.Called(ctx, params)
	aseo, _ := args.Get(0).(*entity.Aseo)
	return aseo, args.Error(1)
}

func (m *mockAseoRepository) FindAll(ctx context.Context, pagination entity.PaginationParams) ([]entity.Aseo, error) {
	args := m.Called(ctx, pagination)
	aseos, _ := args.Get(0).([]entity.Aseo)
	return aseos, args.Error(1)
}

func (m *mockAseoRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAseoRepository) FindByID(ctx context.Context, id int) (*entity.Aseo, error) {
	args := m.Called(ctx, id)
	aseo, _ := args.Get(0).(*entity.Aseo)
	return aseo, args.Error(1)
}
