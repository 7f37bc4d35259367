package usecase

import (
	"context"

	"amigos-con-cola/internal/converter"
	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AnimalUsecase interface {
	Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	GetAll(ctx context.Context, query dto.ListAnimalsQuery) (*dto.AnimalListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AnimalResponse, error)
}

type animalUsecase struct {
	log         *logrus.Logger
	animalRepo  repository.AnimalRepository
	animalCache repository.AnimalCache
}

func NewAnimalUsecase(
	log *logrus.Logger,
	animalRepo repository.AnimalRepository,
	animalCache repository.AnimalCache,
) AnimalUsecase {
	return &animalUsecase{
		log:         log,
		animalRepo:  animalRepo,
		animalCache: animalCache,
	}
}

func (u *animalUsecase) Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := u.animalRepo.Create(ctx, converter.CreateAnimalRequestToParams(req))
	if err != nil {
		u.log.Warnf("Failed to create animal: %+v", err)
		return nil, err
	}

	u.cache(ctx, animal)

	return converter.AnimalToResponse(animal), nil
}

// GetAll lists one page of animals. Total counts the species filter only,
// so it ignores a name search.
func (u *animalUsecase) GetAll(ctx context.Context, query dto.ListAnimalsQuery) (*dto.AnimalListResponse, error) {
	pagination := entity.PaginationParams{Page: query.Page, PerPage: query.PerPage}.Capped()
	filters := entity.GetAllAnimalsFilters{Species: query.Species, Name: query.Name}

	animals, err := u.animalRepo.GetAll(ctx, pagination, filters)
	if err != nil {
		u.log.Warnf("Failed to find animals: %+v", err)
		return nil, err
	}

	total, err := u.animalRepo.CountAll(ctx, filters)
	if err != nil {
		u.log.Warnf("Failed to count animals: %+v", err)
		return nil, err
	}

	return &dto.AnimalListResponse{
		Animals:    converter.AnimalsToResponses(animals),
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		Total:      total,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

func (u *animalUsecase) GetByID(ctx context.Context, id int) (*dto.AnimalResponse, error) {
	cached, err := u.animalCache.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to read animal %d from cache: %+v", id, err)
	}
	if cached != nil {
		return converter.AnimalToResponse(cached), nil
	}

	animal, err := u.animalRepo.GetByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find animal: %+v", err)
		return nil, err
	}

	u.cache(ctx, animal)

	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) cache(ctx context.Context, animal *entity.Animal) {
	if err := u.animalCache.Set(ctx, animal); err != nil {
		u.log.Warnf("Failed to cache animal %d: %+v", animal.ID, err)
	}
}
