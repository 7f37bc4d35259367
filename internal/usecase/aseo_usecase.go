package usecase

import (
	"context"

	"amigos-con-cola/internal/converter"
	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AseoUsecase interface {
	Create(ctx context.Context, req *dto.CreateAseoRequest) (*dto.AseoResponse, error)
	GetAll(ctx context.Context, page, perPage int) (*dto.AseoListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AseoResponse, error)
}

type aseoUsecase struct {
	log      *logrus.Logger
	aseoRepo repository.AseoRepository
}

func NewAseoUsecase(log *logrus.Logger, aseoRepo repository.AseoRepository) AseoUsecase {
	return &aseoUsecase{
		log:      log,
		aseoRepo: aseoRepo,
	}
}

func (u *aseoUsecase) Create(ctx context.Context, req *dto.CreateAseoRequest) (*dto.AseoResponse, error) {
	aseo, err := u.aseoRepo.Create(ctx, converter.CreateAseoRequestToParams(req))
	if err != nil {
		u.log.Warnf("Failed to create aseo: %+v", err)
		return nil, err
	}

	return converter.AseoToResponse(aseo), nil
}

func (u *aseoUsecase) GetAll(ctx context.Context, page, perPage int) (*dto.AseoListResponse, error) {
	pagination := entity.PaginationParams{Page: page, PerPage: perPage}.Capped()

	aseos, err := u.aseoRepo.FindAll(ctx, pagination)
	if err != nil {
		u.log.Warnf("Failed to find aseos: %+v", err)
		return nil, err
	}

	total, err := u.aseoRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count aseos: %+v", err)
		return nil, err
	}

	return &dto.AseoListResponse{
		Aseos:      converter.AseosToResponses(aseos),
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		Total:      total,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

func (u *aseoUsecase) GetByID(ctx context.Context, id int) (*dto.AseoResponse, error) {
	aseo, err := u.aseoRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find aseo: %+v", err)
		return nil, err
	}

	return converter.AseoToResponse(aseo), nil
}
