package repository

import (
	"context"
	"errors"

	"amigos-con-cola/internal/domain/entity"
	domainRepo "amigos-con-cola/internal/domain/repository"

	"gorm.io/gorm"
)

type aseoRepository struct {
	db *gorm.DB
}

func NewAseoRepository(db *gorm.DB) domainRepo.AseoRepository {
	return &aseoRepository{db: db}
}

func (r *aseoRepository) Create(ctx context.Context, params entity.CreateAseoParams) (*entity.Aseo, error) {
	record := &AseoRecord{
		Tipo:  params.Tipo,
		Fecha: params.Fecha,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record.ToDomain(), nil
}

// FindAll returns one page of aseos, latest date first.
func (r *aseoRepository) FindAll(ctx context.Context, pagination entity.PaginationParams) ([]entity.Aseo, error) {
	var records []AseoRecord
	err := r.db.WithContext(ctx).
		Order("fecha DESC, id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	aseos := make([]entity.Aseo, len(records))
	for i := range records {
		aseos[i] = *records[i].ToDomain()
	}
	return aseos, nil
}

func (r *aseoRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AseoRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *aseoRepository) FindByID(ctx context.Context, id int) (*entity.Aseo, error) {
	var record AseoRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewAseoNotFound(id)
		}
		return nil, err
	}
	return record.ToDomain(), nil
}
