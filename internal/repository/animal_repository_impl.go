package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amigos-con-cola/internal/domain/entity"
	domainRepo "amigos-con-cola/internal/domain/repository"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) domainRepo.AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(ctx context.Context, params entity.CreateAnimalParams) (*entity.Animal, error) {
	if !params.Gender.IsValid() {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidGender, int(params.Gender))
	}
	if !params.Species.IsValid() {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidSpecies, int(params.Species))
	}
	if !entity.ValidWeight(params.Weight) {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidWeight, params.Weight)
	}

	record := newAnimalRecord(params)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record.ToDomain()
}

// GetAll returns one page of animals, newest first. The first record that
// fails to map aborts the whole page.
func (r *animalRepository) GetAll(ctx context.Context, pagination entity.PaginationParams, filters entity.GetAllAnimalsFilters) ([]entity.Animal, error) {
	var records []AnimalRecord
	err := r.db.WithContext(ctx).
		Scopes(withSpecies(filters.Species), withNameContaining(filters.Name)).
		Order("id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	animals := make([]entity.Animal, 0, len(records))
	for i := range records {
		animal, err := records[i].ToDomain()
		if err != nil {
			return nil, err
		}
		animals = append(animals, *animal)
	}
	return animals, nil
}

func (r *animalRepository) CountAll(ctx context.Context, filters entity.GetAllAnimalsFilters) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&AnimalRecord{}).
		Scopes(withSpecies(filters.Species)).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *animalRepository) GetByID(ctx context.Context, id int) (*entity.Animal, error) {
	var record AnimalRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewAnimalNotFound(id)
		}
		return nil, err
	}
	return record.ToDomain()
}

func withSpecies(species *entity.Species) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if species == nil {
			return db
		}
		return db.Where("LOWER(species) = LOWER(?)", species.String())
	}
}

func withNameContaining(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"
		return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
}
