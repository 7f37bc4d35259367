package repository

import (
	"fmt"
	"time"

	"amigos-con-cola/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AnimalRecord is the persisted shape of an animal. Gender and Species are
// stored as the String form of their enums. The Weight column holds exactly
// the values entity.ValidWeight accepts.
type AnimalRecord struct {
	ID        int             `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(100);not null;index"`
	Age       int             `gorm:"not null"`
	Gender    string          `gorm:"type:varchar(20);not null"`
	ImageURL  string          `gorm:"column:image_url;type:text"`
	Species   string          `gorm:"type:varchar(20);not null;index"`
	Weight    decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Story     string          `gorm:"type:text"`
	Code      string          `gorm:"type:varchar(50);not null"`
	Location  string          `gorm:"type:varchar(100)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (AnimalRecord) TableName() string {
	return "animals"
}

func newAnimalRecord(params entity.CreateAnimalParams) *AnimalRecord {
	return &AnimalRecord{
		Name:     params.Name,
		Age:      params.Age,
		Gender:   params.Gender.String(),
		ImageURL: params.ImageURL,
		Species:  params.Species.String(),
		Weight:   params.Weight,
		Story:    params.Story,
		Code:     params.Code,
		Location: params.Location,
	}
}

// ToDomain maps the record to entity.Animal. An unrecognized gender or
// species string yields an error wrapping entity.ErrCorruptRecord.
func (r *AnimalRecord) ToDomain() (*entity.Animal, error) {
	gender, err := entity.ParseGender(r.Gender)
	if err != nil {
		return nil, fmt.Errorf("%w: animal %d: %w", entity.ErrCorruptRecord, r.ID, err)
	}
	species, err := entity.ParseSpecies(r.Species)
	if err != nil {
		return nil, fmt.Errorf("%w: animal %d: %w", entity.ErrCorruptRecord, r.ID, err)
	}

	return &entity.Animal{
		ID:        r.ID,
		Name:      r.Name,
		Age:       r.Age,
		Gender:    gender,
		ImageURL:  r.ImageURL,
		Species:   species,
		Weight:    r.Weight,
		Story:     r.Story,
		Code:      r.Code,
		Location:  r.Location,
		CreatedAt: r.CreatedAt,
	}, nil
}
