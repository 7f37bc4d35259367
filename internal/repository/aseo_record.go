package repository

import (
	"time"

	"amigos-con-cola/internal/domain/entity"
)

type AseoRecord struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Tipo      string    `gorm:"type:varchar(50);not null;index"`
	Fecha     time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AseoRecord) TableName() string {
	return "aseos"
}

func (r *AseoRecord) ToDomain() *entity.Aseo {
	return &entity.Aseo{
		ID:        r.ID,
		Tipo:      r.Tipo,
		Fecha:     r.Fecha,
		CreatedAt: r.CreatedAt,
	}
}
