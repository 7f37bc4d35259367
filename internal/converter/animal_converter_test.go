package converter

import (
	"testing"
	"time"

	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnimalToResponse(t *testing.T) {
	assert.Nil(t, AnimalToResponse(nil))

	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	animal := &entity.Animal{
		ID: 5, Name: "Luna", Age: 2, Gender: entity.GenderFemale, Species: entity.SpeciesCat,
		Weight: decimal.RequireFromString("4.1"), Code: "AC-5", Location: "Sala 2", CreatedAt: created,
	}

	got := AnimalToResponse(animal)
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, "Luna", got.Name)
	assert.Equal(t, entity.GenderFemale, got.Gender)
	assert.Equal(t, entity.SpeciesCat, got.Species)
	assert.Equal(t, "4.1", got.Weight.String())
	assert.Equal(t, created, got.CreatedAt)
}

func TestAnimalsToResponses_KeepsOrder(t *testing.T) {
	got := AnimalsToResponses([]entity.Animal{{ID: 3}, {ID: 2}, {ID: 1}})
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Empty(t, AnimalsToResponses(nil))
}

func TestCreateAnimalRequestToParams(t *testing.T) {
	req := &dto.CreateAnimalRequest{
		Name: "Fido", Age: 3, Gender: entity.GenderMale, Species: entity.SpeciesDog,
		Weight: decimal.NewFromInt(10), Code: "AC-1", ImageURL: "https://x.org/f.png", Story: "s", Location: "l",
	}
	params := CreateAnimalRequestToParams(req)
	assert.Equal(t, entity.CreateAnimalParams{
		Name: "Fido", Age: 3, Gender: entity.GenderMale, Species: entity.SpeciesDog,
		Weight: decimal.NewFromInt(10), Code: "AC-1", ImageURL: "https://x.org/f.png", Story: "s", Location: "l",
	}, params)
}
