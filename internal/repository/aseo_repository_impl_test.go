package repository

import (
	"context"
	"testing"
	"time"

	"amigos-con-cola/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAseoRepository_CreateThenFindByID(t *testing.T) {
	repo := NewAseoRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.CreateAseoParams{Tipo: "general", Fecha: day(2026, 10, 18)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "general", got.Tipo)
	assert.Equal(t, "2026-10-18", got.Fecha.Format("2006-01-02"))
}

func TestAseoRepository_FindByIDNotFound(t *testing.T) {
	repo := NewAseoRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.EqualError(t, err, "There is no aseo with the id 7")
}

func TestAseoRepository_FindAllOrderAndCount(t *testing.T) {
	repo := NewAseoRepository(newTestDB(t))
	ctx := context.Background()

	for _, p := range []entity.CreateAseoParams{
		{Tipo: "patio", Fecha: day(2026, 10, 1)},
		{Tipo: "jaulas", Fecha: day(2026, 10, 20)},
		{Tipo: "general", Fecha: day(2026, 10, 20)},
		{Tipo: "cocina", Fecha: day(2026, 9, 30)},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	first, err := repo.FindAll(ctx, entity.PaginationParams{Page: 1, PerPage: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"general", "jaulas", "patio"}, []string{first[0].Tipo, first[1].Tipo, first[2].Tipo})

	second, err := repo.FindAll(ctx, entity.PaginationParams{Page: 2, PerPage: 3})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "cocina", second[0].Tipo)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
