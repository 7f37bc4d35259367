package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"amigos-con-cola/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnimalUsecase struct {
	mock.Mock
}

func (m *mockAnimalUsecase) Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AnimalResponse)
	return res, args.Error(1)
}

func (m *mockAnimalUsecase) GetAll(ctx context.Context, query dto.ListAnimalsQuery) (*dto.AnimalListResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(*dto.AnimalListResponse)
	return res, args.Error(1)
}

func (m *mockAnimalUsecase) GetByID(ctx context.Context, id int) (*dto.AnimalResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.AnimalResponse)
	return res, args.Error(1)
}

type mockAseoUsecase struct {
	mock.Mock
}

func (m *mockAseoUsecase) Create(ctx context.Context, req *dto.CreateAseoRequest) (*dto.AseoResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AseoResponse)
	return res, args.Error(1)
}

func (m *mockAseoUsecase) GetAll(ctx context.Context, page, perPage int) (*dto.AseoListResponse, error) {
	args := m.Called(ctx, page, perPage)
	res, _ := args.Get(0).(*dto.AseoListResponse)
	return res, args.Error(1)
}

func (m *mockAseoUsecase) GetByID(ctx context.Context, id int) (*dto.AseoResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.AseoResponse)
	return res, args.Error(1)
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
	Meta    *struct {
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env), rec.Body.String())
	return env
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}
