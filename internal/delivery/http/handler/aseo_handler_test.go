package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/delivery/http/handler"
	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/pkg/date"
	"amigos-con-cola/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAseoHandler_Create(t *testing.T) {
	uc := new(mockAseoUsecase)
	h := handler.NewAseoHandler(uc, validator.NewValidator())

	fecha := date.New(2026, time.October, 18)
	uc.On("Create", mock.Anything, &dto.CreateAseoRequest{Tipo: "general", Fecha: fecha}).
		Return(&dto.AseoResponse{ID: 1, Tipo: "general", Fecha: fecha}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/aseos", strings.NewReader(`{"tipo":"general","fecha":"2026-10-18"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"fecha":"2026-10-18"`)
	uc.AssertExpectations(t)
}

func TestAseoHandler_CreateRejects(t *testing.T) {
	h := handler.NewAseoHandler(new(mockAseoUsecase), validator.NewValidator())

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"malformed date", `{"tipo":"general","fecha":"18-10-2026"}`, ""},
		{"missing fecha", `{"tipo":"general"}`, "fecha"},
		{"missing tipo", `{"fecha":"2026-10-18"}`, "tipo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/aseos", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField+" is required", decodeEnvelope(t, rec).Error[tt.wantField])
			}
		})
	}
}

func TestAseoHandler_GetAllAndGetByID(t *testing.T) {
	uc := new(mockAseoUsecase)
	h := handler.NewAseoHandler(uc, validator.NewValidator())

	uc.On("GetAll", mock.Anything, 0, 0).Return(&dto.AseoListResponse{Page: 1, PerPage: 10}, nil)
	uc.On("GetByID", mock.Anything, 4).Return(nil, entity.NewAseoNotFound(4))

	rec := httptest.NewRecorder()
	h.GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/aseos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/aseos/4", nil), map[string]string{"id": "4"})
	rec = httptest.NewRecorder()
	h.GetByID(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "There is no aseo with the id 4", decodeEnvelope(t, rec).Message)
}
