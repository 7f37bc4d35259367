package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/internal/usecase"
	"amigos-con-cola/pkg/response"
	"amigos-con-cola/pkg/validator"

	"github.com/gorilla/mux"
)

type AnimalHandler struct {
	animalUsecase usecase.AnimalUsecase
	validator     *validator.CustomValidator
}

func NewAnimalHandler(animalUsecase usecase.AnimalUsecase, validator *validator.CustomValidator) *AnimalHandler {
	return &AnimalHandler{
		animalUsecase: animalUsecase,
		validator:     validator,
	}
}

// Create handles animal registration
// @Summary Register an animal
// @Tags Animals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAnimalRequest true "Create Animal Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /animals [post]
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create animal")
		return
	}

	response.Success(w, http.StatusCreated, "Animal created successfully", animal)
}

// GetAll handles listing animals
// @Summary List animals
// @Description Newest first. meta.total counts the species filter only.
// @Tags Animals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Param species query string false "Dog or Cat"
// @Param name query string false "Case-insensitive name fragment"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /animals [get]
func (h *AnimalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	query := dto.ListAnimalsQuery{
		Page:    page,
		PerPage: perPage,
		Name:    q.Get("name"),
	}

	if raw := q.Get("species"); raw != "" {
		species, err := entity.ParseSpecies(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid species", nil)
			return
		}
		query.Species = &species
	}

	result, err := h.animalUsecase.GetAll(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to get animals")
		return
	}

	meta := &response.Meta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Animals retrieved successfully", result.Animals, meta)
}

// GetByID handles getting an animal by ID
// @Summary Get animal by ID
// @Tags Animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	animal, err := h.animalUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get animal")
		return
	}

	response.Success(w, http.StatusOK, "Animal retrieved successfully", animal)
}
