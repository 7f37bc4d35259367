package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/usecase"
	"amigos-con-cola/pkg/response"
	"amigos-con-cola/pkg/validator"

	"github.com/gorilla/mux"
)

type AseoHandler struct {
	aseoUsecase usecase.AseoUsecase
	validator   *validator.CustomValidator
}

func NewAseoHandler(aseoUsecase usecase.AseoUsecase, validator *validator.CustomValidator) *AseoHandler {
	return &AseoHandler{
		aseoUsecase: aseoUsecase,
		validator:   validator,
	}
}

// Create handles logging a cleaning
// @Summary Register an aseo
// @Tags Aseos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAseoRequest true "Create Aseo Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /aseos [post]
func (h *AseoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAseoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	aseo, err := h.aseoUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create aseo")
		return
	}

	response.Success(w, http.StatusCreated, "Aseo created successfully", aseo)
}

// GetAll handles listing aseos
// @Summary List aseos
// @Description Most recent fecha first.
// @Tags Aseos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /aseos [get]
func (h *AseoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	result, err := h.aseoUsecase.GetAll(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err, "Failed to get aseos")
		return
	}

	meta := &response.Meta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Aseos retrieved successfully", result.Aseos, meta)
}

// GetByID handles getting an aseo by ID
// @Summary Get aseo by ID
// @Tags Aseos
// @Produce json
// @Param id path int true "Aseo ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /aseos/{id} [get]
func (h *AseoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid aseo ID", nil)
		return
	}

	aseo, err := h.aseoUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get aseo")
		return
	}

	response.Success(w, http.StatusOK, "Aseo retrieved successfully", aseo)
}
