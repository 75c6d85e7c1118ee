package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blaisecz/health-risk/internal/api/validation"
	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/service"
	"github.com/blaisecz/health-risk/pkg/problem"
)

type PatientHandler struct {
	service service.PatientService
}

func NewPatientHandler(service service.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Create handles POST /v1/patients
// @Summary Create a new patient
// @Description Register a patient with optional demographics. Missing age and gender fall back to 35 and male during scoring.
// @Tags patients
// @Accept json
// @Produce json
// @Param request body domain.CreatePatientRequest true "Patient creation request"
// @Success 201 {object} domain.PatientResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePatientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	patient, err := h.service.Create(r.Context(), &req)
	if err != nil {
		slog.ErrorContext(r.Context(), "create patient failed", "error", err)
		problem.InternalError("Failed to create patient").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, patient.ToResponse())
}

// GetByID handles GET /v1/patients/{patientId}
// @Summary Get patient by ID
// @Description Get a patient's details by their UUID
// @Tags patients
// @Produce json
// @Param patientId path string true "Patient ID" format(uuid)
// @Success 200 {object} domain.PatientResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /patients/{patientId} [get]
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	patient, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "get patient failed", "patient_id", id, "error", err)
		problem.InternalError("Failed to get patient").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, patient.ToResponse())
}
