package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blaisecz/health-risk/internal/api/validation"
	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/llm"
	"github.com/blaisecz/health-risk/internal/service"
	"github.com/blaisecz/health-risk/pkg/problem"
)

// PredictionHandler handles risk prediction endpoints.
type PredictionHandler struct {
	predictionService service.PredictionService
	insightsService   service.InsightsService
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, insightsService service.InsightsService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		insightsService:   insightsService,
	}
}

// Predict handles POST /v1/patients/{patientId}/predictions
// @Summary Predict health risk
// @Description Score the patient's measurements from the last 30 days. With fewer than 10 measurements a synthetic placeholder (data_source "synthetic") is returned instead. Results are cached briefly per patient.
// @Tags predictions
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.PredictionResponse "Risk prediction"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/predictions [post]
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	result, err := h.predictionService.Predict(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "prediction failed", "patient_id", id, "error", err)
		problem.InternalError("Failed to compute prediction").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Evaluate handles POST /v1/predictions/evaluate
// @Summary Evaluate measurements
// @Description Score measurements supplied in the request without storing them. Records of unknown metric types are ignored.
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body domain.EvaluateRequest true "Measurements and profile"
// @Success 200 {object} domain.PredictionResponse "Risk prediction"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /predictions/evaluate [post]
func (h *PredictionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req domain.EvaluateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.predictionService.Evaluate(r.Context(), &req)
	if err != nil {
		slog.ErrorContext(r.Context(), "evaluation failed", "error", err)
		problem.InternalError("Failed to evaluate measurements").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetInsights handles GET /v1/patients/{patientId}/insights
// @Summary Get an LLM narrative of the risk prediction
// @Description Predict the patient's risk and explain it in plain, non-medical language.
// @Tags predictions
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Prediction with narrative"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /patients/{patientId}/insights [get]
func (h *PredictionHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Patient not found").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("Failed to generate narrative from LLM").Write(w)
		default:
			slog.ErrorContext(r.Context(), "insights failed", "patient_id", id, "error", err)
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
