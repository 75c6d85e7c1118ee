package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/health-risk/internal/api/validation"
	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/service"
	"github.com/blaisecz/health-risk/pkg/pagination"
	"github.com/blaisecz/health-risk/pkg/problem"
)

type MetricHandler struct {
	service service.MetricService
}

func NewMetricHandler(service service.MetricService) *MetricHandler {
	return &MetricHandler{service: service}
}

// Create handles POST /v1/patients/{patientId}/metrics
// @Summary Record measurements
// @Description Store a batch of up to 1000 wearable measurements. Timestamps are normalized to UTC. Recording evicts the patient's cached prediction.
// @Tags metrics
// @Accept json
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateMetricsRequest true "Measurements"
// @Success 201 {object} domain.MetricListResponse "Stored measurements"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/metrics [post]
func (h *MetricHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	var req domain.CreateMetricsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	records, err := h.service.Record(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Patient not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest(err.Error()).Write(w)
		default:
			slog.ErrorContext(r.Context(), "record metrics failed", "patient_id", id, "error", err)
			problem.InternalError("Failed to record metrics").Write(w)
		}
		return
	}

	response := domain.MetricListResponse{Data: make([]domain.MetricResponse, len(records))}
	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}
	writeJSON(w, http.StatusCreated, response)
}

// List handles GET /v1/patients/{patientId}/metrics
// @Summary List measurements
// @Description Fetch paginated measurements, newest first. Filter by metric type and time range.
// @Tags metrics
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param metric_type query string false "Metric type" Enums(heart_rate, steps, sleep, calories)
// @Param from query string false "Start of time range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of time range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-500)" default(50) minimum(1) maximum(500)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MetricListResponse "Measurements with pagination"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/metrics [get]
func (h *MetricHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), id, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "list metrics failed", "patient_id", id, "error", err)
		problem.InternalError("Failed to list metrics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// History handles GET /v1/patients/{patientId}/metrics/history
// @Summary Daily metric history
// @Description Per-day averages of each metric type over the last window_days days (UTC dates, oldest first).
// @Tags metrics
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to include" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.HistoryResponse "Daily averages"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/metrics/history [get]
func (h *MetricHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	windowDays, ok := parseIntParam(r, "window_days", service.DefaultHistoryWindowDays)
	if !ok || windowDays < 1 || windowDays > service.MaxHistoryWindowDays {
		problem.BadRequest("window_days must be between 1 and " + strconv.Itoa(service.MaxHistoryWindowDays)).Write(w)
		return
	}

	response, err := h.service.History(r.Context(), id, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "metric history failed", "patient_id", id, "error", err)
		problem.InternalError("Failed to compute metric history").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.MetricFilter, []problem.FieldError) {
	var filter domain.MetricFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	if mt := query.Get("metric_type"); mt != "" {
		if !domain.MetricType(mt).IsKnown() {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "metric_type",
				Message: "must be a supported metric type",
			})
		} else {
			filter.MetricType = domain.MetricType(mt)
		}
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > pagination.MaxLimit {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be between 1 and " + strconv.Itoa(pagination.MaxLimit),
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := query.Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is invalid",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
