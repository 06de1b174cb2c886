package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/healthtrack/healthtrack-go/internal/middleware"
	"github.com/healthtrack/healthtrack-go/internal/model"
	"github.com/healthtrack/healthtrack-go/internal/service"
)

// MetricHandler handles HTTP requests for metric submission and queries.
type MetricHandler struct {
	service *service.MetricService
}

// NewMetricHandler creates a new MetricHandler.
func NewMetricHandler(svc *service.MetricService) *MetricHandler {
	return &MetricHandler{service: svc}
}

// HandleCreate handles POST /api/metrics requests.
func (h *MetricHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
		return
	}

	var req model.MetricRequest
	decodeJSON(w, r, &req)

	if err := h.service.Create(r.Context(), user.ID, req); err != nil {
		if errors.Is(err, service.ErrBadDate) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse("Metric saved."))
}

// HandleList handles GET /api/metrics requests with optional start/end
// date bounds.
func (h *MetricHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	metrics, err := h.service.List(r.Context(), user.ID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.MetricResponse{"metrics": metrics})
}

// HandleSummary handles GET /api/metrics/summary requests. days defaults
// to 30 when absent or not an integer.
func (h *MetricHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
		return
	}

	days := service.DefaultSummaryDays
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			days = parsed
		}
	}

	summary, err := h.service.Summarize(r.Context(), user.ID, days)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.Summary{"summary": summary})
}
