package http

import (
	"net/http"
	"strconv"

	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/domain/stats"
	"github.com/worktrack/timeclock-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetMyReports(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService  stats.StatsService
	reportService report.ReportService
}

func NewStatsHandler(statsService stats.StatsService, reportService report.ReportService) StatsHandler {
	return &statsHandlerImpl{
		statsService:  statsService,
		reportService: reportService,
	}
}

func (h *statsHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.MyStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) GetMyReports(w http.ResponseWriter, r *http.Request) {
	// Unparsable or non-positive limits mean "all".
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.reportService.ListMyReports(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
