package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/worktrack/timeclock-backend-go/internal/service/file"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ReportSick(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	fileService       *file.Service
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, fileService *file.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		fileService:       fileService,
	}
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// ReportSick accepts either a JSON body or a multipart form with an
// optional supporting document.
func (h *attendanceHandlerImpl) ReportSick(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReportSickRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Max 10MB
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		if note := r.FormValue("note"); note != "" {
			req.Note = &note
		}

		doc, header, err := r.FormFile("document")
		if err == nil {
			defer doc.Close()

			url, err := h.fileService.SaveSickDocument(r.Context(), header.Filename, doc)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			req.DocumentURL = &url
		} else if err != http.ErrMissingFile {
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.ReportSick(r.Context(), &req)
	if err != nil {
		if req.DocumentURL != nil {
			// The report was rejected, so the stored document is orphaned.
			if delErr := h.fileService.DeleteSickDocument(r.Context(), *req.DocumentURL); delErr != nil {
				slog.Error("Failed to remove orphaned sick document", "error", delErr)
			}
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sick report recorded", result)
}

func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	// Unparsable or non-positive limits fall back to the service default.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.attendanceService.ListMyAttendance(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.StartBreakRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.StartBreak(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break started", result)
}

func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.EndBreak(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}
