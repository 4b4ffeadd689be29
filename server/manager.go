package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/manager"
	"github.com/mediasort/mediasort/pkg/storage"
	"go.uber.org/zap"
)

type jobResponse struct {
	JobID int64 `json:"jobId"`
}

// StartScan kicks off a scan job
func (s Server) StartScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		jobID, err := s.manager.StartScan(r.Context())
		if err != nil {
			writeErrorResponse(w, startJobStatus(err), err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: jobResponse{JobID: jobID}}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

type startOrganizeRequest struct {
	IDs []int64 `json:"ids"`
}

// StartOrganize kicks off an organize job over the requested items
func (s Server) StartOrganize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request startOrganizeRequest
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if len(request.IDs) == 0 {
			http.Error(w, "ids is required", http.StatusBadRequest)
			return
		}

		jobID, err := s.manager.StartOrganize(r.Context(), request.IDs)
		if err != nil {
			writeErrorResponse(w, startJobStatus(err), err)
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: jobResponse{JobID: jobID}}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func startJobStatus(err error) int {
	switch {
	case errors.Is(err, manager.ErrAlreadyRunning):
		return http.StatusConflict
	case errors.Is(err, manager.ErrNotConfigured):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListMediaItems lists stored items with optional filters
func (s Server) ListMediaItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		qp := r.URL.Query()

		filter := storage.MediaItemFilter{}

		if v := qp.Get("type"); v != "" {
			filter.DetectedType = &v
		}
		if v := qp.Get("status"); v != "" {
			status := storage.ItemStatus(v)
			filter.Status = &status
		}
		if v := qp.Get("search"); v != "" {
			filter.Search = &v
		}
		if v := qp.Get("confidenceBelow"); v != "" {
			below, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				http.Error(w, "invalid confidenceBelow parameter", http.StatusBadRequest)
				return
			}
			converted := int32(below)
			filter.ConfidenceBelow = &converted
		}
		if v := qp.Get("duplicatesOnly"); v == "true" {
			filter.DuplicatesOnly = true
		}

		page, pageSize, err := parsePagination(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if pageSize > 0 {
			filter.Limit = pageSize
			filter.Offset = (page - 1) * pageSize
		}

		items, err := s.manager.ListMediaItems(r.Context(), filter)
		if err != nil {
			log.Error("failed to list media items", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// GetMediaItem fetches one item
func (s Server) GetMediaItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		item, err := s.manager.GetMediaItem(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: item})
	}
}

// UpdateMediaItem applies a manual metadata edit
func (s Server) UpdateMediaItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var patch manager.MediaItemPatch
		if err := json.Unmarshal(b, &patch); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		item, err := s.manager.UpdateMediaItem(r.Context(), id, patch)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: item})
	}
}

// DeleteMediaItem removes an item
func (s Server) DeleteMediaItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := s.manager.DeleteMediaItem(r.Context(), id); err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

// RescanItem resets an item for reclassification by the next scan
func (s Server) RescanItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		item, err := s.manager.RescanItem(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: item})
	}
}

// UndoOrganize moves an organized item back to its source location
func (s Server) UndoOrganize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		item, err := s.manager.UndoOrganize(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: item})
	}
}

// GetStats aggregates the item set
func (s Server) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		stats, err := s.manager.GetStats(r.Context())
		if err != nil {
			log.Error("failed to get stats", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: stats})
	}
}

// GetSettings returns the singleton settings record
func (s Server) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := s.manager.Settings(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: settings})
	}
}

// UpdateSettings replaces the singleton settings record
func (s Server) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var settings manager.Settings
		if err := json.Unmarshal(b, &settings); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.manager.UpdateSettings(r.Context(), settings); err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: settings})
	}
}

// Browse lists directories beneath an allow-listed path
func (s Server) Browse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			path = "/"
		}

		entries, err := s.manager.Browse(r.Context(), path)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, manager.ErrBrowseForbidden) {
				status = http.StatusForbidden
			}
			writeErrorResponse(w, status, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: entries})
	}
}

// GetScanJob fetches one scan job
func (s Server) GetScanJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		job, err := s.manager.GetScanJob(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// GetLatestScanJob fetches the most recent scan job
func (s Server) GetLatestScanJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.manager.GetLatestScanJob(r.Context())
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// GetOrganizeJob fetches one organize job
func (s Server) GetOrganizeJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		job, err := s.manager.GetOrganizeJob(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// GetLatestOrganizeJob fetches the most recent organize job
func (s Server) GetLatestOrganizeJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.manager.GetLatestOrganizeJob(r.Context())
		if err != nil {
			writeErrorResponse(w, itemStatus(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// ListOrganizationLogs lists audit rows, newest first
func (s Server) ListOrganizationLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 {
				http.Error(w, "invalid limit parameter: must be positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		logs, err := s.manager.ListOrganizationLogs(r.Context(), limit)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: logs})
	}
}

// ListMovieRecords lists the aggregated movie projections
func (s Server) ListMovieRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.manager.ListMovieRecords(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: records})
	}
}

// ListTvSeriesRecords lists the aggregated series projections
func (s Server) ListTvSeriesRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.manager.ListTvSeriesRecords(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: records})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id format", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func itemStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// parsePagination extracts and validates pagination params from a request
func parsePagination(r *http.Request) (int, int, error) {
	page, pageSize := 1, 0
	qp := r.URL.Query()

	if pageStr := qp.Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			return 0, 0, errors.New("invalid page parameter: must be positive integer")
		}
		page = parsed
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		parsed, err := strconv.Atoi(pageSizeStr)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("invalid pageSize parameter: must be non-negative integer")
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}
