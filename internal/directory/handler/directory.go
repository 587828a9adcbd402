package handler

import (
	"net/http"
	"path/filepath"

	"github.com/julienschmidt/httprouter"

	"phonechecker/internal/directory/service"
	apperrors "phonechecker/pkg/errors"
	httputil "phonechecker/pkg/http"
	"phonechecker/pkg/logger"
	"phonechecker/pkg/middleware"
	"phonechecker/pkg/model"
)

const defaultUploadName = "upload.csv"

type DirectoryHandler struct {
	service service.DirectoryService
	log     *logger.Logger
}

func NewDirectoryHandler(service service.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		log:     log,
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/directory/load", h.Load)
	router.POST("/api/v1/directory/upload", h.Upload)
	router.GET("/api/v1/directory", h.Status)
	router.GET("/api/v1/directory/search", h.Search)
}

// Load imports a file from the configured data directory.
func (h *DirectoryHandler) Load(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if media := middleware.MediaType(r.Header.Get("Content-Type")); media != middleware.ContentTypeJSON {
		httputil.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "Content-Type must be application/json", http.StatusUnsupportedMediaType))
		return
	}

	var req model.LoadRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	summary, err := h.service.LoadFromDataDir(r.Context(), req.Path)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, summary)
}

// Upload imports the raw request body. The optional "name" query parameter
// labels the directory.
func (h *DirectoryHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if media := middleware.MediaType(r.Header.Get("Content-Type")); media != middleware.ContentTypeCSV {
		httputil.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "Content-Type must be text/csv", http.StatusUnsupportedMediaType))
		return
	}

	data, err := httputil.ReadBody(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	name := filepath.Base(httputil.QueryParam(r, "name"))
	if name == "." || name == string(filepath.Separator) {
		name = defaultUploadName
	}

	summary, err := h.service.LoadBytes(r.Context(), name, data)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.log.Info("Directory uploaded",
		"request_id", middleware.RequestID(r.Context()),
		"source", summary.Source,
		"bytes", len(data),
	)
	httputil.WriteSuccess(w, summary)
}

func (h *DirectoryHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.Status(r.Context()))
}

func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, result)
}
