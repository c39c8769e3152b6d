// Package server exposes the extraction engine over HTTP and MCP.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fieldline/scoutbook/config"
	"github.com/fieldline/scoutbook/export"
	"github.com/fieldline/scoutbook/extract"
	"github.com/fieldline/scoutbook/gamebook"
)

// uploadField is the multipart form field holding the gamebook PDF.
const uploadField = "gamebook"

// NewRouter builds the extraction API:
//
//	GET  /healthz  — liveness probe
//	POST /extract  — multipart PDF upload (field "gamebook") or a raw PDF
//	                 body; responds with the assembled document as JSON
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h := &extractHandler{cfg: cfg}
	r.Get("/healthz", h.health)
	r.Post("/extract", h.extract)

	return r
}

type extractHandler struct {
	cfg *config.Config
}

func (h *extractHandler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *extractHandler) extract(w http.ResponseWriter, r *http.Request) {
	data, err := h.readUpload(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	pages, err := extract.Pages(data)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}

	doc, err := gamebook.Assemble(pages, gamebook.Options{
		SkipMalformed: h.cfg.SkipMalformedPlays,
	})
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := export.WriteJSON(w, doc); err != nil {
		slog.Error("write extract response", "error", err)
	}
}

// readUpload accepts either a multipart form with the gamebook field or a
// raw PDF request body, capped at the configured upload limit.
func (h *extractHandler) readUpload(r *http.Request) ([]byte, error) {
	limit := h.cfg.MaxUploadBytes

	if file, _, err := r.FormFile(uploadField); err == nil {
		defer func() { _ = file.Close() }()
		return readCapped(file, limit)
	}

	if r.Body == nil {
		return nil, errors.New("empty request body")
	}
	return readCapped(r.Body, limit)
}

func readCapped(src io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errors.New("upload exceeds size limit")
	}
	if len(data) == 0 {
		return nil, errors.New("empty upload")
	}
	return data, nil
}

func httpError(w http.ResponseWriter, code int, err error) {
	slog.Warn("extract request rejected", "status", code, "error", err)
	http.Error(w, err.Error(), code)
}
