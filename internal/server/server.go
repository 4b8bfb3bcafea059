// Package server exposes attendance cleaning over HTTP: upload a device
// export, preview the unified table, download the cleaned workbook.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/attclean/attclean-go/internal/config"
	"github.com/attclean/attclean-go/pkg/attclean"
	"github.com/attclean/attclean-go/pkg/attclean/output"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const uploadField = "file"

// Messages shown to users.
const (
	msgNoData      = "No valid sheets found."
	msgBadWorkbook = "The uploaded file could not be read as an Excel workbook."
	msgBadType     = "Only .xlsx and .xlsm files are accepted."
	msgTooLarge    = "The uploaded file is too large."
	msgMissingFile = "No file was uploaded."
)

// Server serves the upload, preview and download endpoints.
type Server struct {
	cfg     *config.Config
	cleaner *attclean.Cleaner
	now     func() time.Time
}

// New creates a Server backed by a memoizing Cleaner.
func New(cfg *config.Config) *Server {
	opts := attclean.Options{Lookahead: cfg.Lookahead}
	return &Server{
		cfg:     cfg,
		cleaner: attclean.NewCleaner(opts, cfg.CacheEntries),
		now:     time.Now,
	}
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/preview", s.handlePreview)
	r.Post("/clean", s.handleClean)
	return r
}

// ListenAndServe starts serving on cfg.Addr.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("[server] listening on %s", s.cfg.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type previewResponse struct {
	Sheets  []attclean.SheetSummary `json:"sheets"`
	Preview output.Preview          `json:"preview"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	table, err := s.cleaner.Clean(data)
	if err != nil {
		s.writeCleanError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{
		Sheets:  attclean.Summarize(table),
		Preview: output.NewPreview(table, s.cfg.PreviewRows),
	})
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	table, err := s.cleaner.Clean(data)
	if err != nil {
		s.writeCleanError(w, r, err)
		return
	}

	out, err := output.ToXLSX(table)
	if err != nil {
		log.Printf("[server] %s: export failed: %v", middleware.GetReqID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, "Export failed.")
		return
	}

	w.Header().Set("Content-Type", output.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+output.DownloadName(s.now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("[server] %s: write response: %v", middleware.GetReqID(r.Context()), err)
	}
}

// readUpload returns the bytes of the uploaded workbook, writing an error
// response and returning false when the upload is unusable.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := s.cfg.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge), strings.Contains(err.Error(), "request body too large"):
			writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		default:
			writeError(w, http.StatusBadRequest, msgMissingFile)
		}
		return nil, false
	}
	defer file.Close()

	if !isExcelFile(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType, msgBadType)
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBadWorkbook)
		return nil, false
	}
	return data, true
}

func (s *Server) writeCleanError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, attclean.ErrNoData) {
		writeError(w, http.StatusUnprocessableEntity, msgNoData)
		return
	}
	log.Printf("[server] %s: clean failed: %v", middleware.GetReqID(r.Context()), err)
	writeError(w, http.StatusBadRequest, msgBadWorkbook)
}

func isExcelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".xlsx" || ext == ".xlsm"
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] encode response: %v", err)
	}
}
