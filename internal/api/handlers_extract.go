package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/linkgest/internal/pipeline"
	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)

	// Sources read from disk, so stage the upload under its own extension.
	tmp, err := os.CreateTemp("", "linkgest-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		jsonError(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	tmp.Close()
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if size > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	log := s.log.With("request_id", middleware.GetReqID(r.Context()), "filename", filename)
	var rec runlog.Recorder
	sink := runlog.Tee(&rec, runlog.Slog(log, slog.LevelInfo))

	start := time.Now()
	urls, err := s.extractor.Extract(tmpPath, sink)
	if s.stats != nil {
		s.stats.Record(time.Since(start), urls.Len(), err)
	}

	if err != nil {
		log.Error("extraction failed", "error", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, pipeline.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		jsonError(w, err.Error(), status)
		return
	}
	log.Info("extraction complete", "urls", urls.Len(), "bytes", size)

	if r.FormValue("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := pipeline.Write(w, urls); err != nil {
			log.Warn("write response failed", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename": filename,
		"count":    urls.Len(),
		"urls":     urls.Sorted(),
		"log":      rec.Lines(),
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"extensions": s.registry.Extensions(),
		"strict":     s.cfg.StrictFormats,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
