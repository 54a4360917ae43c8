// Package server exposes the merge pipeline over HTTP uploads.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/aggregate"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
)

// formField is the multipart field carrying the workbooks.
const formField = "files"

// Server handles merge uploads
type Server struct {
	opts      gstrmerge.Options
	maxUpload int64
	mux       *http.ServeMux
}

// NewServer creates a Server merging with opts and accepting uploads up to maxUpload bytes
func NewServer(opts gstrmerge.Options, maxUpload int64) *Server {
	s := &Server{
		opts:      opts,
		maxUpload: maxUpload,
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("POST /api/merge", s.handleMerge)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// mergeResponse is the JSON body of a merge request
type mergeResponse struct {
	Error    string            `json:"error,omitempty"`
	Artifact *models.Artifact  `json:"artifact,omitempty"`
	Rows     int               `json:"rows"`
	Log      models.ProcessLog `json:"log"`
	Messages []string          `json:"messages"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

// handleMerge merges the uploaded workbooks in upload order
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, mergeResponse{Error: "upload too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, mergeResponse{Error: "error parsing form"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[formField]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, mergeResponse{Error: "please upload at least one Excel file"})
		return
	}

	opts := s.opts
	if m := r.URL.Query().Get("mode"); m != "" {
		mode, err := aggregate.ParseMode(m)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, mergeResponse{Error: err.Error()})
			return
		}
		opts.Mode = mode
	}

	files := make([]models.InputFile, 0, len(headers))
	for _, fh := range headers {
		in, err := readUpload(fh)
		if err != nil {
			slog.Error("Error reading upload", "file", fh.Filename, "error", err)
			writeJSON(w, http.StatusBadRequest, mergeResponse{Error: err.Error()})
			return
		}
		files = append(files, in)
	}

	res, err := gstrmerge.Merge(files, opts)
	if errors.Is(err, gstrmerge.ErrNoData) {
		writeJSON(w, http.StatusUnprocessableEntity, mergeResponse{
			Error:    "no data found to merge",
			Log:      res.Log,
			Messages: res.Log.Lines(),
		})
		return
	}
	if err != nil {
		slog.Error("Merge failed", "error", err)
		status := http.StatusInternalServerError
		var body mergeResponse
		body.Error = err.Error()
		if res != nil {
			body.Log, body.Messages = res.Log, res.Log.Lines()
		} else {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, body)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, mergeResponse{
			Artifact: res.Artifact,
			Rows:     res.Rows,
			Log:      res.Log,
			Messages: res.Log.Lines(),
		})
		return
	}

	for _, line := range res.Log.Lines() {
		w.Header().Add("X-Process-Log", line)
	}
	w.Header().Set("Content-Type", res.Artifact.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Artifact.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifact.Data)
}

// readUpload loads one uploaded file into memory
func readUpload(fh *multipart.FileHeader) (models.InputFile, error) {
	f, err := fh.Open()
	if err != nil {
		return models.InputFile{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.InputFile{}, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}
	return models.InputFile{Name: filepath.Base(fh.Filename), Data: data}, nil
}

func writeJSON(w http.ResponseWriter, status int, body mergeResponse) {
	if body.Messages == nil {
		body.Messages = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
